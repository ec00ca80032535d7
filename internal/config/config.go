package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Upload      Upload      `mapstructure:",squash"`
	Validation  Validation  `mapstructure:",squash"`
	OpenAI      OpenAI      `mapstructure:",squash"`
	AnomalyScan AnomalyScan `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
	MinPasswordLength int           `mapstructure:"min_password_length"`
}

type Upload struct {
	MaxSizeMB int64 `mapstructure:"upload_max_size_mb"`
}

// MaxBytes retorna o limite de upload em bytes
func (u Upload) MaxBytes() int64 {
	return u.MaxSizeMB << 20
}

// Validation guarda os limites percentuais que promovem avisos a erros
type Validation struct {
	TypeErrorThreshold float64 `mapstructure:"validation_type_error_threshold"`
	DateErrorThreshold float64 `mapstructure:"validation_date_error_threshold"`
}

type OpenAI struct {
	APIKey      string        `mapstructure:"openai_api_key"`
	BaseURL     string        `mapstructure:"openai_api_base"`
	Model       string        `mapstructure:"openai_model"`
	MaxTokens   int           `mapstructure:"openai_max_tokens"`
	Temperature float64       `mapstructure:"openai_temperature"`
	Timeout     time.Duration `mapstructure:"openai_timeout"`
}

type AnomalyScan struct {
	CronSchedule string `mapstructure:"anomaly_scan_cron"`
	RangeDays    int    `mapstructure:"anomaly_scan_range_days"`
	Enabled      bool   `mapstructure:"anomaly_scan_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("TOKEN_TTL", "720h") // 30 dias
	viper.SetDefault("MIN_PASSWORD_LENGTH", 6)

	viper.SetDefault("UPLOAD_MAX_SIZE_MB", 10)

	viper.SetDefault("VALIDATION_TYPE_ERROR_THRESHOLD", 50)
	viper.SetDefault("VALIDATION_DATE_ERROR_THRESHOLD", 30)

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("OPENAI_MAX_TOKENS", 500)
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)
	viper.SetDefault("OPENAI_TIMEOUT", "30s")

	viper.SetDefault("ANOMALY_SCAN_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("ANOMALY_SCAN_RANGE_DAYS", 90)
	viper.SetDefault("ANOMALY_SCAN_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Leitura opcional, o godotenv já exportou as variáveis
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN monta a string de conexão a partir das partes configuradas
func BuildDSN(db Database) string {
	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)

	if db.SSLMode != "" && !strings.Contains(db.URL, "sslmode=") {
		separator := "?"
		if strings.Contains(db.URL, "?") {
			separator = "&"
		}
		dsn = fmt.Sprintf("%s%ssslmode=%s", dsn, separator, db.SSLMode)
	}

	return dsn
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
