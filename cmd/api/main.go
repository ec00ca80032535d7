package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion/completionclient"
	"github.com/vfg2006/business-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/api"
	"github.com/vfg2006/business-dashboard-api/internal/api/handler"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/scheduler"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/detecting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/searching"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/summarizing"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/validating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Apply(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o esquema do banco")
	}

	saleRepo := repository.NewSaleRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	validator := validating.NewService(validating.Thresholds{
		TypeErrorPercent: cfg.Validation.TypeErrorThreshold,
		DateErrorPercent: cfg.Validation.DateErrorThreshold,
	})
	uploader := ingesting.NewService(validator, ingesting.NewLoader(saleRepo))

	aggregator := aggregating.NewService(saleRepo)
	forecaster := forecasting.NewService(aggregator, forecasting.NewDecompositionModel())
	detector := detecting.NewService(aggregator, detecting.NewIsolationForest())
	searcher := searching.NewService(saleRepo)

	completionClient := completionclient.NewClient(cfg)
	defer completionClient.Close()
	summarizer := summarizing.NewService(completion.New(cfg, completionClient))

	anomalyScanService := scheduler.NewAnomalyScanService(detector, cfg)
	if err := anomalyScanService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de anomalias")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Uploader:      uploader,
		Aggregator:    aggregator,
		Forecaster:    forecaster,
		Detector:      detector,
		Searcher:      searcher,
		Summarizer:    summarizer,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeAnomalyScan: anomalyScanService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
