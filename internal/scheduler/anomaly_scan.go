package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/detecting"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

// AnomalyScanConfig representa a configuração do agendador de varredura de anomalias
type AnomalyScanConfig struct {
	CronSchedule string
	RangeDays    int
	ScanEnabled  bool
	Timeout      time.Duration
}

// AnomalyScanService agenda a detecção de anomalias na receita diária e guarda o último resultado
type AnomalyScanService struct {
	scheduler           *gocron.Scheduler
	config              AnomalyScanConfig
	detector            detecting.Detector
	scanRunning         bool
	scanMutex           sync.Mutex
	lastScanStartedAt   time.Time
	lastScanCompletedAt time.Time
	lastAnomalies       int
	lastError           string
}

// NewAnomalyScanService cria uma nova instância do serviço de varredura de anomalias
func NewAnomalyScanService(detector detecting.Detector, appConfig *config.Config) *AnomalyScanService {
	scanConfig := AnomalyScanConfig{
		CronSchedule: appConfig.AnomalyScan.CronSchedule,
		RangeDays:    appConfig.AnomalyScan.RangeDays,
		ScanEnabled:  appConfig.AnomalyScan.Enabled,
		Timeout:      5 * time.Minute,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": scanConfig.CronSchedule,
		"range_days":    scanConfig.RangeDays,
		"scan_enabled":  scanConfig.ScanEnabled,
	}).Info("Configuração do agendador de anomalias carregada")

	return &AnomalyScanService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    scanConfig,
		detector:  detector,
	}
}

// Start inicia o agendador
func (s *AnomalyScanService) Start(ctx context.Context) error {
	if !s.config.ScanEnabled {
		log.L.Info("Varredura de anomalias desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de varredura de anomalias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.scan()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de anomalias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de varredura de anomalias")
		s.scheduler.Stop()
	}()

	return nil
}

// scan executa uma detecção; execuções sobrepostas são ignoradas, nunca enfileiradas
func (s *AnomalyScanService) scan() {
	s.scanMutex.Lock()
	if s.scanRunning {
		s.scanMutex.Unlock()
		log.L.Info("Varredura de anomalias já em andamento, ignorando")
		return
	}
	s.scanRunning = true
	s.lastScanStartedAt = time.Now()
	s.scanMutex.Unlock()

	defer func() {
		s.scanMutex.Lock()
		s.scanRunning = false
		s.scanMutex.Unlock()
	}()

	ctx, _ := log.WithCorrelationID(context.Background())
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	logger := log.ForContext(ctx).WithField("range_days", s.config.RangeDays)
	logger.Info("Iniciando varredura de anomalias")

	report, err := s.detector.Detect(ctx, s.config.RangeDays)

	s.scanMutex.Lock()
	defer s.scanMutex.Unlock()

	s.lastScanCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		s.lastAnomalies = 0
		logger.WithError(err).Warn("Varredura de anomalias falhou")
		return
	}

	s.lastError = ""
	s.lastAnomalies = len(report.Anomalies)

	for _, anomaly := range report.Anomalies {
		logger.WithFields(log.Fields{
			"date":  anomaly.Date.String(),
			"value": anomaly.Value.String(),
			"score": anomaly.Score,
		}).Warn("Dia com receita anômala")
	}

	logger.WithFields(log.Fields{
		"anomalies": len(report.Anomalies),
		"data_days": len(report.Dates),
		"duration":  s.lastScanCompletedAt.Sub(s.lastScanStartedAt).String(),
	}).Info("Varredura de anomalias concluída")
}

// TriggerManualSync inicia manualmente uma varredura. Retorna false se já houver uma em andamento.
func (s *AnomalyScanService) TriggerManualSync() bool {
	s.scanMutex.Lock()
	if s.scanRunning {
		s.scanMutex.Unlock()
		log.L.Info("Varredura de anomalias já em andamento, ignorando solicitação manual")
		return false
	}
	s.scanMutex.Unlock()

	log.L.Info("Iniciando varredura manual de anomalias")
	go s.scan()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *AnomalyScanService) GetStatus() map[string]any {
	s.scanMutex.Lock()
	defer s.scanMutex.Unlock()

	return map[string]any{
		"scan_running":           s.scanRunning,
		"scan_cron":              s.config.CronSchedule,
		"scan_enabled":           s.config.ScanEnabled,
		"range_days":             s.config.RangeDays,
		"last_scan_started_at":   s.lastScanStartedAt,
		"last_scan_completed_at": s.lastScanCompletedAt,
		"last_anomalies":         s.lastAnomalies,
		"last_error":             s.lastError,
	}
}
