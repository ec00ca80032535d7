package handler

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

const CronJobTypeAnomalyScan = "anomaly-scan"

// ManualTrigger é um job agendado que também pode ser disparado pela API
type ManualTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente, por tipo
type CronJobServices map[string]ManualTrigger

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		service, ok := services[cronType]
		if !ok || service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type", map[string]any{
				"accepted": services.types(),
			})
			return
		}

		started := service.TriggerManualSync()
		log.ForContext(r.Context()).WithFields(log.Fields{
			"type":    cronType,
			"started": started,
		}).Info("Execução manual de cron job solicitada")

		message := "Cron job started"
		if !started {
			message = "Cron job already running"
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for cronType, service := range services {
			if service != nil {
				status[cronType] = service.GetStatus()
			}
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for cronType := range s {
		types = append(types, cronType)
	}
	sort.Strings(types)
	return types
}
