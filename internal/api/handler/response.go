package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/summarizing"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/validating"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	// valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeUseCaseError traduz os erros dos casos de uso para o corpo padronizado da API
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		analyticsErr *domain.AnalyticsError
		authErr      *authenticating.AuthError
		insightsErr  *summarizing.InsightsError
		blockingErr  *validating.BlockingError
		rejectedErr  *ingesting.AllRowsRejectedError
	)

	switch {
	case errors.As(err, &blockingErr):
		messages := make([]string, 0, len(blockingErr.Issues))
		for _, issue := range blockingErr.Issues {
			messages = append(messages, issue.Message)
		}
		apiErrors.WriteError(w, apiErrors.ErrValidationBlocked, blockingErr.Error(), map[string]any{
			"errors": messages,
		})

	case errors.As(err, &rejectedErr):
		apiErrors.WriteError(w, apiErrors.ErrAllRowsRejected, rejectedErr.Error(), map[string]any{
			"rejected": rejectedErr.Rejected,
			"reasons":  rejectedErr.Reasons,
		})

	case errors.As(err, &analyticsErr):
		if analyticsErr.Code == apiErrors.ErrModelFit {
			logger.Error("Falha ao ajustar o modelo")
		}
		apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Error(), nil)

	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	case errors.As(err, &insightsErr):
		logger.Warn("Falha ao gerar insights")
		apiErrors.WriteError(w, insightsErr.Code, insightsErr.Message, nil)

	case errors.Is(err, ingesting.ErrEmptyFile),
		errors.Is(err, ingesting.ErrMalformedCSV),
		errors.Is(err, ingesting.ErrNoValidRows):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, domain.ErrInvalidParameter),
		errors.Is(err, summarizing.ErrInvalidRequest):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, domain.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNoData, "no sales found matching the criteria", nil)

	case errors.Is(err, domain.ErrStorage):
		logger.Error("Erro de banco de dados")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Database error", nil)

	default:
		logger.Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
	}
}

// queryInt lê um parâmetro inteiro opcional dentro de [minValue, maxValue]
func queryInt(r *http.Request, name string, defaultValue, minValue, maxValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(domain.ErrInvalidParameter, "%s must be an integer", name)
	}

	if value < minValue || value > maxValue {
		return 0, errors.Wrapf(domain.ErrInvalidParameter, "%s must be between %d and %d", name, minValue, maxValue)
	}

	return value, nil
}
