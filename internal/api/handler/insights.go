package handler

import (
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/summarizing"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
)

func GenerateInsights(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.InsightsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		insights, err := service.GenerateInsights(r.Context(), req)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, insights)
	}
}
