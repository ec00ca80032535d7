package handler

import (
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/middleware"
)

// Register cria o usuário e já devolve o token de acesso
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials domain.Credentials
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		token, err := service.Register(r.Context(), credentials)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, token)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials domain.Credentials
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		token, err := service.Login(r.Context(), credentials)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, token)
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrAuthRequired, "Not authenticated", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("user_id", claims.UserID).Warn("Erro ao obter dados do usuário")
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
