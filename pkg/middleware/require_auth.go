package middleware

import (
	"net/http"

	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

// RequireAuth restringe a rota a usuários autenticados pelo AuthMiddleware
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserFromContext(r.Context()); !ok {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrAuthRequired, "Not authenticated", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
