package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().
			Register(gomock.Any(), domain.Credentials{Email: "ana@example.com", Password: "secret1"}).
			Return(&domain.Token{AccessToken: "tok", TokenType: "bearer", UserID: 1, Email: "ana@example.com"}, nil)

		body := strings.NewReader(`{"email":"ana@example.com","password":"secret1"}`)
		rec := httptest.NewRecorder()
		Register(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", body))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"access_token":"tok","token_type":"bearer","user_id":1,"email":"ana@example.com"}`, rec.Body.String())
	})

	t.Run("usuário já existe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "email already registered"))

		body := strings.NewReader(`{"email":"ana@example.com","password":"secret1"}`)
		rec := httptest.NewRecorder()
		Register(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrUserAlreadyExists, decodeError(t, rec).Code)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		rec := httptest.NewRecorder()
		Register(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "invalid email or password"))

		body := strings.NewReader(`{"email":"ana@example.com","password":"wrong"}`)
		rec := httptest.NewRecorder()
		Login(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", body))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)
	})
}

func TestGetMe(t *testing.T) {
	t.Run("retorna o perfil do usuário do token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		createdAt := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
		service.EXPECT().GetUserProfile(gomock.Any(), 3).
			Return(&domain.User{ID: 3, Email: "ana@example.com", PasswordHash: "hash", CreatedAt: createdAt}, nil)

		ctx := context.WithValue(context.Background(), middleware.ContextKeyUser, &domain.Claims{UserID: 3})
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		GetMe(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":3,"email":"ana@example.com","created_at":"2024-01-01T12:00:00Z"}`, rec.Body.String())
	})

	t.Run("sem usuário no contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		rec := httptest.NewRecorder()
		GetMe(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
