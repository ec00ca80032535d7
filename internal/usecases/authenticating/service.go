package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const tokenType = "bearer"

var validate = validator.New(validator.WithRequiredStructEnabled())

//go:generate mockgen -source=service.go -destination=mocks/authenticator_mock.go -package=mocks

type Authenticator interface {
	Register(ctx context.Context, credentials domain.Credentials) (*domain.Token, error)
	Login(ctx context.Context, credentials domain.Credentials) (*domain.Token, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Register cria o usuário e já devolve um token de acesso
func (s *Service) Register(ctx context.Context, credentials domain.Credentials) (*domain.Token, error) {
	credentials.Email = handleEmail(credentials.Email)

	if err := validate.Struct(credentials); err != nil {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "a valid email and a password are required")
	}

	if len(credentials.Password) < s.cfg.Auth.MinPasswordLength {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword,
			fmt.Sprintf("password must be at least %d characters", s.cfg.Auth.MinPasswordLength))
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, credentials.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "error looking up user")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		Email:        credentials.Email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "email already registered")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "error creating user")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Usuário cadastrado")

	return s.issueToken(user)
}

// Login confere a senha e devolve um token de acesso
func (s *Service) Login(ctx context.Context, credentials domain.Credentials) (*domain.Token, error) {
	credentials.Email = handleEmail(credentials.Email)

	if err := validate.Struct(credentials); err != nil {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "a valid email and a password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, credentials.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "error looking up user")
	}

	// email inexistente e senha errada respondem igual
	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "invalid email or password")
	}

	return s.issueToken(user)
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar usuário")
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "error looking up user")
	}

	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "user not found")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "invalid claims")
	}

	return claims, nil
}

func (s *Service) issueToken(user *domain.User) (*domain.Token, error) {
	accessToken, err := generateJWT(user, s.cfg.SecretKey, s.now().Add(s.cfg.Auth.TokenTTL))
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "error generating access token")
	}

	return &domain.Token{
		AccessToken: accessToken,
		TokenType:   tokenType,
		UserID:      user.ID,
		Email:       user.Email,
	}, nil
}

func generateJWT(user *domain.User, secretKey string, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		UserID:    user.ID,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
