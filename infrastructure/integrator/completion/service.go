package completion

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion/completionclient"
	completiondomain "github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion/domain"
	"github.com/vfg2006/business-dashboard-api/internal/config"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

var (
	ErrNotConfigured = errors.New("chave da API de IA não configurada")
	ErrEmptyResponse = errors.New("resposta sem conteúdo")
)

type CompletionIntegrator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type CompletionService struct {
	cfg    *config.Config
	Client completionclient.Client
}

func New(cfg *config.Config, client completionclient.Client) *CompletionService {
	return &CompletionService{
		cfg:    cfg,
		Client: client,
	}
}

// Complete envia um par de mensagens sistema/usuário e devolve o texto da primeira escolha
func (s *CompletionService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.cfg.OpenAI.APIKey == "" {
		return "", ErrNotConfigured
	}

	resp, err := s.Client.CreateChatCompletion(ctx, completiondomain.ChatRequest{
		Model: s.cfg.OpenAI.Model,
		Messages: []completiondomain.Message{
			{Role: completiondomain.RoleSystem, Content: systemPrompt},
			{Role: completiondomain.RoleUser, Content: userPrompt},
		},
		MaxTokens:   s.cfg.OpenAI.MaxTokens,
		Temperature: s.cfg.OpenAI.Temperature,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}

	return content, nil
}
