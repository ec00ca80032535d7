package completionclient

import (
	"context"
	"fmt"

	completiondomain "github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion/domain"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"resty.dev/v3"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

const chatCompletionsPath = "/chat/completions"

type Client interface {
	CreateChatCompletion(ctx context.Context, request completiondomain.ChatRequest) (*completiondomain.ChatResponse, error)
}

// ProviderError é a resposta de erro devolvida pelo provedor
type ProviderError struct {
	StatusCode int
	Response   completiondomain.ErrorResponse
}

func (e *ProviderError) Error() string {
	if e.Response.Error.Message != "" {
		return fmt.Sprintf("requisição falhou com status %d: %s", e.StatusCode, e.Response.Error.Message)
	}
	return fmt.Sprintf("requisição falhou com status %d", e.StatusCode)
}

type CompletionClient struct {
	httpClient *resty.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) *CompletionClient {
	httpClient := resty.New().
		SetBaseURL(cfg.OpenAI.BaseURL).
		SetTimeout(cfg.OpenAI.Timeout).
		SetHeader("Accept", "application/json")

	return &CompletionClient{
		httpClient: httpClient,
		config:     cfg,
	}
}

func (c *CompletionClient) CreateChatCompletion(ctx context.Context, request completiondomain.ChatRequest) (*completiondomain.ChatResponse, error) {
	var (
		response    completiondomain.ChatResponse
		errResponse completiondomain.ErrorResponse
	)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(c.config.OpenAI.APIKey).
		SetBody(request).
		SetResult(&response).
		SetError(&errResponse).
		Post(chatCompletionsPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	if resp.IsError() {
		return nil, &ProviderError{StatusCode: resp.StatusCode(), Response: errResponse}
	}

	return &response, nil
}

// Close libera as conexões do cliente HTTP
func (c *CompletionClient) Close() error {
	return c.httpClient.Close()
}
