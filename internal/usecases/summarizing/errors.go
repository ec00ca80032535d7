package summarizing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion/completionclient"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
)

var ErrInvalidRequest = errors.New("requisição de insights inválida")

// InsightsError carrega a mensagem que pode ser mostrada ao usuário
type InsightsError struct {
	Err     error
	Code    string
	Message string
}

func (e *InsightsError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *InsightsError) Unwrap() error {
	return e.Err
}

// classify traduz a falha do provedor em uma mensagem amigável
func classify(err error) *InsightsError {
	if errors.Is(err, completion.ErrNotConfigured) {
		return &InsightsError{Err: err, Code: apiErrors.ErrAINotConfigured, Message: "OPENAI_API_KEY environment variable not set"}
	}

	var providerErr *completionclient.ProviderError
	if errors.As(err, &providerErr) {
		resp := providerErr.Response
		switch {
		case resp.IsQuotaExceeded() || providerErr.StatusCode == http.StatusTooManyRequests:
			return &InsightsError{Err: err, Code: apiErrors.ErrAIRejected, Message: "OpenAI API quota exceeded. Please check your API billing or try again later."}
		case resp.IsAuthentication() || providerErr.StatusCode == http.StatusUnauthorized:
			return &InsightsError{Err: err, Code: apiErrors.ErrAIRejected, Message: "OpenAI API key is invalid or not configured. Please check your API key."}
		case resp.IsInsufficientBalance():
			return &InsightsError{Err: err, Code: apiErrors.ErrAIRejected, Message: "Insufficient OpenAI API credits. Please add credits to your account."}
		}
	}

	return &InsightsError{Err: err, Code: apiErrors.ErrExternalService, Message: fmt.Sprintf("Failed to generate insights: %v", err)}
}
