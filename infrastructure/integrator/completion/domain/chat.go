package completiondomain

import "strings"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest é o corpo aceito por APIs compatíveis com chat completions
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// ErrorResponse representa a estrutura de erro do provedor
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code,omitempty"`
}

func (e *ErrorResponse) text() string {
	return strings.ToLower(e.Error.Message + " " + e.Error.Type)
}

// IsQuotaExceeded verifica se o erro é de cota, limite de taxa ou cobrança
func (e *ErrorResponse) IsQuotaExceeded() bool {
	t := e.text()
	return strings.Contains(t, "quota") || strings.Contains(t, "rate limit") || strings.Contains(t, "billing")
}

// IsAuthentication verifica se a chave foi recusada
func (e *ErrorResponse) IsAuthentication() bool {
	t := e.text()
	return strings.Contains(t, "api key") || strings.Contains(t, "authentication")
}

// IsInsufficientBalance verifica se faltam créditos na conta
func (e *ErrorResponse) IsInsufficientBalance() bool {
	t := e.text()
	return strings.Contains(t, "insufficient") || strings.Contains(t, "balance")
}
