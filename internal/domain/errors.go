package domain

import (
	"errors"
	"fmt"
)

// Erros base do pipeline de análise
var (
	ErrInsufficientData  = errors.New("dados insuficientes")
	ErrModelFit          = errors.New("falha ao ajustar o modelo")
	ErrStorage           = errors.New("erro ao acessar o armazenamento")
	ErrInvalidParameter  = errors.New("parâmetro inválido")
	ErrValidationBlocked = errors.New("lote bloqueado pela validação")
	ErrAllRowsRejected   = errors.New("todas as linhas foram rejeitadas")
	ErrNotFound          = errors.New("nenhum registro encontrado")
)

// AnalyticsError é um erro com contexto adicional para previsão e detecção
type AnalyticsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError cria um novo erro de análise
func NewAnalyticsError(baseErr error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
