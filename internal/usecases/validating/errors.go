package validating

import (
	"strings"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

// BlockingError carrega os problemas que impedem a ingestão do lote
type BlockingError struct {
	Issues []domain.ValidationIssue
}

func (e *BlockingError) Error() string {
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		messages = append(messages, issue.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

func (e *BlockingError) Unwrap() error {
	return domain.ErrValidationBlocked
}

// IsBlocking indica se algum problema tem severidade de erro
func IsBlocking(issues []domain.ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == domain.SeverityError {
			return true
		}
	}
	return false
}
