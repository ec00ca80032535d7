package ingesting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

const maxReasons = 5

var (
	ErrEmptyFile    = errors.New("csv file is empty")
	ErrMalformedCSV = errors.New("error parsing csv")
	ErrNoValidRows  = errors.New("no valid data rows after removing empty entries")
)

// AllRowsRejectedError indica que nenhuma linha do lote pôde ser convertida
type AllRowsRejectedError struct {
	Rejected int
	Reasons  []string // no máximo os 5 primeiros motivos
}

func newAllRowsRejectedError(reasons []string) *AllRowsRejectedError {
	return &AllRowsRejectedError{
		Rejected: len(reasons),
		Reasons:  firstReasons(reasons),
	}
}

func (e *AllRowsRejectedError) Error() string {
	return fmt.Sprintf("all rows had errors: %s", strings.Join(e.Reasons, "; "))
}

func (e *AllRowsRejectedError) Unwrap() error {
	return domain.ErrAllRowsRejected
}

func firstReasons(reasons []string) []string {
	if len(reasons) > maxReasons {
		return reasons[:maxReasons]
	}
	return reasons
}
