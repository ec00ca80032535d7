package domain

import (
	"github.com/shopspring/decimal"
)

// Colunas obrigatórias de um lote de vendas
const (
	ColumnDate       = "date"
	ColumnAmount     = "amount"
	ColumnCategory   = "category"
	ColumnCustomerID = "customerID"
)

// RequiredColumns lista as colunas obrigatórias na ordem em que são verificadas
var RequiredColumns = []string{ColumnDate, ColumnAmount, ColumnCategory, ColumnCustomerID}

// RawRow é uma linha bruta recebida na ingestão, indexada pelo nome da coluna.
// Os valores podem ser strings (CSV), time.Time, números ou decimal.Decimal.
type RawRow map[string]any

// IsNull indica se a coluna está ausente, é nil ou é uma string vazia
func (r RawRow) IsNull(column string) bool {
	value, ok := r[column]
	if !ok || value == nil {
		return true
	}

	if s, isString := value.(string); isString && s == "" {
		return true
	}

	return false
}

// HasRequired indica se todas as colunas obrigatórias têm valor
func (r RawRow) HasRequired() bool {
	for _, column := range RequiredColumns {
		if r.IsNull(column) {
			return false
		}
	}
	return true
}

// RawBatch é o conjunto completo de linhas de uma chamada de ingestão
type RawBatch struct {
	Columns []string
	Rows    []RawRow
}

// HasColumn indica se o cabeçalho do lote contém a coluna
func (b RawBatch) HasColumn(column string) bool {
	for _, c := range b.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// SaleRecord é uma venda validada, pronta para persistência
type SaleRecord struct {
	ID         int64           `json:"id,omitempty"`
	BatchID    string          `json:"batch_id,omitempty"`
	Date       Date            `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	CustomerID int64           `json:"customerID"`
}

// SaleFilters são os filtros aceitos pela busca e exportação de vendas
type SaleFilters struct {
	Category         string
	CategoryContains bool // busca parcial e sem distinção de maiúsculas (exportação)
	CustomerID       *int64
	Date             *Date
	StartDate        *Date
	EndDate          *Date
	MinAmount        *decimal.Decimal
	MaxAmount        *decimal.Decimal
	Limit            uint64
	Offset           uint64
}

// SaleSearchResult é a página retornada pela busca de vendas
type SaleSearchResult struct {
	Results []SaleRecord `json:"results"`
	Total   int          `json:"total"`
	Limit   uint64       `json:"limit"`
	Offset  uint64       `json:"offset"`
	HasMore bool         `json:"has_more"`
}
