package domain

// IssueKind identifica o tipo de problema de qualidade encontrado em um lote
type IssueKind string

const (
	IssueMissingColumns IssueKind = "missing_columns"
	IssueEmptyData      IssueKind = "empty_data"
	IssueMissingValues  IssueKind = "missing_values"
	IssueDuplicates     IssueKind = "duplicates"
	IssueTypeErrors     IssueKind = "type_errors"
	IssueRangeErrors    IssueKind = "range_errors"
	IssueDateErrors     IssueKind = "date_errors"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// IssueExample referencia uma linha (indexada a partir de 1) que originou o problema
type IssueExample struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

// ValidationIssue é um problema agregado de um lote. Não é persistido.
type ValidationIssue struct {
	Kind       IssueKind      `json:"type"`
	Severity   Severity       `json:"severity"`
	Column     string         `json:"column,omitempty"`
	Count      int            `json:"count,omitempty"`
	Percentage float64        `json:"percentage,omitempty"`
	Message    string         `json:"message"`
	Examples   []IssueExample `json:"examples,omitempty"`
}

// ValidationSummary resume o resultado da validação de um lote
type ValidationSummary struct {
	TotalRows    int  `json:"total_rows"`
	ValidRows    int  `json:"valid_rows"`
	FlaggedRows  int  `json:"flagged_rows"`
	WarningCount int  `json:"warning_count"`
	ErrorCount   int  `json:"error_count"`
	HasErrors    bool `json:"has_errors"`
	HasWarnings  bool `json:"has_warnings"`
}

// UploadResult é a resposta de uma ingestão concluída
type UploadResult struct {
	Message      string            `json:"message"`
	RowsInserted int               `json:"rows_inserted"`
	Filename     string            `json:"filename"`
	BatchID      string            `json:"batch_id"`
	Warnings     []ValidationIssue `json:"warnings"`
	Errors       []ValidationIssue `json:"errors"`
	Summary      ValidationSummary `json:"summary"`
}
