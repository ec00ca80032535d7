package validating

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const maxExamples = 5

// Thresholds são os percentuais (0-100) acima dos quais o problema vira erro
type Thresholds struct {
	TypeErrorPercent float64
	DateErrorPercent float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		TypeErrorPercent: 50,
		DateErrorPercent: 30,
	}
}

type Validator interface {
	Validate(batch domain.RawBatch) (warnings, errors []domain.ValidationIssue)
	Inspect(batch domain.RawBatch) *Report
}

type Service struct {
	thresholds Thresholds
}

func NewService(thresholds Thresholds) *Service {
	defaults := DefaultThresholds()
	if thresholds.TypeErrorPercent <= 0 {
		thresholds.TypeErrorPercent = defaults.TypeErrorPercent
	}
	if thresholds.DateErrorPercent <= 0 {
		thresholds.DateErrorPercent = defaults.DateErrorPercent
	}

	return &Service{thresholds: thresholds}
}

// Report é o resultado completo da inspeção de um lote
type Report struct {
	Warnings  []domain.ValidationIssue
	Errors    []domain.ValidationIssue
	TotalRows int

	// linhas (base 0) com ao menos um problema de linha
	flagged *roaring.Bitmap
}

// Blocking indica se o lote não pode ser ingerido
func (r *Report) Blocking() bool {
	return IsBlocking(r.Errors)
}

// Err retorna um *BlockingError quando o lote está bloqueado
func (r *Report) Err() error {
	if !r.Blocking() {
		return nil
	}
	return &BlockingError{Issues: r.Errors}
}

// Summary resume o relatório; linhas válidas descontam as contagens dos erros
func (r *Report) Summary() domain.ValidationSummary {
	validRows := r.TotalRows
	for _, issue := range r.Errors {
		validRows -= issue.Count
	}

	return domain.ValidationSummary{
		TotalRows:    r.TotalRows,
		ValidRows:    max(0, validRows),
		FlaggedRows:  int(r.flagged.GetCardinality()),
		WarningCount: len(r.Warnings),
		ErrorCount:   len(r.Errors),
		HasErrors:    len(r.Errors) > 0,
		HasWarnings:  len(r.Warnings) > 0,
	}
}

// FlaggedRows retorna as linhas (base 1) com ao menos um problema
func (r *Report) FlaggedRows() []int {
	rows := make([]int, 0, r.flagged.GetCardinality())
	it := r.flagged.Iterator()
	for it.HasNext() {
		rows = append(rows, int(it.Next())+1)
	}
	return rows
}

func (s *Service) Validate(batch domain.RawBatch) (warnings, errors []domain.ValidationIssue) {
	report := s.Inspect(batch)
	return report.Warnings, report.Errors
}

// Inspect avalia o lote inteiro. Colunas ausentes e lote vazio interrompem as demais verificações.
func (s *Service) Inspect(batch domain.RawBatch) *Report {
	report := &Report{
		Warnings:  make([]domain.ValidationIssue, 0),
		Errors:    make([]domain.ValidationIssue, 0),
		TotalRows: len(batch.Rows),
		flagged:   roaring.New(),
	}

	missing := make([]string, 0)
	for _, column := range domain.RequiredColumns {
		if !batch.HasColumn(column) {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		report.Errors = append(report.Errors, domain.ValidationIssue{
			Kind:     domain.IssueMissingColumns,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")),
		})
		return report
	}

	if len(batch.Rows) == 0 {
		report.Errors = append(report.Errors, domain.ValidationIssue{
			Kind:     domain.IssueEmptyData,
			Severity: domain.SeverityError,
			Message:  "csv file contains no data rows",
		})
		return report
	}

	total := len(batch.Rows)

	report.Warnings = append(report.Warnings, s.checkMissingValues(batch, report.flagged)...)

	if issue, ok := s.checkDuplicates(batch, report.flagged); ok {
		report.Warnings = append(report.Warnings, issue)
	}

	typeErrors, rangeErrors, dateErrors := s.checkRows(batch, report.flagged)

	if len(typeErrors) > 0 {
		count := len(typeErrors)
		pct := percentage(count, total)
		issue := domain.ValidationIssue{
			Kind:       domain.IssueTypeErrors,
			Severity:   domain.SeverityWarning,
			Count:      count,
			Percentage: pct,
			Message:    fmt.Sprintf("found %d rows with type errors (%.2f%% of data)", count, pct),
			Examples:   firstExamples(typeErrors),
		}
		report.add(issue, exceeds(count, total, s.thresholds.TypeErrorPercent))
	}

	if len(rangeErrors) > 0 {
		count := len(rangeErrors)
		pct := percentage(count, total)
		report.add(domain.ValidationIssue{
			Kind:       domain.IssueRangeErrors,
			Severity:   domain.SeverityWarning,
			Count:      count,
			Percentage: pct,
			Message:    fmt.Sprintf("found %d rows with out-of-range values (%.2f%% of data)", count, pct),
			Examples:   firstExamples(rangeErrors),
		}, false)
	}

	if len(dateErrors) > 0 {
		count := len(dateErrors)
		pct := percentage(count, total)
		report.add(domain.ValidationIssue{
			Kind:       domain.IssueDateErrors,
			Severity:   domain.SeverityWarning,
			Count:      count,
			Percentage: pct,
			Message:    fmt.Sprintf("found %d rows with invalid date formats (%.2f%% of data)", count, pct),
			Examples:   firstExamples(dateErrors),
		}, exceeds(count, total, s.thresholds.DateErrorPercent))
	}

	return report
}

// add registra o problema como erro quando promoted, senão como aviso
func (r *Report) add(issue domain.ValidationIssue, promoted bool) {
	if promoted {
		issue.Severity = domain.SeverityError
		r.Errors = append(r.Errors, issue)
		return
	}
	issue.Severity = domain.SeverityWarning
	r.Warnings = append(r.Warnings, issue)
}

func (s *Service) checkMissingValues(batch domain.RawBatch, flagged *roaring.Bitmap) []domain.ValidationIssue {
	total := len(batch.Rows)
	issues := make([]domain.ValidationIssue, 0)

	for _, column := range domain.RequiredColumns {
		count := 0
		for i, row := range batch.Rows {
			if row.IsNull(column) {
				count++
				flagged.Add(uint32(i))
			}
		}

		if count == 0 {
			continue
		}

		pct := percentage(count, total)
		issues = append(issues, domain.ValidationIssue{
			Kind:       domain.IssueMissingValues,
			Severity:   domain.SeverityWarning,
			Column:     column,
			Count:      count,
			Percentage: pct,
			Message:    fmt.Sprintf("column '%s' has %d missing values (%.2f%%)", column, count, pct),
		})
	}

	return issues
}

// checkDuplicates conta as repetições exatas de linha inteira (todas as colunas do lote);
// a primeira ocorrência não é contada
func (s *Service) checkDuplicates(batch domain.RawBatch, flagged *roaring.Bitmap) (domain.ValidationIssue, bool) {
	seen := make(map[string]struct{}, len(batch.Rows))
	count := 0

	for i, row := range batch.Rows {
		key := rowKey(batch.Columns, row)
		if _, dup := seen[key]; dup {
			count++
			flagged.Add(uint32(i))
			continue
		}
		seen[key] = struct{}{}
	}

	if count == 0 {
		return domain.ValidationIssue{}, false
	}

	return domain.ValidationIssue{
		Kind:     domain.IssueDuplicates,
		Severity: domain.SeverityWarning,
		Count:    count,
		Message:  fmt.Sprintf("found %d duplicate rows", count),
	}, true
}

func rowKey(columns []string, row domain.RawRow) string {
	var b strings.Builder
	for _, column := range columns {
		if row.IsNull(column) {
			b.WriteString("\x00")
		} else {
			fmt.Fprint(&b, row[column])
		}
		b.WriteString("\x1f")
	}
	return b.String()
}

// checkRows verifica tipo e faixa de cada valor não nulo. Linhas são numeradas a partir de 1.
func (s *Service) checkRows(batch domain.RawBatch, flagged *roaring.Bitmap) (typeErrors, rangeErrors, dateErrors []domain.IssueExample) {
	for i, row := range batch.Rows {
		rowNum := i + 1
		before := len(typeErrors) + len(rangeErrors) + len(dateErrors)

		if !row.IsNull(domain.ColumnDate) {
			if _, err := domain.ParseDate(row[domain.ColumnDate]); err != nil {
				dateErrors = append(dateErrors, domain.IssueExample{Row: rowNum})
			}
		}

		if !row.IsNull(domain.ColumnAmount) {
			raw := row[domain.ColumnAmount]
			amount, err := domain.ParseAmount(raw)
			switch {
			case err != nil:
				typeErrors = append(typeErrors, domain.IssueExample{
					Row:     rowNum,
					Column:  domain.ColumnAmount,
					Value:   fmt.Sprint(raw),
					Message: fmt.Sprintf("row %d: invalid amount type: '%v'", rowNum, raw),
				})
			case amount.IsNegative():
				rangeErrors = append(rangeErrors, domain.IssueExample{
					Row:     rowNum,
					Column:  domain.ColumnAmount,
					Value:   amount.String(),
					Message: fmt.Sprintf("row %d: negative amount value: %s", rowNum, amount.String()),
				})
			}
		}

		if !row.IsNull(domain.ColumnCustomerID) {
			raw := row[domain.ColumnCustomerID]
			customerID, err := domain.ParseCustomerID(raw)
			switch {
			case err != nil:
				typeErrors = append(typeErrors, domain.IssueExample{
					Row:     rowNum,
					Column:  domain.ColumnCustomerID,
					Value:   fmt.Sprint(raw),
					Message: fmt.Sprintf("row %d: invalid customerID type: '%v'", rowNum, raw),
				})
			case customerID <= 0:
				rangeErrors = append(rangeErrors, domain.IssueExample{
					Row:     rowNum,
					Column:  domain.ColumnCustomerID,
					Value:   fmt.Sprint(customerID),
					Message: fmt.Sprintf("row %d: invalid customerID (must be positive): %d", rowNum, customerID),
				})
			}
		}

		if !row.IsNull(domain.ColumnCategory) {
			if _, err := domain.ParseCategory(row[domain.ColumnCategory]); err != nil {
				typeErrors = append(typeErrors, domain.IssueExample{
					Row:     rowNum,
					Column:  domain.ColumnCategory,
					Message: fmt.Sprintf("row %d: empty category value", rowNum),
				})
			}
		}

		if len(typeErrors)+len(rangeErrors)+len(dateErrors) > before {
			flagged.Add(uint32(i))
		}
	}

	return typeErrors, rangeErrors, dateErrors
}

func firstExamples(examples []domain.IssueExample) []domain.IssueExample {
	if len(examples) > maxExamples {
		return examples[:maxExamples]
	}
	return examples
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(count) / float64(total) * 100)
}

// exceeds compara o percentual sem arredondamento contra o limite
func exceeds(count, total int, threshold float64) bool {
	return total > 0 && float64(count)/float64(total)*100 > threshold
}
