package ingesting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

const utf8BOM = "\ufeff"

// ReadCSV lê um CSV com cabeçalho e devolve o lote bruto. Campos ausentes em linhas
// curtas ficam fora do mapa e são tratados como nulos.
func ReadCSV(r io.Reader) (domain.RawBatch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return domain.RawBatch{}, ErrEmptyFile
	}
	if err != nil {
		return domain.RawBatch{}, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
	}

	columns := make([]string, 0, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		columns = append(columns, strings.TrimSpace(name))
	}

	rows := make([]domain.RawRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.RawBatch{}, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
		}

		row := make(domain.RawRow, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return domain.RawBatch{Columns: columns, Rows: rows}, nil
}

// WriteCSV escreve as vendas no formato de exportação
func WriteCSV(w io.Writer, records []domain.SaleRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"id", "date", "amount", "category", "customerID"}); err != nil {
		return err
	}

	for _, record := range records {
		if err := writer.Write([]string{
			fmt.Sprint(record.ID),
			record.Date.String(),
			record.Amount.String(),
			record.Category,
			fmt.Sprint(record.CustomerID),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
