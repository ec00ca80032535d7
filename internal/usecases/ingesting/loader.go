package ingesting

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

type Loader struct {
	saleRepo repository.SaleRepository
}

func NewLoader(saleRepo repository.SaleRepository) *Loader {
	return &Loader{saleRepo: saleRepo}
}

// ParseRow converte uma linha bruta em venda. rowNum é usado apenas na mensagem de erro.
func ParseRow(row domain.RawRow, rowNum int) (domain.SaleRecord, error) {
	for _, column := range domain.RequiredColumns {
		if row.IsNull(column) {
			return domain.SaleRecord{}, fmt.Errorf("row %d: missing required field '%s'", rowNum, column)
		}
	}

	date, err := domain.ParseDate(row[domain.ColumnDate])
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("row %d: %w", rowNum, err)
	}

	amount, err := domain.ParseAmount(row[domain.ColumnAmount])
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("row %d: %w", rowNum, err)
	}
	if amount.IsNegative() {
		return domain.SaleRecord{}, fmt.Errorf("row %d: amount cannot be negative", rowNum)
	}

	category, err := domain.ParseCategory(row[domain.ColumnCategory])
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("row %d: category cannot be empty", rowNum)
	}

	customerID, err := domain.ParseCustomerID(row[domain.ColumnCustomerID])
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("row %d: %w", rowNum, err)
	}
	if customerID <= 0 {
		return domain.SaleRecord{}, fmt.Errorf("row %d: customerID must be positive", rowNum)
	}

	return domain.SaleRecord{
		Date:       date,
		Amount:     amount,
		Category:   category,
		CustomerID: customerID,
	}, nil
}

// Load converte cada linha de forma independente e grava as aceitas em uma única transação.
// Retorna a quantidade gravada; se todas forem rejeitadas, nada é gravado.
func (l *Loader) Load(ctx context.Context, batchID string, rows []domain.RawRow) (int, error) {
	logger := log.ForContext(ctx).WithField("batch_id", batchID)

	records := make([]domain.SaleRecord, 0, len(rows))
	reasons := make([]string, 0)

	for i, row := range rows {
		record, err := ParseRow(row, i+1)
		if err != nil {
			reasons = append(reasons, err.Error())
			continue
		}
		record.BatchID = batchID
		records = append(records, record)
	}

	if len(records) == 0 {
		if len(reasons) == 0 {
			return 0, nil
		}
		return 0, newAllRowsRejectedError(reasons)
	}

	if len(reasons) > 0 {
		logger.WithField("rows", len(reasons)).
			Warnf("Linhas inválidas ignoradas: %s", strings.Join(firstReasons(reasons), "; "))
	}

	count, err := l.saleRepo.InsertBatch(ctx, batchID, records)
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar lote de vendas")
		return 0, err
	}

	logger.WithField("rows", count).Info("Lote de vendas gravado")
	return count, nil
}
