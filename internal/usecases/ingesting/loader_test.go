package ingesting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func rawRow(date, amount, category, customerID any) domain.RawRow {
	return domain.RawRow{
		"date":       date,
		"amount":     amount,
		"category":   category,
		"customerID": customerID,
	}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		name    string
		row     domain.RawRow
		wantErr string
	}{
		{name: "linha válida", row: rawRow("2024-01-01", "100.50", " Electronics ", "1")},
		{name: "customerID com fração zero", row: rawRow("2024-01-01", "10", "A", "3.0")},
		{name: "data inválida", row: rawRow("bad-date", "50", "Books", "3"), wantErr: "row 1: invalid date format 'bad-date'"},
		{name: "valor negativo", row: rawRow("2024-01-01", "-1", "A", "1"), wantErr: "row 1: amount cannot be negative"},
		{name: "valor inválido", row: rawRow("2024-01-01", "abc", "A", "1"), wantErr: "row 1: invalid amount 'abc'"},
		{name: "categoria em branco", row: rawRow("2024-01-01", "1", "  ", "1"), wantErr: "row 1: category cannot be empty"},
		{name: "cliente zero", row: rawRow("2024-01-01", "1", "A", "0"), wantErr: "row 1: customerID must be positive"},
		{name: "campo ausente", row: domain.RawRow{"date": "2024-01-01"}, wantErr: "row 1: missing required field 'amount'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParseRow(tt.row, 1)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, record.Category)
			assert.Positive(t, record.CustomerID)
		})
	}
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("aceita duas de três linhas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		loader := NewLoader(saleRepo)

		saleRepo.EXPECT().
			InsertBatch(ctx, "batch1", gomock.Len(2)).
			DoAndReturn(func(_ context.Context, batchID string, records []domain.SaleRecord) (int, error) {
				assert.Equal(t, "2024-01-01", records[0].Date.String())
				assert.Equal(t, "100.5", records[0].Amount.String())
				assert.Equal(t, "Clothing", records[1].Category)
				assert.Equal(t, batchID, records[1].BatchID)
				return len(records), nil
			})

		count, err := loader.Load(ctx, "batch1", []domain.RawRow{
			rawRow("2024-01-01", "100.50", "Electronics", "1"),
			rawRow("2024-01-02", "250.75", "Clothing", "2"),
			rawRow("bad-date", "50", "Books", "3"),
		})

		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("todas as linhas rejeitadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		loader := NewLoader(saleRepo)

		rows := make([]domain.RawRow, 0, 7)
		for i := 0; i < 7; i++ {
			rows = append(rows, rawRow("bad", "10", "A", "1"))
		}

		count, err := loader.Load(ctx, "batch1", rows)

		assert.Zero(t, count)
		assert.ErrorIs(t, err, domain.ErrAllRowsRejected)

		var rejected *AllRowsRejectedError
		require.True(t, errors.As(err, &rejected))
		assert.Equal(t, 7, rejected.Rejected)
		assert.Len(t, rejected.Reasons, 5)
	})

	t.Run("falha de armazenamento é propagada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		loader := NewLoader(saleRepo)

		storageErr := errors.Join(domain.ErrStorage, errors.New("connection reset"))
		saleRepo.EXPECT().InsertBatch(ctx, "batch1", gomock.Any()).Return(0, storageErr)

		count, err := loader.Load(ctx, "batch1", []domain.RawRow{rawRow("2024-01-01", "1", "A", "1")})

		assert.Zero(t, count)
		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}
