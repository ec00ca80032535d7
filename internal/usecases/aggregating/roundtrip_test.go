package aggregating

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ingesting"
)

// memorySaleRepository guarda as vendas em memória para testes de ponta a ponta
type memorySaleRepository struct {
	records []domain.SaleRecord
}

func (r *memorySaleRepository) InsertBatch(_ context.Context, batchID string, records []domain.SaleRecord) (int, error) {
	for _, record := range records {
		record.ID = int64(len(r.records) + 1)
		record.BatchID = batchID
		r.records = append(r.records, record)
	}
	return len(records), nil
}

func (r *memorySaleRepository) DailyRevenue(_ context.Context, start, end domain.Date) ([]domain.DailyRevenuePoint, error) {
	sums := make(map[string]decimal.Decimal)
	dates := make(map[string]domain.Date)
	for _, record := range r.records {
		if record.Date.Before(start.Time) || record.Date.After(end.Time) {
			continue
		}
		key := record.Date.String()
		sums[key] = sums[key].Add(record.Amount)
		dates[key] = record.Date
	}

	points := make([]domain.DailyRevenuePoint, 0, len(sums))
	for key, sum := range sums {
		points = append(points, domain.DailyRevenuePoint{Date: dates[key], Revenue: sum})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date.Time) })

	return points, nil
}

func (r *memorySaleRepository) SumByCategory(context.Context) ([]domain.CategoryTotal, error) {
	sums := make(map[string]decimal.Decimal)
	for _, record := range r.records {
		sums[record.Category] = sums[record.Category].Add(record.Amount)
	}

	totals := make([]domain.CategoryTotal, 0, len(sums))
	for category, sum := range sums {
		totals = append(totals, domain.CategoryTotal{Category: category, Total: sum})
	}
	return totals, nil
}

func (r *memorySaleRepository) SumByCustomer(context.Context) ([]domain.CustomerTotal, error) {
	byCustomer := make(map[int64]*domain.CustomerTotal)
	for _, record := range r.records {
		total, ok := byCustomer[record.CustomerID]
		if !ok {
			total = &domain.CustomerTotal{CustomerID: record.CustomerID}
			byCustomer[record.CustomerID] = total
		}
		total.TotalSpent = total.TotalSpent.Add(record.Amount)
		total.TransactionCount++
	}

	totals := make([]domain.CustomerTotal, 0, len(byCustomer))
	for _, total := range byCustomer {
		totals = append(totals, *total)
	}
	return totals, nil
}

func (r *memorySaleRepository) Search(context.Context, domain.SaleFilters) ([]domain.SaleRecord, int, error) {
	return r.records, len(r.records), nil
}

func (r *memorySaleRepository) Export(context.Context, domain.SaleFilters) ([]domain.SaleRecord, error) {
	return r.records, nil
}

func TestRoundTrip_LoadThenAggregate(t *testing.T) {
	ctx := context.Background()
	repo := &memorySaleRepository{}

	loader := ingesting.NewLoader(repo)
	count, err := loader.Load(ctx, "batch1", []domain.RawRow{
		{"date": "2024-01-01", "amount": "100.50", "category": "Electronics", "customerID": "1"},
		{"date": "2024-01-02", "amount": "250.75", "category": "Clothing", "customerID": "2"},
		{"date": "bad-date", "amount": "50", "category": "Books", "customerID": "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	service := NewServiceWithClock(repo, func() domain.Date { return domain.NewDate(2024, time.January, 10) })

	points, err := service.DailyRevenue(ctx, 30)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2024-01-01", points[0].Date.String())
	assert.True(t, points[0].Revenue.Equal(decimal.RequireFromString("100.50")))
	assert.Equal(t, "2024-01-02", points[1].Date.String())
	assert.True(t, points[1].Revenue.Equal(decimal.RequireFromString("250.75")))

	first, err := service.CustomerStats(ctx)
	require.NoError(t, err)
	second, err := service.CustomerStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.TotalCustomers)
	assert.Equal(t, 175.63, first.AvgSpentPerCustomer)
}
