package aggregating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedToday = domain.NewDate(2024, time.March, 31)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) (*Service, *mocks.MockSaleRepository) {
	ctrl := gomock.NewController(t)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	return NewServiceWithClock(saleRepo, func() domain.Date { return fixedToday }), saleRepo
}

func TestService_DailyRevenue(t *testing.T) {
	ctx := context.Background()

	t.Run("consulta o intervalo fechado até hoje", func(t *testing.T) {
		service, saleRepo := newTestService(t)

		expected := []domain.DailyRevenuePoint{
			{Date: domain.NewDate(2024, time.March, 2), Revenue: dec("10")},
			{Date: domain.NewDate(2024, time.March, 30), Revenue: dec("20")},
		}
		saleRepo.EXPECT().
			DailyRevenue(ctx, domain.NewDate(2024, time.March, 1), fixedToday).
			Return(expected, nil)

		points, err := service.DailyRevenue(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, expected, points)
	})

	t.Run("intervalo inválido", func(t *testing.T) {
		service, _ := newTestService(t)

		for _, rangeDays := range []int{0, -1, 366} {
			_, err := service.DailyRevenue(ctx, rangeDays)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
		}
	})

	t.Run("erro do repositório", func(t *testing.T) {
		service, saleRepo := newTestService(t)

		saleRepo.EXPECT().DailyRevenue(ctx, gomock.Any(), gomock.Any()).Return(nil, domain.ErrStorage)

		_, err := service.DailyRevenue(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}

func TestService_ByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("percentuais e ordenação", func(t *testing.T) {
		service, saleRepo := newTestService(t)

		saleRepo.EXPECT().SumByCategory(ctx).Return([]domain.CategoryTotal{
			{Category: "B", Total: dec("40")},
			{Category: "A", Total: dec("60")},
		}, nil)

		stats, err := service.ByCategory(ctx)
		require.NoError(t, err)

		require.Len(t, stats.Categories, 2)
		assert.Equal(t, "A", stats.Categories[0].Category)
		assert.Equal(t, 60.0, stats.Categories[0].Percentage)
		assert.Equal(t, "B", stats.Categories[1].Category)
		assert.Equal(t, 40.0, stats.Categories[1].Percentage)
		assert.True(t, stats.TotalRevenue.Equal(dec("100")))
	})

	t.Run("empate ordenado por nome e arredondamento", func(t *testing.T) {
		service, saleRepo := newTestService(t)

		saleRepo.EXPECT().SumByCategory(ctx).Return([]domain.CategoryTotal{
			{Category: "Zeta", Total: dec("1")},
			{Category: "Alpha", Total: dec("1")},
			{Category: "Mid", Total: dec("1")},
		}, nil)

		stats, err := service.ByCategory(ctx)
		require.NoError(t, err)

		assert.Equal(t, "Alpha", stats.Categories[0].Category)
		assert.Equal(t, "Mid", stats.Categories[1].Category)
		assert.Equal(t, "Zeta", stats.Categories[2].Category)
		assert.Equal(t, 33.33, stats.Categories[0].Percentage)
	})

	t.Run("total zero", func(t *testing.T) {
		service, saleRepo := newTestService(t)

		saleRepo.EXPECT().SumByCategory(ctx).Return([]domain.CategoryTotal{
			{Category: "A", Total: decimal.Zero},
		}, nil)

		stats, err := service.ByCategory(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Categories[0].Percentage)
	})

	t.Run("consultas repetidas são idempotentes", func(t *testing.T) {
		service, saleRepo := newTestService(t)

		totals := []domain.CategoryTotal{{Category: "A", Total: dec("60")}, {Category: "B", Total: dec("40")}}
		saleRepo.EXPECT().SumByCategory(ctx).Return(totals, nil).Times(2)

		first, err := service.ByCategory(ctx)
		require.NoError(t, err)
		second, err := service.ByCategory(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestService_CustomerStats(t *testing.T) {
	ctx := context.Background()

	t.Run("top 5 e média", func(t *testing.T) {
		service, saleRepo := newTestService(t)

		saleRepo.EXPECT().SumByCustomer(ctx).Return([]domain.CustomerTotal{
			{CustomerID: 1, TotalSpent: dec("10"), TransactionCount: 1},
			{CustomerID: 2, TotalSpent: dec("70"), TransactionCount: 3},
			{CustomerID: 3, TotalSpent: dec("30"), TransactionCount: 2},
			{CustomerID: 4, TotalSpent: dec("5"), TransactionCount: 1},
			{CustomerID: 5, TotalSpent: dec("50"), TransactionCount: 1},
			{CustomerID: 6, TotalSpent: dec("35"), TransactionCount: 4},
		}, nil)

		stats, err := service.CustomerStats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 6, stats.TotalCustomers)
		assert.True(t, stats.TotalRevenue.Equal(dec("200")))
		assert.Equal(t, 33.33, stats.AvgSpentPerCustomer)
		require.Len(t, stats.TopCustomers, 5)

		ids := make([]int64, 0, 5)
		for _, c := range stats.TopCustomers {
			ids = append(ids, c.CustomerID)
		}
		assert.Equal(t, []int64{2, 5, 6, 3, 1}, ids)
	})

	t.Run("sem clientes", func(t *testing.T) {
		service, saleRepo := newTestService(t)

		saleRepo.EXPECT().SumByCustomer(ctx).Return([]domain.CustomerTotal{}, nil)

		stats, err := service.CustomerStats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalCustomers)
		assert.Zero(t, stats.AvgSpentPerCustomer)
		assert.Empty(t, stats.TopCustomers)
	})

	t.Run("erro do repositório", func(t *testing.T) {
		service, saleRepo := newTestService(t)

		saleRepo.EXPECT().SumByCustomer(ctx).Return(nil, errors.Join(domain.ErrStorage, errors.New("timeout")))

		_, err := service.CustomerStats(ctx)
		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}
