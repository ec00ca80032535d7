package aggregating

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const (
	MinRangeDays = 1
	MaxRangeDays = 365

	topCustomers = 5
)

type Aggregator interface {
	DailyRevenue(ctx context.Context, rangeDays int) ([]domain.DailyRevenuePoint, error)
	ByCategory(ctx context.Context) (*domain.CategoryStats, error)
	CustomerStats(ctx context.Context) (*domain.CustomerStats, error)
}

//go:generate mockgen -source=service.go -destination=mocks/revenue_mock.go -package=mocks

// RevenueSource entrega a receita diária em uma janela com limite próprio
type RevenueSource interface {
	RevenueBetween(ctx context.Context, rangeDays, maxRangeDays int) ([]domain.DailyRevenuePoint, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	today    func() domain.Date
}

func NewService(saleRepo repository.SaleRepository) *Service {
	return &Service{
		saleRepo: saleRepo,
		today:    domain.Today,
	}
}

// NewServiceWithClock permite fixar a data corrente
func NewServiceWithClock(saleRepo repository.SaleRepository, today func() domain.Date) *Service {
	return &Service{
		saleRepo: saleRepo,
		today:    today,
	}
}

// DailyRevenue soma as vendas por dia em [hoje - rangeDays, hoje], em ordem crescente.
// Dias sem vendas são omitidos.
func (s *Service) DailyRevenue(ctx context.Context, rangeDays int) ([]domain.DailyRevenuePoint, error) {
	return s.RevenueBetween(ctx, rangeDays, MaxRangeDays)
}

// RevenueBetween é usado por previsão e detecção, que aceitam janelas próprias
func (s *Service) RevenueBetween(ctx context.Context, rangeDays, maxRangeDays int) ([]domain.DailyRevenuePoint, error) {
	if rangeDays < MinRangeDays || rangeDays > maxRangeDays {
		return nil, errors.Wrapf(domain.ErrInvalidParameter, "range_days deve estar entre %d e %d", MinRangeDays, maxRangeDays)
	}

	end := s.today()
	start := end.AddDays(-rangeDays)

	return s.saleRepo.DailyRevenue(ctx, start, end)
}

// ByCategory retorna o total e a participação de cada categoria, do maior para o menor total
func (s *Service) ByCategory(ctx context.Context) (*domain.CategoryStats, error) {
	totals, err := s.saleRepo.SumByCategory(ctx)
	if err != nil {
		return nil, err
	}

	grand := decimal.Zero
	for _, total := range totals {
		grand = grand.Add(total.Total)
	}

	categories := make([]domain.CategoryShare, 0, len(totals))
	for _, total := range totals {
		pct := 0.0
		if grand.IsPositive() {
			pct, _ = total.Total.Div(grand).Mul(decimal.NewFromInt(100)).Float64()
		}

		categories = append(categories, domain.CategoryShare{
			Category:   total.Category,
			Total:      total.Total,
			Percentage: utils.RoundWithTwoDecimalPlace(pct),
		})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		if cmp := categories[i].Total.Cmp(categories[j].Total); cmp != 0 {
			return cmp > 0
		}
		return categories[i].Category < categories[j].Category
	})

	return &domain.CategoryStats{
		Categories:   categories,
		TotalRevenue: grand,
	}, nil
}

// CustomerStats resume os gastos por cliente e retorna os 5 maiores
func (s *Service) CustomerStats(ctx context.Context) (*domain.CustomerStats, error) {
	totals, err := s.saleRepo.SumByCustomer(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if cmp := totals[i].TotalSpent.Cmp(totals[j].TotalSpent); cmp != 0 {
			return cmp > 0
		}
		return totals[i].CustomerID < totals[j].CustomerID
	})

	revenue := decimal.Zero
	for _, total := range totals {
		revenue = revenue.Add(total.TotalSpent)
	}

	avg := 0.0
	if len(totals) > 0 {
		avg, _ = revenue.Div(decimal.NewFromInt(int64(len(totals)))).Float64()
	}

	top := totals
	if len(top) > topCustomers {
		top = top[:topCustomers]
	}

	return &domain.CustomerStats{
		TotalCustomers:      len(totals),
		TotalRevenue:        revenue,
		AvgSpentPerCustomer: utils.RoundWithTwoDecimalPlace(avg),
		TopCustomers:        top,
	}, nil
}
