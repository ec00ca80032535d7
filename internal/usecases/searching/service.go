package searching

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

//go:generate mockgen -source=service.go -destination=mocks/searcher_mock.go -package=mocks

type Searcher interface {
	Search(ctx context.Context, filters domain.SaleFilters) (*domain.SaleSearchResult, error)
	Export(ctx context.Context, filters domain.SaleFilters) ([]domain.SaleRecord, error)
}

type Service struct {
	saleRepo repository.SaleRepository
}

func NewService(saleRepo repository.SaleRepository) *Service {
	return &Service{
		saleRepo: saleRepo,
	}
}

// Search pagina as vendas filtradas, da mais recente para a mais antiga
func (s *Service) Search(ctx context.Context, filters domain.SaleFilters) (*domain.SaleSearchResult, error) {
	if filters.Limit == 0 {
		filters.Limit = DefaultLimit
	}
	if filters.Limit > MaxLimit {
		return nil, errors.Wrapf(domain.ErrInvalidParameter, "limit deve estar entre 1 e %d", MaxLimit)
	}
	if err := checkRange(filters); err != nil {
		return nil, err
	}

	records, total, err := s.saleRepo.Search(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &domain.SaleSearchResult{
		Results: records,
		Total:   total,
		Limit:   filters.Limit,
		Offset:  filters.Offset,
		HasMore: filters.Offset+filters.Limit < uint64(total),
	}, nil
}

// Export retorna todas as vendas filtradas; a categoria é buscada por trecho
func (s *Service) Export(ctx context.Context, filters domain.SaleFilters) ([]domain.SaleRecord, error) {
	filters.CategoryContains = true
	if err := checkRange(filters); err != nil {
		return nil, err
	}

	records, err := s.saleRepo.Export(ctx, filters)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}

	return records, nil
}

func checkRange(filters domain.SaleFilters) error {
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(filters.StartDate.Time) {
		return errors.Wrap(domain.ErrInvalidParameter, "end_date anterior a start_date")
	}
	if filters.MinAmount != nil && filters.MaxAmount != nil && filters.MaxAmount.LessThan(*filters.MinAmount) {
		return errors.Wrap(domain.ErrInvalidParameter, "max_amount menor que min_amount")
	}
	return nil
}
