package detecting

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

const (
	MinRangeDays = 7
	MaxRangeDays = 365

	// dias com vendas necessários para o ajuste
	MinDataDays = 7
)

//go:generate mockgen -source=service.go -destination=mocks/detector_mock.go -package=mocks

type Detector interface {
	Detect(ctx context.Context, rangeDays int) (*domain.AnomalyReport, error)
}

// Scorer atribui um score e um rótulo de anomalia a cada valor
type Scorer interface {
	Score(values []float64) ([]float64, []bool)
}

type Service struct {
	revenue aggregating.RevenueSource
	scorer  Scorer
}

func NewService(revenue aggregating.RevenueSource, scorer Scorer) *Service {
	return &Service{
		revenue: revenue,
		scorer:  scorer,
	}
}

// Detect procura dias com receita fora do padrão nos últimos rangeDays dias.
// Dias sem vendas não entram na série.
func (s *Service) Detect(ctx context.Context, rangeDays int) (*domain.AnomalyReport, error) {
	if rangeDays < MinRangeDays || rangeDays > MaxRangeDays {
		return nil, errors.Wrapf(domain.ErrInvalidParameter, "range_days deve estar entre %d e %d", MinRangeDays, MaxRangeDays)
	}

	points, err := s.revenue.RevenueBetween(ctx, rangeDays, MaxRangeDays)
	if err != nil {
		return nil, err
	}

	return Detect(ctx, points, s.scorer)
}

// Detect rotula os pontos com o scorer e devolve a série completa junto com os dias
// sinalizados, do mais anômalo para o menos anômalo.
func Detect(ctx context.Context, points []domain.DailyRevenuePoint, scorer Scorer) (*domain.AnomalyReport, error) {
	if len(points) < MinDataDays {
		return nil, domain.NewAnalyticsError(
			domain.ErrInsufficientData,
			apiErrors.ErrInsufficientData,
			fmt.Sprintf("são necessários pelo menos %d dias com vendas, encontrados %d", MinDataDays, len(points)),
		)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &domain.AnomalyReport{
		Dates:     make([]domain.Date, 0, len(points)),
		Revenue:   make([]decimal.Decimal, 0, len(points)),
		Anomalies: make([]domain.Anomaly, 0),
	}

	values := make([]float64, 0, len(points))
	for _, p := range points {
		report.Dates = append(report.Dates, p.Date)
		report.Revenue = append(report.Revenue, p.Revenue)
		values = append(values, p.Revenue.InexactFloat64())
	}

	scores, labels := scorer.Score(values)
	for i, outlier := range labels {
		if !outlier {
			continue
		}
		report.Anomalies = append(report.Anomalies, domain.Anomaly{
			Date:  points[i].Date,
			Value: points[i].Revenue,
			Score: scores[i],
		})
	}

	sort.SliceStable(report.Anomalies, func(i, j int) bool {
		return report.Anomalies[i].Score < report.Anomalies[j].Score
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"data_days": len(points),
		"anomalies": len(report.Anomalies),
	}).Debug("Detecção de anomalias concluída")

	return report, nil
}
