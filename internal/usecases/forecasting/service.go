package forecasting

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

const (
	MinPeriodDays = 7
	MaxPeriodDays = 90

	// janela de histórico consultada para o ajuste
	HistoryDays = 365
)

//go:generate mockgen -source=service.go -destination=mocks/forecaster_mock.go -package=mocks

type Forecaster interface {
	Forecast(ctx context.Context, periodDays int) (*domain.ForecastResult, error)
}

type Service struct {
	revenue aggregating.RevenueSource
	model   Model
}

func NewService(revenue aggregating.RevenueSource, model Model) *Service {
	return &Service{
		revenue: revenue,
		model:   model,
	}
}

// Forecast prevê a receita dos próximos periodDays dias a partir do último ano de vendas
func (s *Service) Forecast(ctx context.Context, periodDays int) (*domain.ForecastResult, error) {
	if err := validatePeriod(periodDays); err != nil {
		return nil, err
	}

	points, err := s.revenue.RevenueBetween(ctx, HistoryDays, HistoryDays)
	if err != nil {
		return nil, err
	}

	return Forecast(ctx, points, periodDays, s.model)
}

// Forecast preenche as lacunas da série, escolhe a configuração, ajusta o modelo e
// amortece históricos curtos. O contexto só é verificado antes do ajuste.
func Forecast(ctx context.Context, points []domain.DailyRevenuePoint, periodDays int, model Model) (*domain.ForecastResult, error) {
	if err := validatePeriod(periodDays); err != nil {
		return nil, err
	}

	if observed := distinctDays(points); observed < MinHistoryDays {
		return nil, domain.NewAnalyticsError(
			domain.ErrInsufficientData,
			apiErrors.ErrInsufficientData,
			fmt.Sprintf("são necessários pelo menos %d dias de histórico, encontrados %d", MinHistoryDays, observed),
		)
	}

	dates, series := GapFill(points)

	cfg, regime := SelectConfig(series)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"data_days": len(series),
		"regime":    regime,
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	curve, err := model.Fit(series, cfg)
	if err != nil {
		logger.WithError(err).Error("Falha ao ajustar o modelo de previsão")
		return nil, domain.NewAnalyticsError(domain.ErrModelFit, apiErrors.ErrModelFit, err.Error())
	}

	estimates := curve.Extrapolate(periodDays)
	if len(estimates) != periodDays {
		return nil, domain.NewAnalyticsError(
			domain.ErrModelFit,
			apiErrors.ErrModelFit,
			fmt.Sprintf("modelo retornou %d pontos, esperados %d", len(estimates), periodDays),
		)
	}

	if len(series) < ShortHistoryDays {
		Dampen(series, estimates)
	}

	result := &domain.ForecastResult{
		Dates:     make([]domain.Date, 0, periodDays),
		Predicted: make([]float64, 0, periodDays),
		Lower:     make([]float64, 0, periodDays),
		Upper:     make([]float64, 0, periodDays),
	}

	last := dates[len(dates)-1]
	for i, e := range estimates {
		if !finite(e.Value, e.Lower, e.Upper) {
			return nil, domain.NewAnalyticsError(domain.ErrModelFit, apiErrors.ErrModelFit, "previsão com valor não numérico")
		}
		result.Dates = append(result.Dates, last.AddDays(i+1))
		result.Predicted = append(result.Predicted, e.Value)
		result.Lower = append(result.Lower, e.Lower)
		result.Upper = append(result.Upper, e.Upper)
	}

	logger.Debug("Previsão gerada")

	return result, nil
}

func validatePeriod(periodDays int) error {
	if periodDays < MinPeriodDays || periodDays > MaxPeriodDays {
		return errors.Wrapf(domain.ErrInvalidParameter, "period_days deve estar entre %d e %d", MinPeriodDays, MaxPeriodDays)
	}
	return nil
}

// distinctDays conta as datas com venda registrada, sem os dias preenchidos com zero
func distinctDays(points []domain.DailyRevenuePoint) int {
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		seen[p.Date.String()] = struct{}{}
	}
	return len(seen)
}
