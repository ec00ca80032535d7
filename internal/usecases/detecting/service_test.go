package detecting

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating/mocks"
	"go.uber.org/mock/gomock"
)

var firstDay = domain.NewDate(2024, time.February, 1)

func dailySeries(values ...int64) []domain.DailyRevenuePoint {
	points := make([]domain.DailyRevenuePoint, 0, len(values))
	for i, v := range values {
		points = append(points, domain.DailyRevenuePoint{
			Date:    firstDay.AddDays(i),
			Revenue: decimal.NewFromInt(v),
		})
	}
	return points
}

type fixedScorer struct {
	scores []float64
	labels []bool
}

func (s fixedScorer) Score([]float64) ([]float64, []bool) {
	return s.scores, s.labels
}

func TestDetect(t *testing.T) {
	ctx := context.Background()

	t.Run("seis dias é insuficiente", func(t *testing.T) {
		report, err := Detect(ctx, dailySeries(1, 2, 3, 4, 5, 6), NewIsolationForest())
		assert.Nil(t, report)
		assert.ErrorIs(t, err, domain.ErrInsufficientData)
	})

	t.Run("pico é o mais anômalo", func(t *testing.T) {
		points := dailySeries(100, 102, 98, 101, 99, 100, 103, 97, 100, 5000, 101, 99, 100, 98, 102, 100, 101, 99, 100, 100)

		report, err := Detect(ctx, points, NewIsolationForest())
		require.NoError(t, err)

		assert.Len(t, report.Dates, len(points))
		assert.Len(t, report.Revenue, len(points))
		require.NotEmpty(t, report.Anomalies)

		assert.Equal(t, firstDay.AddDays(9), report.Anomalies[0].Date)
		assert.True(t, decimal.NewFromInt(5000).Equal(report.Anomalies[0].Value))
		assert.True(t, sort.SliceIsSorted(report.Anomalies, func(i, j int) bool {
			return report.Anomalies[i].Score < report.Anomalies[j].Score
		}))
	})

	t.Run("resultado reproduzível", func(t *testing.T) {
		points := dailySeries(10, 50, 20, 80, 15, 300, 25, 60, 5, 40)

		first, err := Detect(ctx, points, NewIsolationForest())
		require.NoError(t, err)
		second, err := Detect(ctx, points, NewIsolationForest())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("série constante não tem anomalias", func(t *testing.T) {
		report, err := Detect(ctx, dailySeries(50, 50, 50, 50, 50, 50, 50, 50), NewIsolationForest())
		require.NoError(t, err)
		assert.Empty(t, report.Anomalies)
		assert.Len(t, report.Dates, 8)
	})

	t.Run("rótulo decide, não o score", func(t *testing.T) {
		scorer := fixedScorer{
			scores: []float64{-0.4, -0.9, -0.7, -0.95, -0.5, -0.45, -0.42},
			labels: []bool{false, true, true, false, false, false, false},
		}

		report, err := Detect(ctx, dailySeries(1, 2, 3, 4, 5, 6, 7), scorer)
		require.NoError(t, err)

		require.Len(t, report.Anomalies, 2)
		assert.Equal(t, firstDay.AddDays(1), report.Anomalies[0].Date)
		assert.Equal(t, firstDay.AddDays(2), report.Anomalies[1].Date)
	})
}

func TestService_Detect(t *testing.T) {
	ctx := context.Background()

	t.Run("consulta o intervalo pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		revenue := mocks.NewMockRevenueSource(ctrl)
		service := NewService(revenue, NewIsolationForest())

		revenue.EXPECT().
			RevenueBetween(ctx, 30, MaxRangeDays).
			Return(dailySeries(1, 2, 3, 4, 5, 6, 7, 8), nil)

		report, err := service.Detect(ctx, 30)
		require.NoError(t, err)
		assert.Len(t, report.Dates, 8)
	})

	t.Run("intervalo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockRevenueSource(ctrl), NewIsolationForest())

		for _, rangeDays := range []int{6, 366} {
			_, err := service.Detect(ctx, rangeDays)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
		}
	})
}
