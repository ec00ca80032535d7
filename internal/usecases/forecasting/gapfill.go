package forecasting

import (
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

// GapFill monta a série contínua entre o menor e o maior dia observado.
// Dias sem vendas recebem receita zero.
func GapFill(points []domain.DailyRevenuePoint) ([]domain.Date, []float64) {
	if len(points) == 0 {
		return nil, nil
	}

	first, last := points[0].Date, points[0].Date
	byDay := make(map[string]float64, len(points))
	for _, p := range points {
		if p.Date.Before(first.Time) {
			first = p.Date
		}
		if p.Date.After(last.Time) {
			last = p.Date
		}
		byDay[p.Date.String()] += p.Revenue.InexactFloat64()
	}

	days := first.DaysUntil(last) + 1
	dates := make([]domain.Date, 0, days)
	values := make([]float64, 0, days)
	for i := 0; i < days; i++ {
		d := first.AddDays(i)
		dates = append(dates, d)
		values = append(values, byDay[d.String()])
	}

	return dates, values
}
