package forecasting

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Parâmetros da política de seleção e do amortecimento
const (
	MinHistoryDays          = 7
	ShortHistoryDays        = 30
	YearlyHistoryDays       = 365
	TrendGrowthRate         = 0.2
	IntervalWidth           = 0.95
	NormalSensitivity       = 0.05
	ConservativeSensitivity = 0.01
	NormalSeasonalityPrior  = 10.0
	ReducedSeasonalityPrior = 1.0

	RecentWindowDays    = 7
	MaxReasonableFactor = 2.5
	MinReasonableFactor = 0.3
	PullFactor          = 0.5
	UpperBoundFactor    = 1.5
	LowerBoundFactor    = 0.5
)

// Regime descreve qual ramo da política foi escolhido
type Regime string

const (
	RegimeShortHistory Regime = "short_history"
	RegimeTrend        Regime = "trend"
	RegimeFlat         Regime = "flat"
)

// SelectConfig escolhe a configuração do modelo a partir do tamanho e da tendência da série.
// O crescimento só altera a sensibilidade: a tendência é sempre linear.
func SelectConfig(series []float64) (ModelConfig, Regime) {
	dataDays := len(series)

	cfg := ModelConfig{
		WeeklySeasonality:      dataDays >= MinHistoryDays,
		YearlySeasonality:      dataDays >= YearlyHistoryDays,
		IntervalWidth:          IntervalWidth,
		ChangepointSensitivity: ConservativeSensitivity,
		SeasonalityPrior:       NormalSeasonalityPrior,
	}

	if dataDays < ShortHistoryDays {
		cfg.SeasonalityPrior = ReducedSeasonalityPrior
		return cfg, RegimeShortHistory
	}

	cfg.DailySeasonality = true

	if growth, ok := medianGrowth(series); ok && math.Abs(growth) > TrendGrowthRate {
		cfg.ChangepointSensitivity = NormalSensitivity
		return cfg, RegimeTrend
	}

	return cfg, RegimeFlat
}

// medianGrowth compara a mediana da segunda metade com a da primeira, considerando só dias
// com receita. Primeira mediana zero com segunda positiva conta como crescimento infinito.
func medianGrowth(series []float64) (float64, bool) {
	nonZero := make([]float64, 0, len(series))
	for _, v := range series {
		if v != 0 {
			nonZero = append(nonZero, v)
		}
	}
	if len(nonZero) < 2 {
		return 0, false
	}

	half := len(nonZero) / 2
	first := median(nonZero[:half])
	second := median(nonZero[half:])

	if first == 0 {
		if second > 0 {
			return math.Inf(1), true
		}
		return 0, false
	}

	return (second - first) / math.Abs(first), true
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Dampen aproxima da média recente as previsões extremas de históricos curtos e limita
// os intervalos. Altera estimates no lugar.
func Dampen(history []float64, estimates []Estimate) {
	window := history
	if len(window) > RecentWindowDays {
		window = window[len(window)-RecentWindowDays:]
	}
	if len(window) == 0 {
		return
	}

	recentMean := stat.Mean(window, nil)

	maxReasonable := recentMean * MaxReasonableFactor
	minReasonable := math.Max(0, recentMean*MinReasonableFactor)

	for i := range estimates {
		e := &estimates[i]

		if e.Value > maxReasonable {
			e.Value = recentMean + (e.Value-recentMean)*PullFactor
		} else if e.Value < minReasonable {
			e.Value = recentMean - (recentMean-e.Value)*PullFactor
		}
		e.Value = math.Min(math.Max(e.Value, minReasonable), maxReasonable)

		e.Upper = math.Min(e.Upper, maxReasonable*UpperBoundFactor)
		e.Lower = math.Max(e.Lower, minReasonable*LowerBoundFactor)

		e.Upper = math.Max(e.Upper, e.Value)
		e.Lower = math.Min(e.Lower, e.Value)
	}
}
