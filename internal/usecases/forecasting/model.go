package forecasting

import (
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Estimate é um ponto extrapolado com seu intervalo de confiança
type Estimate struct {
	Value float64
	Lower float64
	Upper float64
}

// Curve é o resultado de um ajuste, capaz de extrapolar os próximos dias
type Curve interface {
	Extrapolate(steps int) []Estimate
}

// Model ajusta uma curva a uma série diária contínua
type Model interface {
	Fit(history []float64, cfg ModelConfig) (Curve, error)
}

// ModelConfig é a configuração escolhida pela política de seleção
type ModelConfig struct {
	WeeklySeasonality      bool
	YearlySeasonality      bool
	DailySeasonality       bool // sem efeito em séries diárias
	ChangepointSensitivity float64
	SeasonalityPrior       float64
	IntervalWidth          float64
}

const (
	weeklyPeriod = 7
	yearlyPeriod = 365

	// sensibilidade de referência que dá peso 0.5 à inclinação ajustada
	referenceSensitivity = 0.05
)

var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// DecompositionModel decompõe a série em tendência linear, sazonalidade semanal e anual
// e resíduo. A inclinação é amortecida pela sensibilidade a mudanças de tendência e os
// componentes sazonais pela força derivada do prior.
type DecompositionModel struct{}

func NewDecompositionModel() *DecompositionModel {
	return &DecompositionModel{}
}

type decompositionCurve struct {
	n      int
	level  float64
	slope  float64
	weekly []float64
	yearly []float64
	sigma  float64
	z      float64
}

func (m *DecompositionModel) Fit(history []float64, cfg ModelConfig) (Curve, error) {
	n := len(history)
	if n < 2 {
		return nil, errors.Wrapf(domain.ErrModelFit, "série com %d pontos", n)
	}

	for i, v := range history {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(domain.ErrModelFit, "valor inválido na posição %d", i)
		}
	}

	if cfg.IntervalWidth <= 0 || cfg.IntervalWidth >= 1 {
		return nil, errors.Wrapf(domain.ErrModelFit, "largura de intervalo %.2f", cfg.IntervalWidth)
	}

	slope, mean := linearFit(history)
	weight := cfg.ChangepointSensitivity / (cfg.ChangepointSensitivity + referenceSensitivity)
	slope *= weight
	center := float64(n-1) / 2
	level := mean - slope*center

	residual := make([]float64, n)
	for i, v := range history {
		residual[i] = v - (level + slope*float64(i))
	}

	strength := 0.0
	if cfg.SeasonalityPrior > 0 {
		strength = cfg.SeasonalityPrior / (cfg.SeasonalityPrior + 1)
	}

	curve := &decompositionCurve{
		n:     n,
		level: level,
		slope: slope,
		z:     standardNormal.Quantile((1 + cfg.IntervalWidth) / 2),
	}

	if cfg.WeeklySeasonality && n >= weeklyPeriod {
		curve.weekly = seasonalPattern(residual, weeklyPeriod, strength)
		subtractPattern(residual, curve.weekly)
	}

	if cfg.YearlySeasonality && n >= yearlyPeriod {
		curve.yearly = seasonalPattern(residual, yearlyPeriod, strength)
		subtractPattern(residual, curve.yearly)
	}

	curve.sigma = floats.Norm(residual, 2) / math.Sqrt(float64(n-1))

	if !finite(curve.level, curve.slope, curve.sigma, curve.z) {
		return nil, errors.Wrap(domain.ErrModelFit, "ajuste numérico divergiu")
	}

	return curve, nil
}

func (c *decompositionCurve) Extrapolate(steps int) []Estimate {
	estimates := make([]Estimate, 0, steps)
	for h := 1; h <= steps; h++ {
		t := c.n - 1 + h
		value := c.level + c.slope*float64(t)
		if c.weekly != nil {
			value += c.weekly[t%weeklyPeriod]
		}
		if c.yearly != nil {
			value += c.yearly[t%yearlyPeriod]
		}

		half := c.z * c.sigma * math.Sqrt(1+float64(h)/float64(c.n))
		estimates = append(estimates, Estimate{
			Value: value,
			Lower: value - half,
			Upper: value + half,
		})
	}
	return estimates
}

// linearFit retorna a inclinação por mínimos quadrados e a média da série
func linearFit(values []float64) (slope, mean float64) {
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}

	_, slope = stat.LinearRegression(xs, values, nil, false)
	return slope, stat.Mean(values, nil)
}

// seasonalPattern calcula a média por posição no período, centrada em zero
func seasonalPattern(values []float64, period int, strength float64) []float64 {
	pattern := make([]float64, period)
	counts := make([]int, period)
	for i, v := range values {
		pattern[i%period] += v
		counts[i%period]++
	}

	sum := 0.0
	for i := range pattern {
		if counts[i] > 0 {
			pattern[i] /= float64(counts[i])
		}
		sum += pattern[i]
	}

	mean := sum / float64(period)
	for i := range pattern {
		pattern[i] = (pattern[i] - mean) * strength
	}
	return pattern
}

func subtractPattern(values, pattern []float64) {
	for i := range values {
		values[i] -= pattern[i%len(pattern)]
	}
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
