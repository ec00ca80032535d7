package domain

import "github.com/shopspring/decimal"

// ForecastResult contém a previsão dia a dia; todas as listas têm o mesmo tamanho
type ForecastResult struct {
	Dates     []Date    `json:"dates"`
	Predicted []float64 `json:"predicted"`
	Lower     []float64 `json:"lower"`
	Upper     []float64 `json:"upper"`
}

// Anomaly é um dia sinalizado pelo detector. Score menor = mais anômalo.
type Anomaly struct {
	Date  Date            `json:"date"`
	Value decimal.Decimal `json:"value"`
	Score float64         `json:"score"`
}

// AnomalyReport traz a série completa e o subconjunto sinalizado, do mais anômalo ao menos
type AnomalyReport struct {
	Dates     []Date            `json:"dates"`
	Revenue   []decimal.Decimal `json:"revenue"`
	Anomalies []Anomaly         `json:"anomalies"`
}
