package domain

// InsightsRequest traz os dados do painel que serão resumidos pela IA
type InsightsRequest struct {
	Revenue      []DailyRevenuePoint `json:"revenue" validate:"max=366"`
	Categories   []CategoryShare     `json:"categories" validate:"max=500"`
	TopCustomers []CustomerTotal     `json:"top_customers" validate:"max=100"`
	Period       string              `json:"period" validate:"max=50"`
}

type Insights struct {
	Insights string `json:"insights"`
	Success  bool   `json:"success"`
}
