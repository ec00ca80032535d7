package domain

import "github.com/shopspring/decimal"

// DailyRevenuePoint é a receita somada de um dia com vendas
type DailyRevenuePoint struct {
	Date    Date            `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CategoryTotal é a soma das vendas de uma categoria, como retornada pelo banco
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CustomerTotal é a soma e a quantidade de vendas de um cliente, como retornadas pelo banco
type CustomerTotal struct {
	CustomerID       int64           `json:"customerID"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	TransactionCount int             `json:"transaction_count"`
}

type RevenueStats struct {
	Data      []DailyRevenuePoint `json:"data"`
	RangeDays int                 `json:"range_days"`
}

type CategoryShare struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Percentage float64         `json:"percentage"`
}

type CategoryStats struct {
	Categories   []CategoryShare `json:"categories"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type CustomerStats struct {
	TotalCustomers      int             `json:"total_customers"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	AvgSpentPerCustomer float64         `json:"avg_spent_per_customer"`
	TopCustomers        []CustomerTotal `json:"top_customers"`
}
