package summarizing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const (
	defaultPeriod = "30 days"

	revenueLines  = 10
	customerLines = 5

	systemPrompt = "You are a helpful business analyst that provides clear, actionable insights from sales data."
)

// BuildPrompt monta o texto enviado ao modelo com as métricas principais do painel
func BuildPrompt(req domain.InsightsRequest) string {
	period := strings.TrimSpace(req.Period)
	if period == "" {
		period = defaultPeriod
	}

	total := decimal.Zero
	for _, p := range req.Revenue {
		total = total.Add(p.Revenue)
	}
	avgDaily := decimal.Zero
	if len(req.Revenue) > 0 {
		avgDaily = total.Div(decimal.NewFromInt(int64(len(req.Revenue))))
	}

	topCategory, topCategoryPct := "N/A", "0"
	if len(req.Categories) > 0 {
		topCategory = req.Categories[0].Category
		topCategoryPct = formatPercent(req.Categories[0].Percentage)
	}

	topCustomer, topCustomerSpent := "N/A", decimal.Zero
	if len(req.TopCustomers) > 0 {
		topCustomer = strconv.FormatInt(req.TopCustomers[0].CustomerID, 10)
		topCustomerSpent = req.TopCustomers[0].TotalSpent
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a business analyst reviewing sales data for the past %s. \n\n", period)
	b.WriteString("Key Metrics:\n")
	fmt.Fprintf(&b, "- Total Revenue: %s\n", utils.FormatMoney(total))
	fmt.Fprintf(&b, "- Average Daily Revenue: %s\n", utils.FormatMoney(avgDaily))
	fmt.Fprintf(&b, "- Top Category: %s (%s%% of revenue)\n", topCategory, topCategoryPct)
	fmt.Fprintf(&b, "- Top Customer: Customer #%s (%s total)\n\n", topCustomer, utils.FormatMoney(topCustomerSpent))

	b.WriteString("Revenue Trends:\n")
	b.WriteString(formatRevenue(req.Revenue))
	b.WriteString("\n\nCategory Breakdown:\n")
	b.WriteString(formatCategories(req.Categories))
	b.WriteString("\n\nTop Customers:\n")
	b.WriteString(formatCustomers(req.TopCustomers))

	b.WriteString("\n\nPlease provide:\n")
	b.WriteString("1. A brief summary of key trends\n")
	b.WriteString("2. Notable patterns or anomalies\n")
	b.WriteString("3. Actionable recommendations for improving sales\n")
	b.WriteString("4. Customer insights\n\n")
	b.WriteString("Keep the response concise (2-3 paragraphs) and focused on business value.")

	return b.String()
}

func formatRevenue(points []domain.DailyRevenuePoint) string {
	if len(points) == 0 {
		return "No revenue data available"
	}
	if len(points) > revenueLines {
		points = points[:revenueLines]
	}

	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("- %s: %s", p.Date, utils.FormatMoney(p.Revenue)))
	}
	return strings.Join(lines, "\n")
}

func formatCategories(categories []domain.CategoryShare) string {
	if len(categories) == 0 {
		return "No category data available"
	}

	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("- %s: %s (%s%%)", c.Category, utils.FormatMoney(c.Total), formatPercent(c.Percentage)))
	}
	return strings.Join(lines, "\n")
}

func formatCustomers(customers []domain.CustomerTotal) string {
	if len(customers) == 0 {
		return "No customer data available"
	}
	if len(customers) > customerLines {
		customers = customers[:customerLines]
	}

	lines := make([]string, 0, len(customers))
	for _, c := range customers {
		lines = append(lines, fmt.Sprintf("- Customer #%d: %s (%d transactions)", c.CustomerID, utils.FormatMoney(c.TotalSpent), c.TransactionCount))
	}
	return strings.Join(lines, "\n")
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
