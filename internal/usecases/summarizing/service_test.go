package summarizing

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion/completionclient"
	completiondomain "github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion/domain"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion/mocks"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func sampleRequest() domain.InsightsRequest {
	return domain.InsightsRequest{
		Revenue: []domain.DailyRevenuePoint{
			{Date: domain.NewDate(2024, time.January, 1), Revenue: decimal.RequireFromString("1000.50")},
			{Date: domain.NewDate(2024, time.January, 2), Revenue: decimal.RequireFromString("999.50")},
		},
		Categories: []domain.CategoryShare{
			{Category: "Electronics", Total: decimal.RequireFromString("1500"), Percentage: 75},
			{Category: "Books", Total: decimal.RequireFromString("500"), Percentage: 25},
		},
		TopCustomers: []domain.CustomerTotal{
			{CustomerID: 42, TotalSpent: decimal.RequireFromString("1200"), TransactionCount: 3},
		},
		Period: "7 days",
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleRequest())

	assert.Contains(t, prompt, "sales data for the past 7 days")
	assert.Contains(t, prompt, "- Total Revenue: $2,000.00")
	assert.Contains(t, prompt, "- Average Daily Revenue: $1,000.00")
	assert.Contains(t, prompt, "- Top Category: Electronics (75% of revenue)")
	assert.Contains(t, prompt, "- Top Customer: Customer #42 ($1,200.00 total)")
	assert.Contains(t, prompt, "- 2024-01-01: $1,000.50")
	assert.Contains(t, prompt, "- Books: $500.00 (25%)")
	assert.Contains(t, prompt, "- Customer #42: $1,200.00 (3 transactions)")

	t.Run("sem dados", func(t *testing.T) {
		prompt := BuildPrompt(domain.InsightsRequest{})

		assert.Contains(t, prompt, "for the past 30 days")
		assert.Contains(t, prompt, "Top Category: N/A (0% of revenue)")
		assert.Contains(t, prompt, "No revenue data available")
		assert.Contains(t, prompt, "No category data available")
		assert.Contains(t, prompt, "No customer data available")
	})

	t.Run("limita dias e clientes", func(t *testing.T) {
		req := domain.InsightsRequest{}
		for i := 0; i < 15; i++ {
			req.Revenue = append(req.Revenue, domain.DailyRevenuePoint{Date: domain.NewDate(2024, time.March, i+1), Revenue: decimal.NewFromInt(1)})
		}
		for i := 0; i < 8; i++ {
			req.TopCustomers = append(req.TopCustomers, domain.CustomerTotal{CustomerID: int64(i + 1)})
		}

		prompt := BuildPrompt(req)
		assert.Equal(t, revenueLines, strings.Count(prompt, "- 2024-03-"))
		assert.Equal(t, customerLines, strings.Count(prompt, "- Customer #"))
	})
}

func TestService_GenerateInsights(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*Service, *mocks.MockCompletionIntegrator) {
		ctrl := gomock.NewController(t)
		integrator := mocks.NewMockCompletionIntegrator(ctrl)
		return NewService(integrator), integrator
	}

	assertCode := func(t *testing.T, err error, code string) {
		t.Helper()
		var insightsErr *InsightsError
		require.ErrorAs(t, err, &insightsErr)
		assert.Equal(t, code, insightsErr.Code)
	}

	t.Run("sucesso", func(t *testing.T) {
		service, integrator := newService(t)

		integrator.EXPECT().Complete(ctx, systemPrompt, BuildPrompt(sampleRequest())).Return("Vendas estáveis.", nil)

		insights, err := service.GenerateInsights(ctx, sampleRequest())
		require.NoError(t, err)
		assert.Equal(t, &domain.Insights{Insights: "Vendas estáveis.", Success: true}, insights)
	})

	t.Run("chave não configurada", func(t *testing.T) {
		service, integrator := newService(t)

		integrator.EXPECT().Complete(ctx, gomock.Any(), gomock.Any()).Return("", completion.ErrNotConfigured)

		_, err := service.GenerateInsights(ctx, sampleRequest())
		assertCode(t, err, apiErrors.ErrAINotConfigured)
	})

	t.Run("cota excedida", func(t *testing.T) {
		service, integrator := newService(t)

		integrator.EXPECT().Complete(ctx, gomock.Any(), gomock.Any()).Return("", &completionclient.ProviderError{
			StatusCode: http.StatusTooManyRequests,
			Response:   completiondomain.ErrorResponse{Error: completiondomain.ErrorDetails{Message: "You exceeded your current quota"}},
		})

		_, err := service.GenerateInsights(ctx, sampleRequest())
		assertCode(t, err, apiErrors.ErrAIRejected)

		var insightsErr *InsightsError
		require.ErrorAs(t, err, &insightsErr)
		assert.Contains(t, insightsErr.Message, "quota exceeded")
	})

	t.Run("chave inválida", func(t *testing.T) {
		service, integrator := newService(t)

		integrator.EXPECT().Complete(ctx, gomock.Any(), gomock.Any()).Return("", &completionclient.ProviderError{
			StatusCode: http.StatusUnauthorized,
			Response:   completiondomain.ErrorResponse{Error: completiondomain.ErrorDetails{Message: "Incorrect API key provided"}},
		})

		_, err := service.GenerateInsights(ctx, sampleRequest())

		var insightsErr *InsightsError
		require.ErrorAs(t, err, &insightsErr)
		assert.Equal(t, apiErrors.ErrAIRejected, insightsErr.Code)
		assert.Contains(t, insightsErr.Message, "API key is invalid")
	})

	t.Run("falha genérica", func(t *testing.T) {
		service, integrator := newService(t)

		integrator.EXPECT().Complete(ctx, gomock.Any(), gomock.Any()).Return("", errors.New("connection reset"))

		_, err := service.GenerateInsights(ctx, sampleRequest())
		assertCode(t, err, apiErrors.ErrExternalService)
	})

	t.Run("período longo demais", func(t *testing.T) {
		service, _ := newService(t)

		req := sampleRequest()
		req.Period = strings.Repeat("x", 51)

		_, err := service.GenerateInsights(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}
