package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	aggregatingmocks "github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating/mocks"
	detectingmocks "github.com/vfg2006/business-dashboard-api/internal/usecases/detecting/mocks"
	forecastingmocks "github.com/vfg2006/business-dashboard-api/internal/usecases/forecasting/mocks"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	decodeBody(t, rec, &apiErr)
	return apiErr
}

func TestGetRevenue(t *testing.T) {
	t.Run("usa 30 dias por padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		aggregator := aggregatingmocks.NewMockAggregator(ctrl)

		aggregator.EXPECT().DailyRevenue(gomock.Any(), 30).Return([]domain.DailyRevenuePoint{
			{Date: domain.NewDate(2024, time.January, 1), Revenue: decimal.RequireFromString("10.50")},
		}, nil)

		rec := httptest.NewRecorder()
		GetRevenue(aggregator).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/revenue", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[{"date":"2024-01-01","revenue":10.5}],"range_days":30}`, rec.Body.String())
	})

	t.Run("intervalo fora dos limites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		aggregator := aggregatingmocks.NewMockAggregator(ctrl)

		for _, target := range []string{"/stats/revenue?range_days=0", "/stats/revenue?range_days=366", "/stats/revenue?range_days=abc"} {
			rec := httptest.NewRecorder()
			GetRevenue(aggregator).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
			assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
		}
	})

	t.Run("erro de banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		aggregator := aggregatingmocks.NewMockAggregator(ctrl)

		aggregator.EXPECT().DailyRevenue(gomock.Any(), 7).Return(nil, domain.ErrStorage)

		rec := httptest.NewRecorder()
		GetRevenue(aggregator).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/revenue?range_days=7", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)
	})
}

func TestGetSalesByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	aggregator := aggregatingmocks.NewMockAggregator(ctrl)

	aggregator.EXPECT().ByCategory(gomock.Any()).Return(&domain.CategoryStats{
		Categories: []domain.CategoryShare{
			{Category: "A", Total: decimal.NewFromInt(60), Percentage: 60},
			{Category: "B", Total: decimal.NewFromInt(40), Percentage: 40},
		},
		TotalRevenue: decimal.NewFromInt(100),
	}, nil)

	rec := httptest.NewRecorder()
	GetSalesByCategory(aggregator).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/by-category", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"categories":[
			{"category":"A","total":60,"percentage":60},
			{"category":"B","total":40,"percentage":40}
		],
		"total_revenue":100
	}`, rec.Body.String())
}

func TestGetCustomerStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	aggregator := aggregatingmocks.NewMockAggregator(ctrl)

	aggregator.EXPECT().CustomerStats(gomock.Any()).Return(&domain.CustomerStats{
		TotalCustomers:      1,
		TotalRevenue:        decimal.NewFromInt(20),
		AvgSpentPerCustomer: 20,
		TopCustomers: []domain.CustomerTotal{
			{CustomerID: 7, TotalSpent: decimal.NewFromInt(20), TransactionCount: 2},
		},
	}, nil)

	rec := httptest.NewRecorder()
	GetCustomerStats(aggregator).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/customers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_customers":1,
		"total_revenue":20,
		"avg_spent_per_customer":20,
		"top_customers":[{"customerID":7,"total_spent":20,"transaction_count":2}]
	}`, rec.Body.String())
}

func TestGetForecast(t *testing.T) {
	t.Run("período padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := forecastingmocks.NewMockForecaster(ctrl)

		forecaster.EXPECT().Forecast(gomock.Any(), 30).Return(&domain.ForecastResult{
			Dates:     []domain.Date{domain.NewDate(2024, time.January, 11)},
			Predicted: []float64{110},
			Lower:     []float64{100},
			Upper:     []float64{120},
		}, nil)

		rec := httptest.NewRecorder()
		GetForecast(forecaster).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/forecast", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"dates":["2024-01-11"],"predicted":[110],"lower":[100],"upper":[120]}`, rec.Body.String())
	})

	t.Run("período fora dos limites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := forecastingmocks.NewMockForecaster(ctrl)

		for _, target := range []string{"/stats/forecast?period=6", "/stats/forecast?period=91"} {
			rec := httptest.NewRecorder()
			GetForecast(forecaster).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
	})

	t.Run("dados insuficientes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := forecastingmocks.NewMockForecaster(ctrl)

		forecaster.EXPECT().Forecast(gomock.Any(), 7).
			Return(nil, domain.NewAnalyticsError(domain.ErrInsufficientData, apiErrors.ErrInsufficientData, "need at least 7 days"))

		rec := httptest.NewRecorder()
		GetForecast(forecaster).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/forecast?period=7", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientData, decodeError(t, rec).Code)
	})

	t.Run("falha do modelo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := forecastingmocks.NewMockForecaster(ctrl)

		forecaster.EXPECT().Forecast(gomock.Any(), 30).
			Return(nil, domain.NewAnalyticsError(domain.ErrModelFit, apiErrors.ErrModelFit, ""))

		rec := httptest.NewRecorder()
		GetForecast(forecaster).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/forecast", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrModelFit, decodeError(t, rec).Code)
	})
}

func TestGetAnomalies(t *testing.T) {
	t.Run("relatório com anomalias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		detector := detectingmocks.NewMockDetector(ctrl)

		day := domain.NewDate(2024, time.January, 5)
		detector.EXPECT().Detect(gomock.Any(), 90).Return(&domain.AnomalyReport{
			Dates:     []domain.Date{day},
			Revenue:   []decimal.Decimal{decimal.NewFromInt(900)},
			Anomalies: []domain.Anomaly{{Date: day, Value: decimal.NewFromInt(900), Score: -0.7}},
		}, nil)

		rec := httptest.NewRecorder()
		GetAnomalies(detector).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/anomalies", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"dates":["2024-01-05"],
			"revenue":[900],
			"anomalies":[{"date":"2024-01-05","value":900,"score":-0.7}]
		}`, rec.Body.String())
	})

	t.Run("intervalo abaixo do mínimo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		detector := detectingmocks.NewMockDetector(ctrl)

		rec := httptest.NewRecorder()
		GetAnomalies(detector).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/anomalies?range_days=6", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("contexto propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		detector := detectingmocks.NewMockDetector(ctrl)

		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "req")
		detector.EXPECT().
			Detect(gomock.Any(), 30).
			DoAndReturn(func(got context.Context, _ int) (*domain.AnomalyReport, error) {
				assert.Equal(t, "req", got.Value(key{}))
				return &domain.AnomalyReport{}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/stats/anomalies?range_days=30", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		GetAnomalies(detector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
