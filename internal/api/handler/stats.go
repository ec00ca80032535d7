package handler

import (
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/detecting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/forecasting"
)

const (
	defaultRevenueRangeDays = 30
	defaultForecastPeriod   = 30
	defaultAnomalyRangeDays = 90
)

func GetRevenue(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rangeDays, err := queryInt(r, "range_days", defaultRevenueRangeDays, aggregating.MinRangeDays, aggregating.MaxRangeDays)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		points, err := service.DailyRevenue(r.Context(), rangeDays)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.RevenueStats{
			Data:      points,
			RangeDays: rangeDays,
		})
	}
}

func GetSalesByCategory(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.ByCategory(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}

func GetCustomerStats(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.CustomerStats(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}

func GetForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := queryInt(r, "period", defaultForecastPeriod, forecasting.MinPeriodDays, forecasting.MaxPeriodDays)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		result, err := service.Forecast(r.Context(), period)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func GetAnomalies(service detecting.Detector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rangeDays, err := queryInt(r, "range_days", defaultAnomalyRangeDays, detecting.MinRangeDays, detecting.MaxRangeDays)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		report, err := service.Detect(r.Context(), rangeDays)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}
