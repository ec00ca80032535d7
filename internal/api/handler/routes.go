package handler

import (
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/detecting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/searching"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/summarizing"
	"github.com/vfg2006/business-dashboard-api/pkg/middleware"
)

var authenticated = []func(http.Handler) http.Handler{middleware.RequireAuth()}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/auth/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: authenticated,
		},
	}
}

func Upload(service ingesting.Uploader, maxBytes int64) []router.Route {
	return []router.Route{
		{
			Path:        "/upload/csv",
			Method:      http.MethodPost,
			Handler:     UploadCSV(service, maxBytes),
			Middlewares: authenticated,
		},
	}
}

func Stats(aggregator aggregating.Aggregator, forecaster forecasting.Forecaster, detector detecting.Detector) []router.Route {
	return []router.Route{
		{
			Path:        "/stats/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenue(aggregator),
			Middlewares: authenticated,
		},
		{
			Path:        "/stats/by-category",
			Method:      http.MethodGet,
			Handler:     GetSalesByCategory(aggregator),
			Middlewares: authenticated,
		},
		{
			Path:        "/stats/customers",
			Method:      http.MethodGet,
			Handler:     GetCustomerStats(aggregator),
			Middlewares: authenticated,
		},
		{
			Path:        "/stats/forecast",
			Method:      http.MethodGet,
			Handler:     GetForecast(forecaster),
			Middlewares: authenticated,
		},
		{
			Path:        "/stats/anomalies",
			Method:      http.MethodGet,
			Handler:     GetAnomalies(detector),
			Middlewares: authenticated,
		},
	}
}

func Sales(service searching.Searcher) []router.Route {
	return []router.Route{
		{
			Path:        "/sales/search",
			Method:      http.MethodGet,
			Handler:     SearchSales(service),
			Middlewares: authenticated,
		},
		{
			Path:    "/sales/export",
			Method:  http.MethodGet,
			Handler: ExportSales(service),
		},
	}
}

func Insights(service summarizing.Summarizer) []router.Route {
	return []router.Route{
		{
			Path:        "/ai/insights",
			Method:      http.MethodPost,
			Handler:     GenerateInsights(service),
			Middlewares: authenticated,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: authenticated,
		},
		{
			Path:        "/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: authenticated,
		},
	}
}
