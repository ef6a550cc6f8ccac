package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/channel-insights/internal/api/handler/router"
	"github.com/vfg2006/channel-insights/internal/usecases/analyzing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Insights(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeMetrics(service),
		},
	}
}
