package http

import (
	"net/http"

	"github.com/checkout170/darts-api/internal/config"
	"github.com/checkout170/darts-api/internal/metrics"
	"github.com/checkout170/darts-api/internal/players"
	"github.com/checkout170/darts-api/internal/query"
)

type Server struct {
	Store          players.PlayerStore
	Queries        *query.Service
	Metrics        metrics.Metrics
	MetricsStore   metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux

	// registered routes, served by the introspection endpoint at /
	routeList []Route
}

// Route describes a registered endpoint for the listing endpoint.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}
