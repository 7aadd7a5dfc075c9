package http

import (
	"net/http"

	"github.com/checkout170/darts-api/internal/config"
	"github.com/checkout170/darts-api/internal/metrics"
	"github.com/checkout170/darts-api/internal/players"
	"github.com/checkout170/darts-api/internal/query"
)

func NewServer(store players.PlayerStore, queries *query.Service, metricsSvc metrics.Metrics, metricsStore metrics.MetricsStore, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Queries:        queries,
		Metrics:        metricsSvc,
		MetricsStore:   metricsStore,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.handle("GET", "/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.handle("GET", "/metrics", s.MetricsHandler)
	s.handle("GET", "/stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.handle("GET", "/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.handle("GET", "/players/{id}", Chain(s.GetPlayerHandler(), paramsMiddleware))
	s.handle("GET", "/countries", Chain(s.ListCountriesHandler(), paramsMiddleware))
	s.handle("GET", "/countries/{country}/players", Chain(s.SearchCountryHandler(), paramsMiddleware))
	s.handle("GET", "/nicknames", Chain(s.ListNicknamesHandler(), paramsMiddleware))
	s.handle("GET", "/nicknames/{nickname}/players", Chain(s.SearchNicknameHandler(), paramsMiddleware))
	s.handle("POST", "/reseed", Chain(s.ReseedHandler(), paramsMiddleware))

	// The route listing is registered last so it reports everything above.
	s.Router.Handle("GET /{$}", Chain(s.ListRoutesHandler(), paramsMiddleware))
}

// handle registers a route on the mux and records it for the listing endpoint.
func (s *Server) handle(method, path string, h http.Handler) {
	s.Router.Handle(method+" "+path, h)
	s.routeList = append(s.routeList, Route{Method: method, Path: path})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
