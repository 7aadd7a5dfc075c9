package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/checkout170/darts-api/internal/players"
	"github.com/checkout170/darts-api/internal/query"
	"github.com/checkout170/darts-api/internal/seed"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.FromContext(r.Context()).Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListRoutesHandler serves the registered routes at the root path.
func (s *Server) ListRoutesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, s.routeList)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "list_players"
		defer s.observe(op, time.Now())

		result, err := s.Queries.ListPlayers(maxRankingParam(r))
		if err != nil {
			s.writeQueryError(w, op, err)
			return
		}
		s.Metrics.IncQuery(op)
		s.MetricsStore.Increment(op)
		s.writeJSON(w, result)
	}
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "get_player"
		defer s.observe(op, time.Now())

		player, err := s.Queries.GetPlayer(r.PathValue("id"))
		if err != nil {
			s.writeQueryError(w, op, err)
			return
		}
		s.Metrics.IncQuery(op)
		s.MetricsStore.Increment(op)
		s.writeJSON(w, player)
	}
}

func (s *Server) ListCountriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "list_countries"
		defer s.observe(op, time.Now())

		countries, err := s.Queries.ListCountries()
		if err != nil {
			s.writeQueryError(w, op, err)
			return
		}
		s.Metrics.IncQuery(op)
		s.MetricsStore.Increment(op)
		s.writeJSON(w, countries)
	}
}

func (s *Server) SearchCountryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "search_country"
		defer s.observe(op, time.Now())

		result, err := s.Queries.SearchCountry(r.PathValue("country"), maxRankingParam(r))
		if err != nil {
			s.writeQueryError(w, op, err)
			return
		}
		s.Metrics.IncQuery(op)
		s.MetricsStore.Increment(op)
		s.writeJSON(w, result)
	}
}

func (s *Server) ListNicknamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "list_nicknames"
		defer s.observe(op, time.Now())

		nicknames, err := s.Queries.ListNicknames()
		if err != nil {
			s.writeQueryError(w, op, err)
			return
		}
		s.Metrics.IncQuery(op)
		s.MetricsStore.Increment(op)
		s.writeJSON(w, nicknames)
	}
}

func (s *Server) SearchNicknameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "search_nickname"
		defer s.observe(op, time.Now())

		result, err := s.Queries.SearchNickname(r.PathValue("nickname"))
		if err != nil {
			s.writeQueryError(w, op, err)
			return
		}
		s.Metrics.IncQuery(op)
		s.MetricsStore.Increment(op)
		// Gate-passed empty nickname searches are a success, so the
		// response may be an empty array.
		s.writeJSON(w, result)
	}
}

// StatsHandler serves the persisted lifetime counters.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.MetricsStore.GetAll()
		if err != nil {
			log.Error("Failed to read persisted metrics", "error", err)
			http.Error(w, "Failed to read stats", http.StatusInternalServerError)
			return
		}
		s.writeJSON(w, stats)
	}
}

// ReseedHandler clears the store and reloads the seed dataset.
func (s *Server) ReseedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to reseed the player store")
		if err := s.Store.Clear(); err != nil {
			http.Error(w, "Failed to clear store", http.StatusInternalServerError)
			return
		}
		if err := seed.EnsureSeeded(s.Store, s.Cfg.SeedFile); err != nil {
			log.Error("Failed to reseed store", "error", err)
			http.Error(w, "Failed to reseed store", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store reseeded!")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// writeQueryError maps the query error taxonomy onto HTTP statuses. Every
// kind gets a distinct message; raw store errors stay in the logs.
func (s *Server) writeQueryError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, players.ErrInvalidID):
		s.Metrics.IncQueryFailure(op, "invalid_id")
		http.Error(w, "Invalid player id", http.StatusBadRequest)
	case errors.Is(err, players.ErrNotFound):
		s.Metrics.IncQueryFailure(op, "not_found")
		http.Error(w, "Player not found", http.StatusNotFound)
	case errors.Is(err, query.ErrFieldNotFound):
		s.Metrics.IncQueryFailure(op, "field_not_found")
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, query.ErrNoMatchInRankingBound):
		s.Metrics.IncQueryFailure(op, "no_match_in_bound")
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		s.Metrics.IncQueryFailure(op, "query_failure")
		log.Error("Query failed", "operation", op, "error", err)
		http.Error(w, "Query failed", http.StatusInternalServerError)
	}
}

func (s *Server) observe(op string, start time.Time) {
	s.Metrics.ObserveQueryDuration(op, time.Since(start).Seconds())
}

// maxRankingParam parses the optional maxRanking query parameter. Zero
// means unset; the query service applies the default bound.
func maxRankingParam(r *http.Request) int {
	raw := r.URL.Query().Get("maxRanking")
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		log.Warn("Invalid 'maxRanking' parameter provided. Using default bound.", "maxRanking_param", raw)
		return 0
	}
	return parsed
}
