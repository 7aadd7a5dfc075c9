package query

import (
	"errors"
	"fmt"

	"github.com/checkout170/darts-api/internal/players"
)

// DefaultMaxRanking is the inclusive ranking bound applied when a caller
// does not supply one.
const DefaultMaxRanking = 200

// Service composes the substring gate and the dedup-filter-sort pipeline
// over an injected player store. It is stateless; every call is a pure
// function of the current store contents and its parameters, so concurrent
// use needs no coordination here.
type Service struct {
	store players.PlayerStore
}

// New creates a new query service.
func New(store players.PlayerStore) *Service {
	return &Service{store: store}
}

// ListPlayers returns the deduplicated players with ranking at or below
// maxRanking, ascending by ranking. A maxRanking of zero or less means the
// default bound. An empty result is not an error.
func (s *Service) ListPlayers(maxRanking int) ([]players.Player, error) {
	bound := effectiveBound(maxRanking)

	records, err := s.store.GetAllPlayers()
	if err != nil {
		return nil, queryFailure("list players", err)
	}

	return runPipeline(records, pipelineOptions{
		maxRanking: &bound,
		sorted:     true,
	}), nil
}

// GetPlayer looks up a single player by id. The store's ErrInvalidID and
// ErrNotFound pass through for the caller to classify; anything else is a
// query failure like on every other path.
func (s *Service) GetPlayer(id string) (*players.Player, error) {
	player, err := s.store.GetPlayerByID(id)
	if err != nil {
		if errors.Is(err, players.ErrInvalidID) || errors.Is(err, players.ErrNotFound) {
			return nil, err
		}
		return nil, queryFailure("get player", err)
	}
	return player, nil
}

// ListCountries returns the distinct countries in first-occurrence order.
func (s *Service) ListCountries() ([]string, error) {
	values, err := s.store.DistinctValues(players.FieldCountry)
	if err != nil {
		return nil, queryFailure("list countries", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// ListNicknames returns the distinct nicknames in first-occurrence order.
func (s *Service) ListNicknames() ([]string, error) {
	values, err := s.store.DistinctValues(players.FieldNickname)
	if err != nil {
		return nil, queryFailure("list nicknames", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// SearchCountry returns the deduplicated players whose country contains the
// term, within the ranking bound, ascending by ranking. ErrFieldNotFound
// when the term matches no stored country at all; ErrNoMatchInRankingBound
// when the country is recognized but nobody passes the ranking filter.
func (s *Service) SearchCountry(term string, maxRanking int) ([]players.Player, error) {
	countries, err := s.store.DistinctValues(players.FieldCountry)
	if err != nil {
		return nil, queryFailure("search country", err)
	}
	if !matchesAny(term, countries) {
		return nil, fmt.Errorf("%w: country %q", ErrFieldNotFound, term)
	}

	records, err := s.store.GetAllPlayers()
	if err != nil {
		return nil, queryFailure("search country", err)
	}

	bound := effectiveBound(maxRanking)
	result := runPipeline(records, pipelineOptions{
		maxRanking: &bound,
		match:      &fieldMatch{field: players.FieldCountry, term: term},
		sorted:     true,
	})
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: country %q, bound %d", ErrNoMatchInRankingBound, term, bound)
	}
	return result, nil
}

// SearchNickname returns the deduplicated players whose nickname contains
// the term. Unlike SearchCountry this path applies no ranking bound, does
// not sort, and treats a gate-passed empty result as success. The asymmetry
// mirrors the original query paths and is kept deliberately.
func (s *Service) SearchNickname(term string) ([]players.Player, error) {
	nicknames, err := s.store.DistinctValues(players.FieldNickname)
	if err != nil {
		return nil, queryFailure("search nickname", err)
	}
	if !matchesAny(term, nicknames) {
		return nil, fmt.Errorf("%w: nickname %q", ErrFieldNotFound, term)
	}

	records, err := s.store.GetAllPlayers()
	if err != nil {
		return nil, queryFailure("search nickname", err)
	}

	return runPipeline(records, pipelineOptions{
		match: &fieldMatch{field: players.FieldNickname, term: term},
	}), nil
}

func effectiveBound(maxRanking int) int {
	if maxRanking <= 0 {
		return DefaultMaxRanking
	}
	return maxRanking
}
