package query

import (
	"sort"
	"strings"

	"github.com/checkout170/darts-api/internal/players"
)

// fieldMatch is a case-insensitive substring predicate over one field.
type fieldMatch struct {
	field players.Field
	term  string
}

// pipelineOptions configures one pass of the dedup-filter-sort pipeline.
// A nil maxRanking disables the ranking test entirely; records without a
// ranking are then kept. Sorting is opt-in per call site: the nickname
// search path intentionally returns results in store order.
type pipelineOptions struct {
	maxRanking *int
	match      *fieldMatch
	sorted     bool
}

// runPipeline filters the records, collapses duplicate names keeping the
// first record in store order, and optionally sorts ascending by ranking.
// The input order is assumed to be the store's deterministic insertion
// order; the first-wins rule depends on it.
func runPipeline(records []players.Player, opts pipelineOptions) []players.Player {
	result := make([]players.Player, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, p := range records {
		if opts.maxRanking != nil {
			// An absent ranking always fails a bounded test.
			if p.Ranking == nil || *p.Ranking > *opts.maxRanking {
				continue
			}
		}
		if opts.match != nil && !containsFold(fieldValue(p, opts.match.field), opts.match.term) {
			continue
		}
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		result = append(result, p)
	}

	if opts.sorted {
		sort.SliceStable(result, func(i, j int) bool {
			return rankOf(result[i]) < rankOf(result[j])
		})
	}
	return result
}

func fieldValue(p players.Player, field players.Field) string {
	switch field {
	case players.FieldCountry:
		return p.Country
	case players.FieldNickname:
		return p.Nickname
	}
	return ""
}

func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// rankOf orders records without a ranking after everything else. Sorted
// call sites always apply a bound first, so this only matters for safety.
func rankOf(p players.Player) int {
	if p.Ranking == nil {
		return int(^uint(0) >> 1)
	}
	return *p.Ranking
}
