package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/checkout170/darts-api/internal/players"
)

func intPtr(v int) *int { return &v }

func player(name, country, nickname string, ranking *int) players.Player {
	return players.Player{Name: name, Country: country, Nickname: nickname, Ranking: ranking}
}

func names(result []players.Player) []string {
	out := make([]string, len(result))
	for i, p := range result {
		out[i] = p.Name
	}
	return out
}

func TestRunPipeline_RankingBound(t *testing.T) {
	records := []players.Player{
		player("A", "England", "", intPtr(150)),
		player("B", "England", "", intPtr(201)),
		player("C", "England", "", nil), // absent ranking fails any bounded test
		player("D", "England", "", intPtr(200)),
	}

	bound := 200
	result := runPipeline(records, pipelineOptions{maxRanking: &bound})
	assert.Equal(t, []string{"A", "D"}, names(result))
}

func TestRunPipeline_NoBoundKeepsUnrankedRecords(t *testing.T) {
	records := []players.Player{
		player("A", "England", "", intPtr(500)),
		player("B", "England", "", nil),
	}

	result := runPipeline(records, pipelineOptions{})
	assert.Equal(t, []string{"A", "B"}, names(result))
}

func TestRunPipeline_SubstringPredicateIsCaseInsensitive(t *testing.T) {
	records := []players.Player{
		player("A", "Germany", "", intPtr(1)),
		player("B", "Netherlands", "", intPtr(2)),
		player("C", "germany", "", intPtr(3)),
	}

	result := runPipeline(records, pipelineOptions{
		match: &fieldMatch{field: players.FieldCountry, term: "GER"},
	})
	assert.Equal(t, []string{"A", "C"}, names(result))
}

func TestRunPipeline_FirstWinsDedup(t *testing.T) {
	records := []players.Player{
		player("Phil Taylor", "England", "The Power", intPtr(10)),
		player("Rob Cross", "England", "Voltage", intPtr(8)),
		player("Phil Taylor", "England", "The Power", intPtr(99)),
	}

	result := runPipeline(records, pipelineOptions{})
	assert.Equal(t, []string{"Phil Taylor", "Rob Cross"}, names(result))
	// The first record in store order is the one that survives.
	assert.Equal(t, 10, *result[0].Ranking)
}

func TestRunPipeline_SortIsStableAndOptIn(t *testing.T) {
	records := []players.Player{
		player("A", "", "", intPtr(30)),
		player("B", "", "", intPtr(10)),
		player("C", "", "", intPtr(30)),
		player("D", "", "", intPtr(20)),
	}

	t.Run("unsorted keeps store order", func(t *testing.T) {
		result := runPipeline(records, pipelineOptions{})
		assert.Equal(t, []string{"A", "B", "C", "D"}, names(result))
	})

	t.Run("sorted ascending, ties keep arrival order", func(t *testing.T) {
		result := runPipeline(records, pipelineOptions{sorted: true})
		assert.Equal(t, []string{"B", "D", "A", "C"}, names(result))
	})
}

func TestMatchesAny(t *testing.T) {
	values := []string{"Netherlands", "England", "Wales"}

	assert.True(t, matchesAny("netherlands", values))
	assert.True(t, matchesAny("GLA", values), "substring match, not exact")
	assert.False(t, matchesAny("Germany", values))
	assert.False(t, matchesAny("anything", nil), "empty set never matches")
}
