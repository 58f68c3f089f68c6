package memory

import (
	"sort"
	"sync"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/news"
	"github.com/riskibarqy/campus-league/internal/domain/player"
	"github.com/riskibarqy/campus-league/internal/domain/team"
)

// Store is the shared in-process backing of every memory repository.
// Repositories built on the same Store see each other's writes.
type Store struct {
	mu       sync.RWMutex
	teams    map[int64]team.Team
	players  map[int64]player.Player
	fixtures map[int64]fixture.Fixture
	news     map[int64]news.Article

	lastTeamID    int64
	lastPlayerID  int64
	lastFixtureID int64
	lastNewsID    int64
}

func NewStore() *Store {
	return &Store{
		teams:    make(map[int64]team.Team),
		players:  make(map[int64]player.Player),
		fixtures: make(map[int64]fixture.Fixture),
		news:     make(map[int64]news.Article),
	}
}

func sortedIDs[V any](items map[int64]V) []int64 {
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneFloat64(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
