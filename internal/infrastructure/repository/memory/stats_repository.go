package memory

import (
	"context"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
)

type StatsRepository struct {
	store *Store
}

func NewStatsRepository(store *Store) *StatsRepository {
	return &StatsRepository{store: store}
}

func (r *StatsRepository) CountTeams(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.teams), nil
}

func (r *StatsRepository) CountPlayers(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.players), nil
}

func (r *StatsRepository) CountFixtures(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.fixtures), nil
}

func (r *StatsRepository) CountFixturesByStatus(_ context.Context, status string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	total := 0
	for _, item := range r.store.fixtures {
		if fixture.NormalizeStatus(item.Status) == status {
			total++
		}
	}
	return total, nil
}
