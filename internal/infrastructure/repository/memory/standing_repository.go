package memory

import (
	"context"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/team"
)

type StandingRepository struct {
	store *Store
}

func NewStandingRepository(store *Store) *StandingRepository {
	return &StandingRepository{store: store}
}

// LoadRecords snapshots teams (ascending id) and fixtures under one read lock.
func (r *StandingRepository) LoadRecords(_ context.Context) ([]team.Team, []fixture.Fixture, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]team.Team, 0, len(s.teams))
	for _, id := range sortedIDs(s.teams) {
		teams = append(teams, s.teams[id])
	}
	return teams, s.fixturesLocked(), nil
}
