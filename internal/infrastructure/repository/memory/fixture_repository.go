package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
)

type FixtureRepository struct {
	store *Store
}

func NewFixtureRepository(store *Store) *FixtureRepository {
	return &FixtureRepository{store: store}
}

func (r *FixtureRepository) List(_ context.Context) ([]fixture.Fixture, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.fixturesLocked()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time > out[j].Time
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.fixtures[fixtureID]; !ok {
		return fixture.Fixture{}, false, nil
	}
	return s.fixtureLocked(fixtureID), true, nil
}

func (r *FixtureRepository) Create(_ context.Context, item fixture.Fixture) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, homeOK := s.teams[item.HomeTeamID]
	_, awayOK := s.teams[item.AwayTeamID]
	if !homeOK || !awayOK {
		return 0, fmt.Errorf("insert fixture: %w", fixture.ErrUnknownTeam)
	}

	s.lastFixtureID++
	item.ID = s.lastFixtureID
	s.fixtures[item.ID] = cloneFixture(item)
	return item.ID, nil
}

func (r *FixtureRepository) Update(_ context.Context, item fixture.Fixture) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.fixtures[item.ID]
	if !ok {
		return false, nil
	}

	current.Date = item.Date
	current.Time = item.Time
	current.Venue = item.Venue
	current.Status = item.Status
	current.HomeScore = cloneInt(item.HomeScore)
	current.AwayScore = cloneInt(item.AwayScore)
	s.fixtures[item.ID] = current
	return true, nil
}

func (r *FixtureRepository) RecordResult(_ context.Context, fixtureID int64, homeScore, awayScore int) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.fixtures[fixtureID]
	if !ok {
		return false, nil
	}

	current.HomeScore = &homeScore
	current.AwayScore = &awayScore
	current.Status = fixture.StatusCompleted
	s.fixtures[fixtureID] = current
	return true, nil
}

func (r *FixtureRepository) Delete(_ context.Context, fixtureID int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.fixtures[fixtureID]; !ok {
		return false, nil
	}
	delete(s.fixtures, fixtureID)
	return true, nil
}

// fixturesLocked returns every fixture in ascending id order.
func (s *Store) fixturesLocked() []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(s.fixtures))
	for _, id := range sortedIDs(s.fixtures) {
		out = append(out, s.fixtureLocked(id))
	}
	return out
}

func (s *Store) fixtureLocked(fixtureID int64) fixture.Fixture {
	item := cloneFixture(s.fixtures[fixtureID])
	item.HomeTeam = s.teams[item.HomeTeamID].Name
	item.AwayTeam = s.teams[item.AwayTeamID].Name
	return item
}

func cloneFixture(item fixture.Fixture) fixture.Fixture {
	item.HomeScore = cloneInt(item.HomeScore)
	item.AwayScore = cloneInt(item.AwayScore)
	return item
}
