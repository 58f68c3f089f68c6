package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/campus-league/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]team.Team, 0, len(s.teams))
	for _, id := range sortedIDs(s.teams) {
		out = append(out, s.teamWithCountLocked(id))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.teams[teamID]; !ok {
		return team.Team{}, false, nil
	}
	return s.teamWithCountLocked(teamID), true, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.teamNameTakenLocked(item.Name, 0) {
		return 0, fmt.Errorf("insert team: %w", team.ErrDuplicateName)
	}

	s.lastTeamID++
	item.ID = s.lastTeamID
	item.PlayerCount = 0
	s.teams[item.ID] = item
	return item.ID, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[item.ID]; !ok {
		return false, nil
	}
	if s.teamNameTakenLocked(item.Name, item.ID) {
		return false, fmt.Errorf("update team: %w", team.ErrDuplicateName)
	}

	item.PlayerCount = 0
	s.teams[item.ID] = item
	return true, nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return false, nil
	}
	for _, p := range s.players {
		if p.TeamID != nil && *p.TeamID == teamID {
			return false, fmt.Errorf("delete team=%d: %w", teamID, team.ErrInUse)
		}
	}
	for _, f := range s.fixtures {
		if f.Involves(teamID) {
			return false, fmt.Errorf("delete team=%d: %w", teamID, team.ErrInUse)
		}
	}

	delete(s.teams, teamID)
	return true, nil
}

func (s *Store) teamWithCountLocked(teamID int64) team.Team {
	item := s.teams[teamID]
	item.PlayerCount = 0
	for _, p := range s.players {
		if p.TeamID != nil && *p.TeamID == teamID {
			item.PlayerCount++
		}
	}
	return item
}

func (s *Store) teamNameTakenLocked(name string, exceptID int64) bool {
	for id, existing := range s.teams {
		if id != exceptID && strings.EqualFold(existing.Name, name) {
			return true
		}
	}
	return false
}
