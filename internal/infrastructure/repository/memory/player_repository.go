package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/campus-league/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]player.Player, 0, len(s.players))
	for _, id := range sortedIDs(s.players) {
		out = append(out, s.playerLocked(id))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TeamName != out[j].TeamName {
			return out[i].TeamName < out[j].TeamName
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, id := range sortedIDs(s.players) {
		item := s.players[id]
		if item.TeamID == nil || *item.TeamID != teamID {
			continue
		}
		out = append(out, s.playerLocked(id))
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].JerseyNumber, out[j].JerseyNumber
		switch {
		case a != nil && b != nil && *a != *b:
			return *a < *b
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.players[playerID]; !ok {
		return player.Player{}, false, nil
	}
	return s.playerLocked(playerID), true, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.teamExistsLocked(item.TeamID) {
		return 0, fmt.Errorf("insert player: %w", player.ErrUnknownTeam)
	}

	s.lastPlayerID++
	item.ID = s.lastPlayerID
	s.players[item.ID] = clonePlayer(item)
	return item.ID, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[item.ID]; !ok {
		return false, nil
	}
	if !s.teamExistsLocked(item.TeamID) {
		return false, fmt.Errorf("update player: %w", player.ErrUnknownTeam)
	}

	s.players[item.ID] = clonePlayer(item)
	return true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[playerID]; !ok {
		return false, nil
	}
	delete(s.players, playerID)
	return true, nil
}

func (s *Store) playerLocked(playerID int64) player.Player {
	item := clonePlayer(s.players[playerID])
	item.TeamName = ""
	if item.TeamID != nil {
		item.TeamName = s.teams[*item.TeamID].Name
	}
	return item
}

func (s *Store) teamExistsLocked(teamID *int64) bool {
	if teamID == nil {
		return true
	}
	_, ok := s.teams[*teamID]
	return ok
}

func clonePlayer(item player.Player) player.Player {
	item.TeamID = cloneInt64(item.TeamID)
	item.JerseyNumber = cloneInt(item.JerseyNumber)
	item.Age = cloneInt(item.Age)
	item.Height = cloneFloat64(item.Height)
	item.Weight = cloneFloat64(item.Weight)
	return item
}
