package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/campus-league/internal/domain/player"
	"github.com/riskibarqy/campus-league/internal/domain/team"
)

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

// List returns every player ordered by team name, then player name.
func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	return s.getPlayer(ctx, playerID)
}

func (s *PlayerService) Create(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	item.ID = 0
	if err := s.prepare(ctx, &item); err != nil {
		return player.Player{}, err
	}

	id, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, mapPlayerWriteError(err)
	}

	return s.getPlayer(ctx, id)
}

func (s *PlayerService) Update(ctx context.Context, playerID int64, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	item.ID = playerID
	if err := s.prepare(ctx, &item); err != nil {
		return player.Player{}, err
	}

	updated, err := s.playerRepo.Update(ctx, item)
	if err != nil {
		return player.Player{}, mapPlayerWriteError(err)
	}
	if !updated {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return s.getPlayer(ctx, playerID)
}

func (s *PlayerService) Delete(ctx context.Context, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if playerID <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	deleted, err := s.playerRepo.Delete(ctx, playerID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return nil
}

func (s *PlayerService) prepare(ctx context.Context, item *player.Player) error {
	item.Normalize()
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if item.TeamID == nil {
		return nil
	}

	_, exists, err := s.teamRepo.GetByID(ctx, *item.TeamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%d does not exist", ErrInvalidInput, *item.TeamID)
	}
	return nil
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return item, nil
}

func mapPlayerWriteError(err error) error {
	if errors.Is(err, player.ErrUnknownTeam) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("save player: %w", err)
}
