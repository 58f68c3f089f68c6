package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/team"
)

// FixtureChanges holds the editable schedule attributes of a fixture.
// Teams and scores are fixed after creation; scores go through RecordResult.
type FixtureChanges struct {
	Date   string
	Time   string
	Venue  string
	Status string
}

type FixtureService struct {
	fixtureRepo fixture.Repository
	teamRepo    team.Repository
}

func NewFixtureService(fixtureRepo fixture.Repository, teamRepo team.Repository) *FixtureService {
	return &FixtureService{
		fixtureRepo: fixtureRepo,
		teamRepo:    teamRepo,
	}
}

// List returns fixtures newest first with team names resolved.
func (s *FixtureService) List(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.List")
	defer span.End()

	items, err := s.fixtureRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	return items, nil
}

func (s *FixtureService) Get(ctx context.Context, fixtureID int64) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Get")
	defer span.End()

	return s.getFixture(ctx, fixtureID)
}

func (s *FixtureService) Create(ctx context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Create")
	defer span.End()

	item.ID = 0
	item.ApplyDefaults()
	if err := item.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, teamID := range []int64{item.HomeTeamID, item.AwayTeamID} {
		if err := s.ensureTeam(ctx, teamID); err != nil {
			return fixture.Fixture{}, err
		}
	}

	id, err := s.fixtureRepo.Create(ctx, item)
	if err != nil {
		return fixture.Fixture{}, mapFixtureWriteError(err)
	}

	return s.getFixture(ctx, id)
}

// Update edits schedule attributes. Moving back to scheduled clears the
// score; moving to completed is only allowed once a result exists.
func (s *FixtureService) Update(ctx context.Context, fixtureID int64, changes FixtureChanges) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Update")
	defer span.End()

	current, err := s.getFixture(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}

	next := current
	next.Date = changes.Date
	next.Time = changes.Time
	next.Venue = changes.Venue
	next.Status = fixture.NormalizeStatus(changes.Status)
	if next.Status == fixture.StatusCompleted && (current.HomeScore == nil || current.AwayScore == nil) {
		return fixture.Fixture{}, fmt.Errorf("%w: record the result before marking fixture=%d completed", ErrInvalidInput, fixtureID)
	}
	next.ApplyDefaults()
	if err := next.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.fixtureRepo.Update(ctx, next)
	if err != nil {
		return fixture.Fixture{}, mapFixtureWriteError(err)
	}
	if !updated {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, fixtureID)
	}

	return s.getFixture(ctx, fixtureID)
}

// RecordResult stores the final score and marks the fixture completed.
func (s *FixtureService) RecordResult(ctx context.Context, fixtureID int64, homeScore, awayScore int) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.RecordResult")
	defer span.End()

	if fixtureID <= 0 {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	if homeScore < 0 || awayScore < 0 {
		return fixture.Fixture{}, fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
	}

	updated, err := s.fixtureRepo.RecordResult(ctx, fixtureID, homeScore, awayScore)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("record fixture result: %w", err)
	}
	if !updated {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, fixtureID)
	}

	return s.getFixture(ctx, fixtureID)
}

func (s *FixtureService) Delete(ctx context.Context, fixtureID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Delete")
	defer span.End()

	if fixtureID <= 0 {
		return fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	deleted, err := s.fixtureRepo.Delete(ctx, fixtureID)
	if err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: fixture=%d", ErrNotFound, fixtureID)
	}
	return nil
}

func (s *FixtureService) ensureTeam(ctx context.Context, teamID int64) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%d does not exist", ErrInvalidInput, teamID)
	}
	return nil
}

func (s *FixtureService) getFixture(ctx context.Context, fixtureID int64) (fixture.Fixture, error) {
	if fixtureID <= 0 {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	item, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture by id: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, fixtureID)
	}
	return item, nil
}

func mapFixtureWriteError(err error) error {
	if errors.Is(err, fixture.ErrUnknownTeam) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("save fixture: %w", err)
}
