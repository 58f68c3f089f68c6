package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/campus-league/internal/domain/standing"
)

type StandingService struct {
	repo standing.Repository
}

func NewStandingService(repo standing.Repository) *StandingService {
	return &StandingService{repo: repo}
}

// List recomputes the league table from the current store contents.
func (s *StandingService) List(ctx context.Context) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.List")
	defer span.End()

	teams, fixtures, err := s.repo.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load match records: %w", err)
	}

	return standing.Compute(teams, fixtures), nil
}
