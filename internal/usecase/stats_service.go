package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/stats"
	"github.com/sourcegraph/conc/pool"
)

type StatsService struct {
	counter stats.Counter
}

func NewStatsService(counter stats.Counter) *StatsService {
	return &StatsService{counter: counter}
}

// Get runs the dashboard counters concurrently and fails on the first error.
func (s *StatsService) Get(ctx context.Context) (stats.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Get")
	defer span.End()

	var out stats.Summary
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()

	p.Go(func(ctx context.Context) error {
		v, err := s.counter.CountTeams(ctx)
		if err != nil {
			return fmt.Errorf("count teams: %w", err)
		}
		out.TotalTeams = v
		return nil
	})
	p.Go(func(ctx context.Context) error {
		v, err := s.counter.CountPlayers(ctx)
		if err != nil {
			return fmt.Errorf("count players: %w", err)
		}
		out.TotalPlayers = v
		return nil
	})
	p.Go(func(ctx context.Context) error {
		v, err := s.counter.CountFixtures(ctx)
		if err != nil {
			return fmt.Errorf("count fixtures: %w", err)
		}
		out.TotalFixtures = v
		return nil
	})
	p.Go(func(ctx context.Context) error {
		v, err := s.counter.CountFixturesByStatus(ctx, fixture.StatusCompleted)
		if err != nil {
			return fmt.Errorf("count completed fixtures: %w", err)
		}
		out.CompletedMatches = v
		return nil
	})
	p.Go(func(ctx context.Context) error {
		v, err := s.counter.CountFixturesByStatus(ctx, fixture.StatusScheduled)
		if err != nil {
			return fmt.Errorf("count scheduled fixtures: %w", err)
		}
		out.UpcomingMatches = v
		return nil
	})

	if err := p.Wait(); err != nil {
		return stats.Summary{}, err
	}
	return out, nil
}
