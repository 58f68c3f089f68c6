package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/stats"
	statsmock "github.com/riskibarqy/campus-league/internal/mocks/domain/stats"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_Get(t *testing.T) {
	t.Parallel()

	counter := statsmock.NewCounter(t)
	service := NewStatsService(counter)

	counter.On("CountTeams", mock.Anything).Return(8, nil).Once()
	counter.On("CountPlayers", mock.Anything).Return(160, nil).Once()
	counter.On("CountFixtures", mock.Anything).Return(28, nil).Once()
	counter.On("CountFixturesByStatus", mock.Anything, fixture.StatusCompleted).Return(10, nil).Once()
	counter.On("CountFixturesByStatus", mock.Anything, fixture.StatusScheduled).Return(18, nil).Once()

	got, err := service.Get(context.Background())
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	want := stats.Summary{TotalTeams: 8, TotalPlayers: 160, TotalFixtures: 28, CompletedMatches: 10, UpcomingMatches: 18}
	if got != want {
		t.Fatalf("unexpected summary: got=%+v want=%+v", got, want)
	}
}

func TestStatsService_Get_PropagatesError(t *testing.T) {
	t.Parallel()

	counter := &statsmock.Counter{}
	service := NewStatsService(counter)
	storeErr := errors.New("db down")

	counter.On("CountTeams", mock.Anything).Return(0, storeErr).Maybe()
	counter.On("CountPlayers", mock.Anything).Return(0, nil).Maybe()
	counter.On("CountFixtures", mock.Anything).Return(0, nil).Maybe()
	counter.On("CountFixturesByStatus", mock.Anything, mock.Anything).Return(0, nil).Maybe()

	if _, err := service.Get(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
