package standing

import (
	"context"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/team"
)

const (
	PointsWin  = 3
	PointsDraw = 1
)

// Standing is one league table row, derived from completed fixtures.
type Standing struct {
	Position       int
	TeamID         int64
	TeamName       string
	LogoURL        string
	MatchesPlayed  int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// Repository is the read accessor the calculator needs from the match store.
// Implementations return every team and every fixture as one snapshot.
type Repository interface {
	LoadRecords(ctx context.Context) ([]team.Team, []fixture.Fixture, error)
}
