package stats

import "context"

// Summary holds league-wide counters for the admin dashboard.
type Summary struct {
	TotalTeams       int
	TotalPlayers     int
	TotalFixtures    int
	CompletedMatches int
	UpcomingMatches  int
}

// Counter is the read side the dashboard needs from the store.
type Counter interface {
	CountTeams(ctx context.Context) (int, error)
	CountPlayers(ctx context.Context) (int, error)
	CountFixturesByStatus(ctx context.Context, status string) (int, error)
	CountFixtures(ctx context.Context) (int, error)
}
