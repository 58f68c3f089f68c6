package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/campus-league/internal/platform/querybuilder"
)

// StatsRepository answers the dashboard counters.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountTeams(ctx context.Context) (int, error) {
	return r.count(ctx, "teams")
}

func (r *StatsRepository) CountPlayers(ctx context.Context) (int, error) {
	return r.count(ctx, "players")
}

func (r *StatsRepository) CountFixtures(ctx context.Context) (int, error) {
	return r.count(ctx, "fixtures")
}

func (r *StatsRepository) CountFixturesByStatus(ctx context.Context, status string) (int, error) {
	return r.count(ctx, "fixtures", qb.Eq("status", status))
}

func (r *StatsRepository) count(ctx context.Context, table string, conditions ...qb.Condition) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From(table).
		Where(append([]qb.Condition{qb.IsNull("deleted_at")}, conditions...)...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count %s query: %w", table, err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}
