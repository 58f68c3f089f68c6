package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	qb "github.com/riskibarqy/campus-league/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func fixtureSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"f.id", "f.home_team_id", "f.away_team_id",
		"home.name AS home_team", "away.name AS away_team",
		"to_char(f.match_date, 'YYYY-MM-DD') AS match_date",
		"to_char(f.match_time, 'HH24:MI') AS match_time",
		"f.venue", "f.status", "f.home_score", "f.away_score",
	).From("fixtures f").
		Join("teams home", "home.id = f.home_team_id").
		Join("teams away", "away.id = f.away_team_id")
}

func selectFixtures(ctx context.Context, q sqlx.QueryerContext, query string, args []any) ([]fixture.Fixture, error) {
	var rows []fixtureRowModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixtureFromRow(row))
	}
	return out, nil
}

func (r *FixtureRepository) List(ctx context.Context) ([]fixture.Fixture, error) {
	query, args, err := fixtureSelectBuilder().
		Where(qb.IsNull("f.deleted_at")).
		OrderBy("f.match_date DESC", "f.match_time DESC", "f.id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}
	return selectFixtures(ctx, r.db, query, args)
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	query, args, err := fixtureSelectBuilder().
		Where(qb.Eq("f.id", fixtureID), qb.IsNull("f.deleted_at")).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build select fixture by id query: %w", err)
	}

	var row fixtureRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("select fixture by id: %w", err)
	}
	return fixtureFromRow(row), true, nil
}

func (r *FixtureRepository) Create(ctx context.Context, item fixture.Fixture) (int64, error) {
	query, args, err := qb.InsertModel("fixtures", fixtureToModel(item), []string{"id"}, "id")
	if err != nil {
		return 0, fmt.Errorf("build insert fixture query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("insert fixture: %w", fixture.ErrUnknownTeam)
		}
		return 0, fmt.Errorf("insert fixture: %w", err)
	}
	return id, nil
}

// Update rewrites the schedule and score columns; teams stay fixed.
func (r *FixtureRepository) Update(ctx context.Context, item fixture.Fixture) (bool, error) {
	builder, err := qb.UpdateModel("fixtures", fixtureToModel(item), []string{"id", "home_team_id", "away_team_id"})
	if err != nil {
		return false, fmt.Errorf("build update fixture query: %w", err)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update fixture query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update fixture: %w", err)
	}
	return rowsAffected(result, "update fixture")
}

func (r *FixtureRepository) RecordResult(ctx context.Context, fixtureID int64, homeScore, awayScore int) (bool, error) {
	query, args, err := qb.Update("fixtures").
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		Set("status", fixture.StatusCompleted).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", fixtureID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build record fixture result query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("record fixture result: %w", err)
	}
	return rowsAffected(result, "record fixture result")
}

func (r *FixtureRepository) Delete(ctx context.Context, fixtureID int64) (bool, error) {
	query, args, err := qb.Update("fixtures").
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("id", fixtureID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build soft delete fixture query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("soft delete fixture: %w", err)
	}
	return rowsAffected(result, "soft delete fixture")
}
