package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/campus-league/internal/domain/team"
	qb "github.com/riskibarqy/campus-league/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func teamSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"t.id", "t.name", "t.university", "t.city", "t.founded", "t.coach", "t.stadium", "t.logo_url",
		"(SELECT COUNT(*) FROM players p WHERE p.team_id = t.id AND p.deleted_at IS NULL) AS player_count",
	).From("teams t")
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := teamSelectBuilder().
		Where(qb.IsNull("t.deleted_at")).
		OrderBy("t.name", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := teamSelectBuilder().
		Where(qb.Eq("t.id", teamID), qb.IsNull("t.deleted_at")).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (int64, error) {
	query, args, err := qb.InsertModel("teams", teamToModel(item), []string{"id"}, "id")
	if err != nil {
		return 0, fmt.Errorf("build insert team query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert team: %w", team.ErrDuplicateName)
		}
		return 0, fmt.Errorf("insert team: %w", err)
	}
	return id, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (bool, error) {
	builder, err := qb.UpdateModel("teams", teamToModel(item), []string{"id"})
	if err != nil {
		return false, fmt.Errorf("build update team query: %w", err)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("update team: %w", team.ErrDuplicateName)
		}
		return false, fmt.Errorf("update team: %w", err)
	}
	return rowsAffected(result, "update team")
}

// Delete soft deletes a team that no live player or fixture references.
func (r *TeamRepository) Delete(ctx context.Context, teamID int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx delete team: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	refQuery, refArgs, err := qb.Select(
		"(SELECT COUNT(*) FROM players WHERE team_id = t.id AND deleted_at IS NULL) + " +
			"(SELECT COUNT(*) FROM fixtures WHERE (home_team_id = t.id OR away_team_id = t.id) AND deleted_at IS NULL)",
	).From("teams t").
		Where(qb.Eq("t.id", teamID), qb.IsNull("t.deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build team reference count query: %w", err)
	}

	var refs int
	if err := tx.GetContext(ctx, &refs, refQuery, refArgs...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("count team references: %w", err)
	}
	if refs > 0 {
		return false, fmt.Errorf("delete team=%d: %w", teamID, team.ErrInUse)
	}

	query, args, err := qb.Update("teams").
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("id", teamID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build soft delete team query: %w", err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("soft delete team: %w", err)
	}
	deleted, err := rowsAffected(result, "soft delete team")
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete team tx: %w", err)
	}
	return deleted, nil
}
