package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/campus-league/internal/domain/player"
	qb "github.com/riskibarqy/campus-league/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func playerSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"p.id", "p.name", "p.team_id", "COALESCE(t.name, '') AS team_name",
		"p.position", "p.jersey_number", "p.age", "p.nationality",
		"p.height", "p.weight", "p.photo_url",
	).From("players p").
		LeftJoin("teams t", "t.id = p.team_id AND t.deleted_at IS NULL")
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := playerSelectBuilder().
		Where(qb.IsNull("p.deleted_at")).
		OrderBy("team_name", "p.name", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}
	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	query, args, err := playerSelectBuilder().
		Where(qb.Eq("p.team_id", teamID), qb.IsNull("p.deleted_at")).
		OrderBy("p.jersey_number NULLS LAST", "p.name", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}
	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args []any) ([]player.Player, error) {
	var rows []playerRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := playerSelectBuilder().
		Where(qb.Eq("p.id", playerID), qb.IsNull("p.deleted_at")).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (int64, error) {
	query, args, err := qb.InsertModel("players", playerToModel(item), []string{"id"}, "id")
	if err != nil {
		return 0, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("insert player: %w", player.ErrUnknownTeam)
		}
		return 0, fmt.Errorf("insert player: %w", err)
	}
	return id, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (bool, error) {
	builder, err := qb.UpdateModel("players", playerToModel(item), []string{"id"})
	if err != nil {
		return false, fmt.Errorf("build update player query: %w", err)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, fmt.Errorf("update player: %w", player.ErrUnknownTeam)
		}
		return false, fmt.Errorf("update player: %w", err)
	}
	return rowsAffected(result, "update player")
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) (bool, error) {
	query, args, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("id", playerID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build soft delete player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("soft delete player: %w", err)
	}
	return rowsAffected(result, "soft delete player")
}
