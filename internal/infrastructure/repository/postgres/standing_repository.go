package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/team"
	qb "github.com/riskibarqy/campus-league/internal/platform/querybuilder"
)

// StandingRepository reads the match records the league table is built from.
type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

// LoadRecords reads every live team (ascending id) and every live fixture
// from a single read-only snapshot. The transaction is always rolled back.
func (r *StandingRepository) LoadRecords(ctx context.Context) ([]team.Team, []fixture.Fixture, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("begin read-only tx load match records: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	teamQuery, teamArgs, err := qb.Select("id", "name", "logo_url").From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, nil, fmt.Errorf("build select standing teams query: %w", err)
	}

	var teamRows []teamTableModel
	if err := tx.SelectContext(ctx, &teamRows, teamQuery, teamArgs...); err != nil {
		return nil, nil, fmt.Errorf("select standing teams: %w", err)
	}
	teams := make([]team.Team, 0, len(teamRows))
	for _, row := range teamRows {
		teams = append(teams, team.Team{ID: row.ID, Name: row.Name, LogoURL: row.LogoURL})
	}

	fixtureQuery, fixtureArgs, err := fixtureSelectBuilder().
		Where(qb.IsNull("f.deleted_at")).
		OrderBy("f.id").
		ToSQL()
	if err != nil {
		return nil, nil, fmt.Errorf("build select standing fixtures query: %w", err)
	}
	fixtures, err := selectFixtures(ctx, tx, fixtureQuery, fixtureArgs)
	if err != nil {
		return nil, nil, err
	}

	return teams, fixtures, nil
}
