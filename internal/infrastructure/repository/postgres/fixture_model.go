package postgres

import (
	"database/sql"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
)

type fixtureTableModel struct {
	ID         int64         `db:"id"`
	HomeTeamID int64         `db:"home_team_id"`
	AwayTeamID int64         `db:"away_team_id"`
	MatchDate  string        `db:"match_date"`
	MatchTime  string        `db:"match_time"`
	Venue      string        `db:"venue"`
	Status     string        `db:"status"`
	HomeScore  sql.NullInt32 `db:"home_score"`
	AwayScore  sql.NullInt32 `db:"away_score"`
}

type fixtureRowModel struct {
	fixtureTableModel
	HomeTeam string `db:"home_team"`
	AwayTeam string `db:"away_team"`
}

func fixtureToModel(item fixture.Fixture) fixtureTableModel {
	return fixtureTableModel{
		ID:         item.ID,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		MatchDate:  item.Date,
		MatchTime:  item.Time,
		Venue:      item.Venue,
		Status:     item.Status,
		HomeScore:  intPtrToNull(item.HomeScore),
		AwayScore:  intPtrToNull(item.AwayScore),
	}
}

func fixtureFromRow(row fixtureRowModel) fixture.Fixture {
	return fixture.Fixture{
		ID:         row.ID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		HomeTeam:   row.HomeTeam,
		AwayTeam:   row.AwayTeam,
		Date:       row.MatchDate,
		Time:       row.MatchTime,
		Venue:      row.Venue,
		Status:     row.Status,
		HomeScore:  nullInt32ToPtr(row.HomeScore),
		AwayScore:  nullInt32ToPtr(row.AwayScore),
	}
}
