package postgres

import (
	"database/sql"

	"github.com/riskibarqy/campus-league/internal/domain/player"
)

type playerTableModel struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	TeamID       sql.NullInt64   `db:"team_id"`
	Position     string          `db:"position"`
	JerseyNumber sql.NullInt32   `db:"jersey_number"`
	Age          sql.NullInt32   `db:"age"`
	Nationality  string          `db:"nationality"`
	Height       sql.NullFloat64 `db:"height"`
	Weight       sql.NullFloat64 `db:"weight"`
	PhotoURL     string          `db:"photo_url"`
}

type playerRowModel struct {
	playerTableModel
	TeamName string `db:"team_name"`
}

func playerToModel(item player.Player) playerTableModel {
	return playerTableModel{
		ID:           item.ID,
		Name:         item.Name,
		TeamID:       int64PtrToNull(item.TeamID),
		Position:     item.Position,
		JerseyNumber: intPtrToNull(item.JerseyNumber),
		Age:          intPtrToNull(item.Age),
		Nationality:  item.Nationality,
		Height:       float64PtrToNull(item.Height),
		Weight:       float64PtrToNull(item.Weight),
		PhotoURL:     item.PhotoURL,
	}
}

func playerFromRow(row playerRowModel) player.Player {
	return player.Player{
		ID:           row.ID,
		Name:         row.Name,
		TeamID:       nullInt64ToPtr(row.TeamID),
		TeamName:     row.TeamName,
		Position:     row.Position,
		JerseyNumber: nullInt32ToPtr(row.JerseyNumber),
		Age:          nullInt32ToPtr(row.Age),
		Nationality:  row.Nationality,
		Height:       nullFloat64ToPtr(row.Height),
		Weight:       nullFloat64ToPtr(row.Weight),
		PhotoURL:     row.PhotoURL,
	}
}
