package postgres

import "github.com/riskibarqy/campus-league/internal/domain/team"

type teamTableModel struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	University string `db:"university"`
	City       string `db:"city"`
	Founded    string `db:"founded"`
	Coach      string `db:"coach"`
	Stadium    string `db:"stadium"`
	LogoURL    string `db:"logo_url"`
}

type teamRowModel struct {
	teamTableModel
	PlayerCount int `db:"player_count"`
}

func teamToModel(item team.Team) teamTableModel {
	return teamTableModel{
		ID:         item.ID,
		Name:       item.Name,
		University: item.University,
		City:       item.City,
		Founded:    item.Founded,
		Coach:      item.Coach,
		Stadium:    item.Stadium,
		LogoURL:    item.LogoURL,
	}
}

func teamFromRow(row teamRowModel) team.Team {
	return team.Team{
		ID:          row.ID,
		Name:        row.Name,
		University:  row.University,
		City:        row.City,
		Founded:     row.Founded,
		Coach:       row.Coach,
		Stadium:     row.Stadium,
		LogoURL:     row.LogoURL,
		PlayerCount: row.PlayerCount,
	}
}
