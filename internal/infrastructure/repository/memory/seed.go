package memory

import (
	"time"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/news"
	"github.com/riskibarqy/campus-league/internal/domain/player"
	"github.com/riskibarqy/campus-league/internal/domain/team"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "ITB Ganesha FC", University: "Institut Teknologi Bandung", City: "Bandung", Founded: "1959", Coach: "Rahmat Hidayat", Stadium: "Lapangan Saraga"},
		{ID: 2, Name: "UI Makara United", University: "Universitas Indonesia", City: "Depok", Founded: "1962", Coach: "Dimas Pratama", Stadium: "Stadion UI"},
		{ID: 3, Name: "UGM Bulaksumur", University: "Universitas Gadjah Mada", City: "Yogyakarta", Founded: "1955", Coach: "Agus Salim", Stadium: "Lapangan Pancasila"},
		{ID: 4, Name: "Unair Airlangga FC", University: "Universitas Airlangga", City: "Surabaya", Founded: "1970", Coach: "Bayu Saputra", Stadium: "Stadion Kampus C"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Fajar Nugroho", TeamID: int64Ptr(1), Position: "Goalkeeper", JerseyNumber: intPtr(1), Age: intPtr(21), Nationality: "Indonesia"},
		{ID: 2, Name: "Rizky Ramadhan", TeamID: int64Ptr(1), Position: "Forward", JerseyNumber: intPtr(9), Age: intPtr(20), Nationality: "Indonesia"},
		{ID: 3, Name: "Andi Wijaya", TeamID: int64Ptr(2), Position: "Midfielder", JerseyNumber: intPtr(8), Age: intPtr(22), Nationality: "Indonesia"},
		{ID: 4, Name: "Yusuf Hakim", TeamID: int64Ptr(3), Position: "Defender", JerseyNumber: intPtr(4), Age: intPtr(23), Nationality: "Indonesia"},
		{ID: 5, Name: "Kevin Tanoto", TeamID: int64Ptr(4), Position: "Forward", JerseyNumber: intPtr(10), Age: intPtr(19), Nationality: "Indonesia"},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 2, Date: "2026-02-07", Time: "15:00", Venue: "Lapangan Saraga", Status: fixture.StatusCompleted, HomeScore: intPtr(2), AwayScore: intPtr(1)},
		{ID: 2, HomeTeamID: 3, AwayTeamID: 4, Date: "2026-02-08", Time: "15:00", Venue: "Lapangan Pancasila", Status: fixture.StatusCompleted, HomeScore: intPtr(0), AwayScore: intPtr(0)},
		{ID: 3, HomeTeamID: 2, AwayTeamID: 3, Date: "2026-02-14", Time: "16:00", Venue: "Stadion UI", Status: fixture.StatusScheduled},
		{ID: 4, HomeTeamID: 4, AwayTeamID: 1, Date: "2026-02-15", Time: "15:00", Venue: fixture.DefaultVenue, Status: fixture.StatusScheduled},
	}
}

func SeedNews() []news.Article {
	return []news.Article{
		{
			ID:        1,
			Title:     "Season kicks off in Bandung",
			Content:   "ITB Ganesha FC opened the season with a 2-1 home win.",
			Author:    news.DefaultAuthor,
			Category:  "Match Report",
			Published: true,
			CreatedAt: time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC),
		},
	}
}

// NewSeededStore returns a Store preloaded with the demo league.
func NewSeededStore() *Store {
	s := NewStore()
	for _, item := range SeedTeams() {
		s.teams[item.ID] = item
		s.lastTeamID = max(s.lastTeamID, item.ID)
	}
	for _, item := range SeedPlayers() {
		s.players[item.ID] = item
		s.lastPlayerID = max(s.lastPlayerID, item.ID)
	}
	for _, item := range SeedFixtures() {
		s.fixtures[item.ID] = item
		s.lastFixtureID = max(s.lastFixtureID, item.ID)
	}
	for _, item := range SeedNews() {
		s.news[item.ID] = item
		s.lastNewsID = max(s.lastNewsID, item.ID)
	}
	return s
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }
