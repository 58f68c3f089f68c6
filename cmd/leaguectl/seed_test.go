package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/campus-league/internal/app"
	"github.com/riskibarqy/campus-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/campus-league/internal/platform/logging"
	"github.com/riskibarqy/campus-league/internal/usecase"
)

func memoryRepositories(store *memory.Store) app.Repositories {
	return app.Repositories{
		Teams:     memory.NewTeamRepository(store),
		Players:   memory.NewPlayerRepository(store),
		Fixtures:  memory.NewFixtureRepository(store),
		News:      memory.NewNewsRepository(store),
		Standings: memory.NewStandingRepository(store),
		Stats:     memory.NewStatsRepository(store),
	}
}

func TestParseSeed_RejectsHalfScore(t *testing.T) {
	_, err := parseSeed([]byte(`
fixtures:
  - home: A
    away: B
    date: "2026-01-01"
    home_score: 1
`))
	if err == nil || !strings.Contains(err.Error(), "must be set together") {
		t.Fatalf("expected half score error, got %v", err)
	}
}

func TestParseSeed_InvalidYAML(t *testing.T) {
	if _, err := parseSeed([]byte("teams: [")); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestResolveTeam(t *testing.T) {
	index := map[string]int64{"itb fc": 1}

	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "exact", input: "itb fc", want: 1},
		{name: "case and space insensitive", input: "  ITB FC ", want: 1},
		{name: "unknown", input: "UGM", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveTeam(index, tc.input)
			if tc.wantErr {
				if !errors.Is(err, errUnknownSeedTeam) {
					t.Fatalf("expected unknown team error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected id: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestSeeder_LoadsSampleFile(t *testing.T) {
	file, err := loadSeedFile("testdata/seed.yaml")
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}

	store := memory.NewStore()
	repos := memoryRepositories(store)
	summary, err := newSeeder(repos, 3, logging.NewNop()).Run(context.Background(), file)
	if err != nil {
		t.Fatalf("run seeder: %v", err)
	}
	if summary.Failed != 0 {
		t.Fatalf("expected no failures, got %+v", summary.Rows)
	}
	if summary.Created != 9 {
		t.Fatalf("unexpected created count: %d", summary.Created)
	}
	if summary.Rows[0].Kind != seedKindTeam || summary.Rows[len(summary.Rows)-1].Kind != seedKindNews {
		t.Fatalf("rows are not grouped by kind: %+v", summary.Rows)
	}

	ctx := context.Background()
	rows, err := usecase.NewStandingService(repos.Standings).List(ctx)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(rows) != 2 || rows[0].TeamName != "ITB FC" || rows[0].Points != 3 {
		t.Fatalf("unexpected standings after seed: %+v", rows)
	}

	published, err := usecase.NewNewsService(repos.News).ListPublished(ctx)
	if err != nil {
		t.Fatalf("list news: %v", err)
	}
	if len(published) != 1 {
		t.Fatalf("expected one published article, got %d", len(published))
	}

	var out bytes.Buffer
	renderStandings(&out, rows)
	if !strings.Contains(out.String(), "ITB FC") {
		t.Fatalf("rendered table missing team:\n%s", out.String())
	}
}

func TestSeeder_ReportsRowFailures(t *testing.T) {
	file := seedFile{
		Teams:    []seedTeam{{Name: "UGM"}, {Name: "ugm"}},
		Players:  []seedPlayer{{Name: "Lost", Team: "Nowhere"}},
		Fixtures: []seedFixture{{Home: "UGM", Away: "UGM", Date: "2026-01-01"}},
	}

	summary, err := newSeeder(memoryRepositories(memory.NewStore()), 2, logging.NewNop()).Run(context.Background(), file)
	if err != nil {
		t.Fatalf("run seeder: %v", err)
	}
	if summary.Created != 1 || summary.Failed != 3 {
		t.Fatalf("unexpected summary: created=%d failed=%d rows=%+v", summary.Created, summary.Failed, summary.Rows)
	}

	var out bytes.Buffer
	renderSeedSummary(&out, summary)
	if !strings.Contains(strings.ToLower(out.String()), "3 failed") {
		t.Fatalf("summary footer missing failures:\n%s", out.String())
	}
}
