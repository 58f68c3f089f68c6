package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/news"
	"github.com/riskibarqy/campus-league/internal/domain/player"
	"github.com/riskibarqy/campus-league/internal/domain/team"
)

func TestTeamRepository_DuplicateNameIgnoresCase(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(NewStore())
	ctx := context.Background()

	if _, err := repo.Create(ctx, team.Team{Name: "Garuda FC"}); err != nil {
		t.Fatalf("create team: %v", err)
	}
	if _, err := repo.Create(ctx, team.Team{Name: "garuda fc"}); !errors.Is(err, team.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestTeamRepository_DeleteReferencedTeam(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	repo := NewTeamRepository(store)

	if _, err := repo.Delete(context.Background(), 1); !errors.Is(err, team.ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}

	id, err := repo.Create(context.Background(), team.Team{Name: "Fresh Club"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	deleted, err := repo.Delete(context.Background(), id)
	if err != nil || !deleted {
		t.Fatalf("expected delete of unreferenced team, deleted=%t err=%v", deleted, err)
	}
}

func TestTeamRepository_PlayerCount(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(NewSeededStore())
	got, ok, err := repo.GetByID(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("get team: ok=%t err=%v", ok, err)
	}
	if got.PlayerCount != 2 {
		t.Fatalf("expected 2 players, got %d", got.PlayerCount)
	}
}

func TestPlayerRepository_ResolvesTeamName(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	players := NewPlayerRepository(store)
	ctx := context.Background()

	id, err := players.Create(ctx, player.Player{Name: "Free Agent"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	got, _, _ := players.GetByID(ctx, id)
	if got.TeamName != "" {
		t.Fatalf("unassigned player must have empty team name, got %q", got.TeamName)
	}

	unknown := int64(404)
	if _, err := players.Create(ctx, player.Player{Name: "Ghost", TeamID: &unknown}); !errors.Is(err, player.ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}

	list, err := players.List(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if list[0].Name != "Free Agent" {
		t.Fatalf("expected unassigned player first by team name, got %+v", list[0])
	}
}

func TestFixtureRepository_RecordResultAndOrder(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	repo := NewFixtureRepository(store)
	ctx := context.Background()

	ok, err := repo.RecordResult(ctx, 3, 1, 3)
	if err != nil || !ok {
		t.Fatalf("record result: ok=%t err=%v", ok, err)
	}
	got, _, _ := repo.GetByID(ctx, 3)
	if !got.IsCompleted() || *got.HomeScore != 1 || *got.AwayScore != 3 {
		t.Fatalf("unexpected fixture after result: %+v", got)
	}
	if got.HomeTeam != "UI Makara United" {
		t.Fatalf("unexpected home team name: %q", got.HomeTeam)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if list[0].Date != "2026-02-15" || list[len(list)-1].Date != "2026-02-07" {
		t.Fatalf("expected newest first, got %s..%s", list[0].Date, list[len(list)-1].Date)
	}

	if ok, _ := repo.RecordResult(ctx, 999, 0, 0); ok {
		t.Fatalf("expected missing fixture to report false")
	}
}

func TestStandingRepository_LoadRecords(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	teams, fixtures, err := NewStandingRepository(store).LoadRecords(context.Background())
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	if len(teams) != 4 || len(fixtures) != 4 {
		t.Fatalf("unexpected snapshot sizes: teams=%d fixtures=%d", len(teams), len(fixtures))
	}
	for i := 1; i < len(teams); i++ {
		if teams[i-1].ID >= teams[i].ID {
			t.Fatalf("teams must be in ascending id order: %+v", teams)
		}
	}
	completed := 0
	for _, f := range fixtures {
		if f.Status == fixture.StatusCompleted {
			completed++
		}
	}
	if completed != 2 {
		t.Fatalf("expected 2 completed fixtures, got %d", completed)
	}
}

func TestNewsRepository_PublishedNewestFirst(t *testing.T) {
	t.Parallel()

	repo := NewNewsRepository(NewStore())
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, _ = repo.Create(ctx, news.Article{Title: "old", Published: true, CreatedAt: base})
	_, _ = repo.Create(ctx, news.Article{Title: "draft", Published: false, CreatedAt: base.Add(time.Hour)})
	_, _ = repo.Create(ctx, news.Article{Title: "new", Published: true, CreatedAt: base.Add(2 * time.Hour)})

	got, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("list news: %v", err)
	}
	if len(got) != 2 || got[0].Title != "new" || got[1].Title != "old" {
		t.Fatalf("unexpected published list: %+v", got)
	}

	all, _ := repo.List(ctx, false)
	if len(all) != 3 {
		t.Fatalf("expected drafts in admin list, got %d", len(all))
	}
}

func TestStatsRepository_Counts(t *testing.T) {
	t.Parallel()

	repo := NewStatsRepository(NewSeededStore())
	ctx := context.Background()

	completed, _ := repo.CountFixturesByStatus(ctx, fixture.StatusCompleted)
	scheduled, _ := repo.CountFixturesByStatus(ctx, fixture.StatusScheduled)
	total, _ := repo.CountFixtures(ctx)
	if completed != 2 || scheduled != 2 || total != 4 {
		t.Fatalf("unexpected counts: completed=%d scheduled=%d total=%d", completed, scheduled, total)
	}
}
