package standing

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/team"
)

func intPtr(v int) *int { return &v }

func completed(id, home, away int64, homeScore, awayScore int) fixture.Fixture {
	return fixture.Fixture{
		ID:         id,
		HomeTeamID: home,
		AwayTeamID: away,
		Status:     fixture.StatusCompleted,
		HomeScore:  intPtr(homeScore),
		AwayScore:  intPtr(awayScore),
	}
}

func scheduled(id, home, away int64) fixture.Fixture {
	return fixture.Fixture{
		ID:         id,
		HomeTeamID: home,
		AwayTeamID: away,
		Status:     fixture.StatusScheduled,
	}
}

func rowFor(t *testing.T, rows []Standing, teamID int64) Standing {
	t.Helper()
	for _, row := range rows {
		if row.TeamID == teamID {
			return row
		}
	}
	t.Fatalf("team %d missing from table", teamID)
	return Standing{}
}

func TestCompute_HomeWin(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 1, Name: "Team A"}, {ID: 2, Name: "Team B"}}
	got := Compute(teams, []fixture.Fixture{completed(1, 1, 2, 2, 1)})

	a := rowFor(t, got, 1)
	if a.Points != 3 || a.GoalsFor != 2 || a.GoalsAgainst != 1 || a.GoalDifference != 1 || a.MatchesPlayed != 1 {
		t.Fatalf("unexpected row for A: %+v", a)
	}
	b := rowFor(t, got, 2)
	if b.Points != 0 || b.GoalsFor != 1 || b.GoalsAgainst != 2 || b.GoalDifference != -1 || b.MatchesPlayed != 1 {
		t.Fatalf("unexpected row for B: %+v", b)
	}
	if got[0].TeamID != 1 || got[0].Position != 1 || got[1].Position != 2 {
		t.Fatalf("unexpected ranking: %+v", got)
	}
}

func TestCompute_GoallessDraw(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 3, Name: "Team C"}, {ID: 4, Name: "Team D"}}
	got := Compute(teams, []fixture.Fixture{completed(1, 3, 4, 0, 0)})

	for _, id := range []int64{3, 4} {
		row := rowFor(t, got, id)
		want := Standing{
			Position:      row.Position,
			TeamID:        id,
			TeamName:      row.TeamName,
			MatchesPlayed: 1,
			Drawn:         1,
			Points:        1,
		}
		if row != want {
			t.Fatalf("unexpected draw row: got=%+v want=%+v", row, want)
		}
	}
}

func TestCompute_ScheduledFixtureIgnoredEvenWithScores(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 5, Name: "Team E"}, {ID: 6, Name: "Team F"}}
	withScores := scheduled(2, 5, 6)
	withScores.HomeScore = intPtr(4)
	withScores.AwayScore = intPtr(0)

	got := Compute(teams, []fixture.Fixture{scheduled(1, 5, 6), withScores})
	for _, row := range got {
		if row.MatchesPlayed != 0 || row.Points != 0 || row.GoalsFor != 0 || row.GoalsAgainst != 0 {
			t.Fatalf("scheduled fixtures must not count: %+v", row)
		}
	}
}

func TestCompute_TeamWithoutFixturesHasZeroRow(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 1, Name: "Team A"}, {ID: 2, Name: "Team B"}, {ID: 7, Name: "Team G"}}
	got := Compute(teams, []fixture.Fixture{completed(1, 1, 2, 1, 0)})

	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	g := rowFor(t, got, 7)
	if g.MatchesPlayed != 0 || g.Points != 0 || g.GoalsFor != 0 || g.GoalsAgainst != 0 || g.GoalDifference != 0 {
		t.Fatalf("expected all-zero row, got %+v", g)
	}
}

func TestCompute_NoTeams(t *testing.T) {
	t.Parallel()

	got := Compute(nil, []fixture.Fixture{completed(1, 1, 2, 1, 0)})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil table, got %#v", got)
	}
}

func TestCompute_TieBreakChain(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Bravo"},
		{ID: 3, Name: "Charlie"},
		{ID: 4, Name: "Delta"},
	}
	fixtures := []fixture.Fixture{
		completed(1, 1, 4, 1, 0), // Alpha 3 pts, gd +1, gf 1
		completed(2, 2, 4, 3, 2), // Bravo 3 pts, gd +1, gf 3
		completed(3, 3, 4, 4, 0), // Charlie 3 pts, gd +4, gf 4
	}

	got := Compute(teams, fixtures)
	order := []int64{got[0].TeamID, got[1].TeamID, got[2].TeamID, got[3].TeamID}
	want := []int64{3, 2, 1, 4}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("unexpected order: got=%v want=%v", order, want)
	}
}

func TestCompute_FullTieKeepsInputOrder(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 9, Name: "Zulu"}, {ID: 2, Name: "Alpha"}, {ID: 5, Name: "Mike"}}
	got := Compute(teams, nil)

	for i, id := range []int64{9, 2, 5} {
		if got[i].TeamID != id || got[i].Position != i+1 {
			t.Fatalf("row %d: got team=%d pos=%d, want team=%d pos=%d", i, got[i].TeamID, got[i].Position, id, i+1)
		}
	}
}

func TestCompute_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(20261016))
	for round := 0; round < 50; round++ {
		teamCount := 2 + rng.Intn(8)
		teams := make([]team.Team, 0, teamCount)
		for i := 1; i <= teamCount; i++ {
			teams = append(teams, team.Team{ID: int64(i), Name: "T"})
		}

		var fixtures []fixture.Fixture
		for i := 0; i < rng.Intn(40); i++ {
			home := int64(1 + rng.Intn(teamCount))
			away := int64(1 + rng.Intn(teamCount))
			if home == away {
				continue
			}
			f := completed(int64(i+1), home, away, rng.Intn(5), rng.Intn(5))
			if rng.Intn(4) == 0 {
				f.Status = fixture.StatusScheduled
			}
			fixtures = append(fixtures, f)
		}

		got := Compute(teams, fixtures)
		if len(got) != teamCount {
			t.Fatalf("round %d: expected %d rows, got %d", round, teamCount, len(got))
		}

		for _, row := range got {
			played, wins, draws := 0, 0, 0
			for _, f := range fixtures {
				if !f.IsCompleted() || !f.Involves(row.TeamID) {
					continue
				}
				played++
				own, opp, _ := f.ScoresFor(row.TeamID)
				switch {
				case own > opp:
					wins++
				case own == opp:
					draws++
				}
			}
			if row.MatchesPlayed != played {
				t.Fatalf("round %d team %d: matches_played=%d want %d", round, row.TeamID, row.MatchesPlayed, played)
			}
			if row.Points != 3*wins+draws {
				t.Fatalf("round %d team %d: points=%d want %d", round, row.TeamID, row.Points, 3*wins+draws)
			}
			if row.GoalDifference != row.GoalsFor-row.GoalsAgainst {
				t.Fatalf("round %d team %d: goal difference mismatch %+v", round, row.TeamID, row)
			}
		}

		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			if ranksAbove(cur, prev) {
				t.Fatalf("round %d: row %d outranks row %d: %+v > %+v", round, i, i-1, cur, prev)
			}
		}

		again := Compute(teams, fixtures)
		if !reflect.DeepEqual(got, again) {
			t.Fatalf("round %d: second computation differs", round)
		}
	}
}
