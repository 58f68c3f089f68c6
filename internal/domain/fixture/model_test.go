package fixture

import "testing"

func ptr(v int) *int { return &v }

func TestFixture_Validate(t *testing.T) {
	t.Parallel()

	base := Fixture{HomeTeamID: 1, AwayTeamID: 2, Date: "2026-03-14", Time: "15:00", Venue: "Main Field", Status: StatusScheduled}

	cases := []struct {
		name    string
		mutate  func(f *Fixture)
		wantErr bool
	}{
		{name: "valid scheduled", mutate: func(*Fixture) {}},
		{name: "valid completed", mutate: func(f *Fixture) {
			f.Status = StatusCompleted
			f.HomeScore, f.AwayScore = ptr(2), ptr(2)
		}},
		{name: "same teams", mutate: func(f *Fixture) { f.AwayTeamID = 1 }, wantErr: true},
		{name: "missing team", mutate: func(f *Fixture) { f.HomeTeamID = 0 }, wantErr: true},
		{name: "bad date", mutate: func(f *Fixture) { f.Date = "14/03/2026" }, wantErr: true},
		{name: "bad time", mutate: func(f *Fixture) { f.Time = "3pm" }, wantErr: true},
		{name: "unknown status", mutate: func(f *Fixture) { f.Status = "abandoned" }, wantErr: true},
		{name: "scheduled with scores", mutate: func(f *Fixture) { f.HomeScore, f.AwayScore = ptr(1), ptr(0) }, wantErr: true},
		{name: "completed without scores", mutate: func(f *Fixture) { f.Status = StatusCompleted }, wantErr: true},
		{name: "half score", mutate: func(f *Fixture) {
			f.Status = StatusCompleted
			f.HomeScore = ptr(1)
		}, wantErr: true},
		{name: "negative score", mutate: func(f *Fixture) {
			f.Status = StatusCompleted
			f.HomeScore, f.AwayScore = ptr(-1), ptr(0)
		}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := base
			tc.mutate(&item)
			err := item.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error for %+v", item)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestFixture_ApplyDefaults(t *testing.T) {
	t.Parallel()

	item := Fixture{HomeTeamID: 1, AwayTeamID: 2, Date: " 2026-03-14 ", HomeScore: ptr(0), AwayScore: ptr(0)}
	item.ApplyDefaults()

	if item.Time != DefaultTime || item.Venue != DefaultVenue || item.Status != StatusScheduled {
		t.Fatalf("unexpected defaults: %+v", item)
	}
	if item.HomeScore != nil || item.AwayScore != nil {
		t.Fatalf("scheduled fixture must not keep scores: %+v", item)
	}
	if item.Date != "2026-03-14" {
		t.Fatalf("expected trimmed date, got %q", item.Date)
	}
}

func TestFixture_ScoresFor(t *testing.T) {
	t.Parallel()

	item := Fixture{HomeTeamID: 1, AwayTeamID: 2, Status: StatusCompleted, HomeScore: ptr(3), AwayScore: ptr(1)}

	own, opp, ok := item.ScoresFor(2)
	if !ok || own != 1 || opp != 3 {
		t.Fatalf("unexpected away perspective: own=%d opp=%d ok=%t", own, opp, ok)
	}
	if _, _, ok := item.ScoresFor(7); ok {
		t.Fatalf("expected ok=false for a team that did not play")
	}
}
