package standing

import (
	"sort"

	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/team"
)

// Compute builds the ranked league table. Every team gets a row, teams
// without completed fixtures included. Rows are ordered by points, goal
// difference and goals for, all descending; full ties keep the order of
// teams.
func Compute(teams []team.Team, fixtures []fixture.Fixture) []Standing {
	out := make([]Standing, 0, len(teams))
	for _, t := range teams {
		out = append(out, tally(t, fixtures))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return ranksAbove(out[i], out[j])
	})
	for i := range out {
		out[i].Position = i + 1
	}

	return out
}

func tally(t team.Team, fixtures []fixture.Fixture) Standing {
	row := Standing{
		TeamID:   t.ID,
		TeamName: t.Name,
		LogoURL:  t.LogoURL,
	}

	for _, f := range fixtures {
		if !f.IsCompleted() || !f.Involves(t.ID) {
			continue
		}
		own, opponent, ok := f.ScoresFor(t.ID)
		if !ok {
			// completed rows always carry scores; a missing one counts as 0-0
			own, opponent = 0, 0
		}

		row.MatchesPlayed++
		row.GoalsFor += own
		row.GoalsAgainst += opponent
		switch {
		case own > opponent:
			row.Won++
			row.Points += PointsWin
		case own == opponent:
			row.Drawn++
			row.Points += PointsDraw
		default:
			row.Lost++
		}
	}
	row.GoalDifference = row.GoalsFor - row.GoalsAgainst

	return row
}

func ranksAbove(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	return a.GoalsFor > b.GoalsFor
}
