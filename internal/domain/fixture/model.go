package fixture

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"

	DefaultTime  = "15:00"
	DefaultVenue = "TBD"

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var ErrUnknownTeam = errors.New("fixture team does not exist")

// Fixture is a scheduled or completed match between two teams.
// HomeScore and AwayScore are set only once the fixture is completed.
type Fixture struct {
	ID         int64
	HomeTeamID int64
	AwayTeamID int64
	HomeTeam   string
	AwayTeam   string
	Date       string
	Time       string
	Venue      string
	Status     string
	HomeScore  *int
	AwayScore  *int
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsKnownStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusScheduled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (f Fixture) IsCompleted() bool {
	return NormalizeStatus(f.Status) == StatusCompleted
}

func (f Fixture) Involves(teamID int64) bool {
	return f.HomeTeamID == teamID || f.AwayTeamID == teamID
}

// ScoresFor returns the goals scored and conceded by teamID.
// ok is false when the team did not play or the score is not recorded.
func (f Fixture) ScoresFor(teamID int64) (own, opponent int, ok bool) {
	if f.HomeScore == nil || f.AwayScore == nil {
		return 0, 0, false
	}
	switch teamID {
	case f.HomeTeamID:
		return *f.HomeScore, *f.AwayScore, true
	case f.AwayTeamID:
		return *f.AwayScore, *f.HomeScore, true
	default:
		return 0, 0, false
	}
}

// ApplyDefaults fills time, venue and status and drops scores from
// fixtures that are not completed.
func (f *Fixture) ApplyDefaults() {
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.Venue = strings.TrimSpace(f.Venue)
	if f.Time == "" {
		f.Time = DefaultTime
	}
	if f.Venue == "" {
		f.Venue = DefaultVenue
	}
	f.Status = NormalizeStatus(f.Status)
	if f.Status != StatusCompleted {
		f.HomeScore = nil
		f.AwayScore = nil
	}
}

func (f Fixture) Validate() error {
	if f.HomeTeamID <= 0 || f.AwayTeamID <= 0 {
		return fmt.Errorf("home and away teams are required")
	}
	if f.HomeTeamID == f.AwayTeamID {
		return fmt.Errorf("home and away teams cannot be the same")
	}
	if _, err := time.Parse(dateLayout, f.Date); err != nil {
		return fmt.Errorf("fixture date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, f.Time); err != nil {
		return fmt.Errorf("fixture time must be HH:MM")
	}
	if !IsKnownStatus(f.Status) {
		return fmt.Errorf("unknown fixture status %q", f.Status)
	}
	if (f.HomeScore == nil) != (f.AwayScore == nil) {
		return fmt.Errorf("home and away scores must be set together")
	}
	hasScores := f.HomeScore != nil
	if f.IsCompleted() != hasScores {
		return fmt.Errorf("scores are required for completed fixtures and forbidden otherwise")
	}
	if hasScores && (*f.HomeScore < 0 || *f.AwayScore < 0) {
		return fmt.Errorf("scores cannot be negative")
	}

	return nil
}
