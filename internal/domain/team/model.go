package team

import (
	"errors"
	"fmt"
	"strings"
)

const MaxNameLength = 120

// Team is a university club registered in the league.
type Team struct {
	ID          int64
	Name        string
	University  string
	City        string
	Founded     string
	Coach       string
	Stadium     string
	LogoURL     string
	PlayerCount int
}

// Normalize trims every free-text attribute in place.
func (t *Team) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.University = strings.TrimSpace(t.University)
	t.City = strings.TrimSpace(t.City)
	t.Founded = strings.TrimSpace(t.Founded)
	t.Coach = strings.TrimSpace(t.Coach)
	t.Stadium = strings.TrimSpace(t.Stadium)
	t.LogoURL = strings.TrimSpace(t.LogoURL)
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if len(t.Name) > MaxNameLength {
		return fmt.Errorf("team name must be at most %d characters", MaxNameLength)
	}

	return nil
}

var (
	ErrDuplicateName = errors.New("team name already exists")
	ErrInUse         = errors.New("team is referenced by players or fixtures")
)
