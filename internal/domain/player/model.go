package player

import (
	"errors"
	"fmt"
	"strings"
)

// Player is a squad member; TeamID is nil for unassigned players.
type Player struct {
	ID           int64
	Name         string
	TeamID       *int64
	TeamName     string
	Position     string
	JerseyNumber *int
	Age          *int
	Nationality  string
	Height       *float64
	Weight       *float64
	PhotoURL     string
}

var ErrUnknownTeam = errors.New("player team does not exist")

func (p *Player) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Position = strings.TrimSpace(p.Position)
	p.Nationality = strings.TrimSpace(p.Nationality)
	p.PhotoURL = strings.TrimSpace(p.PhotoURL)
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamID != nil && *p.TeamID <= 0 {
		return fmt.Errorf("player team id must be positive")
	}
	if p.JerseyNumber != nil && (*p.JerseyNumber < 0 || *p.JerseyNumber > 99) {
		return fmt.Errorf("jersey number must be between 0 and 99")
	}
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("player age cannot be negative")
	}
	if p.Height != nil && *p.Height < 0 {
		return fmt.Errorf("player height cannot be negative")
	}
	if p.Weight != nil && *p.Weight < 0 {
		return fmt.Errorf("player weight cannot be negative")
	}

	return nil
}
