package model

import (
	"fmt"
	"strings"
	"time"
)

type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	// Team is the match side the player belongs to, e.g. "India" or
	// "Mumbai Indians". Sides are free-form strings because they change with
	// every match, unlike a fixed franchise list.
	Team    string      `json:"team,omitempty"`
	Role    Role        `json:"role"`
	Credits float64     `json:"credits"`
	Stats   PlayerStats `json:"stats"`
	Created time.Time   `json:"created"`
	Updated time.Time   `json:"updated"`
}

// PlayerStats holds the role-dependent performance numbers. Only the fields
// relevant to the player's role are populated; the rest stay at their zero
// value.
type PlayerStats struct {
	BattingAvg float64 `json:"battingAvg"`
	StrikeRate float64 `json:"strikeRate"`
	Runs       int     `json:"runs"`
	Wickets    int     `json:"wickets"`
	Economy    float64 `json:"economy"`
}

func (p *Player) FormattedCredits() string {
	return fmt.Sprintf("%.1f", p.Credits)
}

func (p *Player) FormattedCreatedTime() string {
	if p.Created.IsZero() {
		return "unknown"
	}
	return p.Created.Format(time.DateTime)
}

func (p *Player) FormattedUpdatedTime() string {
	if p.Updated.IsZero() {
		return "unknown"
	}
	return p.Updated.Format(time.DateTime)
}

// StatsLine renders the stats that matter for the player's role, for use in
// assistant answers and squad listings.
func (p *Player) StatsLine() string {
	switch p.Role {
	case ROLE_BAT, ROLE_WK:
		return fmt.Sprintf("avg %.1f, SR %.1f", p.Stats.BattingAvg, p.Stats.StrikeRate)
	case ROLE_BOWL:
		return fmt.Sprintf("%d wickets, econ %.2f", p.Stats.Wickets, p.Stats.Economy)
	case ROLE_AR:
		return fmt.Sprintf("%d runs, %d wickets", p.Stats.Runs, p.Stats.Wickets)
	default:
		return ""
	}
}

// Take a full name, like "MS Dhoni (c)" and return "MS Dhoni". Squad feeds
// tag captains and keepers inline and the markers are not part of the name.
func TrimNameMarkers(fullName string) string {
	markerList := []string{
		"(c)",
		"(wk)",
		"(c & wk)",
	}

	for _, m := range markerList {
		fullName = strings.TrimSuffix(strings.TrimSpace(fullName), m)
	}

	return strings.TrimSpace(fullName)
}
