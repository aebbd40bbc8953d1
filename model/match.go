package model

import (
	"fmt"
	"time"
)

type Match struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Venue        string      `json:"venue"`
	Date         time.Time   `json:"date"`
	Status       string      `json:"status"`
	Teams        []string    `json:"teams"`
	Score        []ScoreLine `json:"score,omitempty"`
	MatchStarted bool        `json:"matchStarted"`
	MatchEnded   bool        `json:"matchEnded"`
}

type ScoreLine struct {
	Inning  string  `json:"inning"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Overs   float64 `json:"overs"`
}

func (s *ScoreLine) String() string {
	return fmt.Sprintf("%s: %d/%d (%.1f ov)", s.Inning, s.Runs, s.Wickets, s.Overs)
}

// Live reports whether the match is currently in progress.
func (m *Match) Live() bool {
	return m.MatchStarted && !m.MatchEnded
}

func (m *Match) Title() string {
	if len(m.Teams) == 2 {
		return fmt.Sprintf("%s vs %s", m.Teams[0], m.Teams[1])
	}
	return m.Name
}

type Scorecard struct {
	MatchID string
	Innings []Innings
}

type Innings struct {
	Name    string
	Batting []BattingLine
	Bowling []BowlingLine
}

type BattingLine struct {
	Player     string
	Dismissal  string
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	StrikeRate float64
}

type BowlingLine struct {
	Player  string
	Overs   float64
	Maidens int
	Runs    int
	Wickets int
	Economy float64
}
