package model

import "time"

// Team is a submitted, locked roster. Unlike a Roster it is never mutated
// after it is created.
type Team struct {
	ID            int32     `json:"id"`
	Name          string    `json:"name"`
	MatchID       string    `json:"matchId"`
	CaptainID     string    `json:"captainId"`
	ViceCaptainID string    `json:"viceCaptainId"`
	TotalCredits  float64   `json:"totalCredits"`
	Players       []Player  `json:"players,omitempty"`
	Created       time.Time `json:"created"`
}
