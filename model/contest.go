package model

import "time"

type Contest struct {
	ID         int32     `json:"id"`
	Name       string    `json:"name"`
	MatchID    string    `json:"matchId"`
	EntryFee   float64   `json:"entryFee"`
	PrizePool  float64   `json:"prizePool"`
	MaxEntries int       `json:"maxEntries"`
	Entries    int       `json:"entries"`
	Created    time.Time `json:"created"`
}

// Full reports whether the contest can accept another entry.
func (c *Contest) Full() bool {
	return c.MaxEntries > 0 && c.Entries >= c.MaxEntries
}

type ContestEntry struct {
	ContestID int32     `json:"contestId"`
	TeamID    int32     `json:"teamId"`
	Created   time.Time `json:"created"`
}
