package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRosterFull        = errors.New("roster already has the maximum number of players")
	ErrCreditExceeded    = errors.New("adding this player would exceed the credit budget")
	ErrSideImbalance     = errors.New("too many players selected from one side")
	ErrRoleLimitExceeded = errors.New("no more players of this role can be added")
	ErrPlayerNotSelected = errors.New("player is not in the roster")
)

type RoleLimit struct {
	Min int
	Max int
}

// RosterRules holds the construction limits for a fantasy team. The bounds
// vary by product rule set, so they are configuration rather than constants.
type RosterRules struct {
	MaxPlayers int
	MaxCredits float64
	MaxPerSide int
	RoleLimits map[Role]RoleLimit
}

func DefaultRules() RosterRules {
	return RosterRules{
		MaxPlayers: 11,
		MaxCredits: 100,
		MaxPerSide: 7,
		RoleLimits: map[Role]RoleLimit{
			ROLE_WK:   {Min: 1, Max: 1},
			ROLE_BAT:  {Min: 3, Max: 5},
			ROLE_BOWL: {Min: 3, Max: 5},
			ROLE_AR:   {Min: 1, Max: 3},
		},
	}
}

// Roster is the in-progress team a user assembles for one match. It is owned
// by a single session and never shared, so none of the methods lock.
type Roster struct {
	MatchID       string
	Name          string
	Players       []Player
	CaptainID     string
	ViceCaptainID string
}

func (r *Roster) Selected(playerID string) bool {
	for _, p := range r.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

func (r *Roster) TotalCredits() float64 {
	var total float64
	for _, p := range r.Players {
		total += p.Credits
	}
	return total
}

func (r *Roster) RoleCount(role Role) int {
	count := 0
	for _, p := range r.Players {
		if p.Role == role {
			count++
		}
	}
	return count
}

func (r *Roster) SideCount(team string) int {
	count := 0
	for _, p := range r.Players {
		if p.Team == team {
			count++
		}
	}
	return count
}

// ToggleSelect removes the player if already selected, otherwise adds them.
// Removal always succeeds and clears the captain or vice-captain designation
// if it pointed at the removed player. Adds are rejected without mutating the
// roster when a single-step rule would be violated. Role minimums are only
// enforced at submission time since a mid-construction roster is allowed to
// be under them.
func (r *Roster) ToggleSelect(p Player, rules RosterRules) error {
	if r.Selected(p.ID) {
		r.remove(p.ID)
		return nil
	}

	if len(r.Players) >= rules.MaxPlayers {
		return ErrRosterFull
	}
	if r.TotalCredits()+p.Credits > rules.MaxCredits {
		return ErrCreditExceeded
	}
	if r.SideCount(p.Team)+1 > rules.MaxPerSide {
		return ErrSideImbalance
	}
	if limit, ok := rules.RoleLimits[p.Role]; ok && r.RoleCount(p.Role)+1 > limit.Max {
		return ErrRoleLimitExceeded
	}

	r.Players = append(r.Players, p)
	return nil
}

func (r *Roster) remove(playerID string) {
	for i, p := range r.Players {
		if p.ID == playerID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			break
		}
	}
	if r.CaptainID == playerID {
		r.CaptainID = ""
	}
	if r.ViceCaptainID == playerID {
		r.ViceCaptainID = ""
	}
}

// SetCaptain marks a selected player as captain. If the player is currently
// the vice-captain that slot is cleared, keeping the two disjoint.
func (r *Roster) SetCaptain(playerID string) error {
	if !r.Selected(playerID) {
		return ErrPlayerNotSelected
	}
	if r.ViceCaptainID == playerID {
		r.ViceCaptainID = ""
	}
	r.CaptainID = playerID
	return nil
}

func (r *Roster) SetViceCaptain(playerID string) error {
	if !r.Selected(playerID) {
		return ErrPlayerNotSelected
	}
	if r.CaptainID == playerID {
		r.CaptainID = ""
	}
	r.ViceCaptainID = playerID
	return nil
}

// Violation describes one rule a roster breaks. Rule is a stable identifier
// for programmatic handling, Message is suitable to show a user directly.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidateForSubmission checks every rule and returns all violations rather
// than stopping at the first. A user editing a roster wants to see the
// complete gap to a valid team at once.
func (r *Roster) ValidateForSubmission(rules RosterRules) []Violation {
	violations := make([]Violation, 0)

	if len(r.Players) != rules.MaxPlayers {
		violations = append(violations, Violation{
			Rule:    "roster_size",
			Message: fmt.Sprintf("team must have exactly %d players, has %d", rules.MaxPlayers, len(r.Players)),
		})
	}

	if total := r.TotalCredits(); total > rules.MaxCredits {
		violations = append(violations, Violation{
			Rule:    "credits",
			Message: fmt.Sprintf("team costs %.1f credits, the budget is %.1f", total, rules.MaxCredits),
		})
	}

	for _, role := range []Role{ROLE_WK, ROLE_BAT, ROLE_BOWL, ROLE_AR} {
		limit, ok := rules.RoleLimits[role]
		if !ok {
			continue
		}
		count := r.RoleCount(role)
		if count < limit.Min || count > limit.Max {
			violations = append(violations, Violation{
				Rule:    fmt.Sprintf("role_%s", strings.ToLower(string(role))),
				Message: fmt.Sprintf("need between %d and %d %s players, have %d", limit.Min, limit.Max, role.Friendly(), count),
			})
		}
	}

	for side, count := range r.sideCounts() {
		if count > rules.MaxPerSide {
			violations = append(violations, Violation{
				Rule:    "side_balance",
				Message: fmt.Sprintf("at most %d players allowed from %s, have %d", rules.MaxPerSide, side, count),
			})
		}
	}

	if r.CaptainID == "" {
		violations = append(violations, Violation{Rule: "captain", Message: "a captain must be selected"})
	}
	if r.ViceCaptainID == "" {
		violations = append(violations, Violation{Rule: "vice_captain", Message: "a vice-captain must be selected"})
	}
	if r.CaptainID != "" && r.CaptainID == r.ViceCaptainID {
		violations = append(violations, Violation{Rule: "captain_distinct", Message: "captain and vice-captain must be different players"})
	}

	return violations
}

func (r *Roster) sideCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range r.Players {
		counts[p.Team]++
	}
	return counts
}
