package model

import (
	"errors"
	"fmt"
	"testing"
)

func testPlayer(id string, team string, role Role, credits float64) Player {
	return Player{
		ID:      id,
		Name:    fmt.Sprintf("Player %s", id),
		Team:    team,
		Role:    role,
		Credits: credits,
	}
}

// validRoster builds an 11 player roster that satisfies DefaultRules():
// 1 WK, 4 BAT, 4 BOWL, 2 AR split 6/5 across sides, 88.0 credits.
func validRoster(t *testing.T) *Roster {
	t.Helper()

	rules := DefaultRules()
	r := &Roster{MatchID: "m1"}

	players := []Player{
		testPlayer("wk1", "IND", ROLE_WK, 9),
		testPlayer("bat1", "IND", ROLE_BAT, 10),
		testPlayer("bat2", "IND", ROLE_BAT, 9),
		testPlayer("bat3", "AUS", ROLE_BAT, 8),
		testPlayer("bat4", "AUS", ROLE_BAT, 8),
		testPlayer("bowl1", "IND", ROLE_BOWL, 8),
		testPlayer("bowl2", "IND", ROLE_BOWL, 7),
		testPlayer("bowl3", "AUS", ROLE_BOWL, 7),
		testPlayer("bowl4", "AUS", ROLE_BOWL, 7),
		testPlayer("ar1", "IND", ROLE_AR, 8),
		testPlayer("ar2", "AUS", ROLE_AR, 7),
	}
	for _, p := range players {
		if err := r.ToggleSelect(p, rules); err != nil {
			t.Fatalf("error building valid roster at %s: %v", p.ID, err)
		}
	}

	if err := r.SetCaptain("bat1"); err != nil {
		t.Fatalf("error setting captain: %v", err)
	}
	if err := r.SetViceCaptain("bowl1"); err != nil {
		t.Fatalf("error setting vice-captain: %v", err)
	}
	return r
}

func TestToggleSelectAddAndRemove(t *testing.T) {
	rules := DefaultRules()
	r := &Roster{}
	p := testPlayer("p1", "IND", ROLE_BAT, 9)

	if err := r.ToggleSelect(p, rules); err != nil {
		t.Fatalf("unexpected error adding player: %v", err)
	}
	if !r.Selected("p1") {
		t.Errorf("player should be selected after first toggle")
	}
	if got := r.TotalCredits(); got != 9 {
		t.Errorf("total credits wanted 9, got %.1f", got)
	}

	if err := r.ToggleSelect(p, rules); err != nil {
		t.Fatalf("unexpected error removing player: %v", err)
	}
	if r.Selected("p1") {
		t.Errorf("player should be removed after second toggle")
	}
	if got := r.TotalCredits(); got != 0 {
		t.Errorf("total credits wanted 0 after removal, got %.1f", got)
	}
}

func TestToggleSelectRosterFull(t *testing.T) {
	r := validRoster(t)
	before := len(r.Players)

	err := r.ToggleSelect(testPlayer("extra", "IND", ROLE_BAT, 1), DefaultRules())
	if !errors.Is(err, ErrRosterFull) {
		t.Errorf("expected ErrRosterFull, got: %v", err)
	}
	if len(r.Players) != before {
		t.Errorf("roster changed on rejected add")
	}
}

func TestToggleSelectCreditExceeded(t *testing.T) {
	rules := DefaultRules()
	r := &Roster{}
	for i := 0; i < 9; i++ {
		p := testPlayer(fmt.Sprintf("p%d", i), "IND", ROLE_BAT, 10.5)
		// Ignore role limit rejections, credits are what we are loading up
		r.Players = append(r.Players, p)
	}
	// 94.5 credits used, 5.5 remain

	err := r.ToggleSelect(testPlayer("big", "AUS", ROLE_BOWL, 6), rules)
	if !errors.Is(err, ErrCreditExceeded) {
		t.Errorf("expected ErrCreditExceeded, got: %v", err)
	}
	if r.Selected("big") {
		t.Errorf("roster changed on rejected add")
	}

	// A cheaper player still fits
	if err := r.ToggleSelect(testPlayer("cheap", "AUS", ROLE_BOWL, 5), rules); err != nil {
		t.Errorf("unexpected error adding affordable player: %v", err)
	}
}

func TestToggleSelectSideImbalance(t *testing.T) {
	rules := DefaultRules()
	r := &Roster{}
	sides := []struct {
		id   string
		role Role
	}{
		{"a1", ROLE_BAT}, {"a2", ROLE_BAT}, {"a3", ROLE_BAT},
		{"a4", ROLE_BOWL}, {"a5", ROLE_BOWL}, {"a6", ROLE_BOWL},
		{"a7", ROLE_AR},
	}
	for _, s := range sides {
		if err := r.ToggleSelect(testPlayer(s.id, "IND", s.role, 5), rules); err != nil {
			t.Fatalf("error adding %s: %v", s.id, err)
		}
	}

	err := r.ToggleSelect(testPlayer("a8", "IND", ROLE_WK, 5), rules)
	if !errors.Is(err, ErrSideImbalance) {
		t.Errorf("expected ErrSideImbalance, got: %v", err)
	}

	// The other side is unaffected
	if err := r.ToggleSelect(testPlayer("b1", "AUS", ROLE_WK, 5), rules); err != nil {
		t.Errorf("unexpected error adding player from other side: %v", err)
	}
}

func TestToggleSelectRoleLimit(t *testing.T) {
	rules := DefaultRules()
	r := &Roster{}
	if err := r.ToggleSelect(testPlayer("wk1", "IND", ROLE_WK, 9), rules); err != nil {
		t.Fatalf("error adding first keeper: %v", err)
	}

	err := r.ToggleSelect(testPlayer("wk2", "AUS", ROLE_WK, 8), rules)
	if !errors.Is(err, ErrRoleLimitExceeded) {
		t.Errorf("expected ErrRoleLimitExceeded, got: %v", err)
	}
}

func TestRemoveClearsCaptain(t *testing.T) {
	r := validRoster(t)

	// Removing the captain clears only the captain slot
	if err := r.ToggleSelect(testPlayer("bat1", "IND", ROLE_BAT, 10), DefaultRules()); err != nil {
		t.Fatalf("unexpected error removing captain: %v", err)
	}
	if r.CaptainID != "" {
		t.Errorf("captain slot not cleared, got: '%s'", r.CaptainID)
	}
	if r.ViceCaptainID != "bowl1" {
		t.Errorf("vice-captain slot should be unaffected, got: '%s'", r.ViceCaptainID)
	}
}

func TestSetCaptainRules(t *testing.T) {
	r := validRoster(t)

	if err := r.SetCaptain("nobody"); !errors.Is(err, ErrPlayerNotSelected) {
		t.Errorf("expected ErrPlayerNotSelected, got: %v", err)
	}

	// Promoting the vice-captain to captain clears the vice-captain slot
	if err := r.SetCaptain("bowl1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.CaptainID != "bowl1" {
		t.Errorf("captain wanted 'bowl1', got: '%s'", r.CaptainID)
	}
	if r.ViceCaptainID != "" {
		t.Errorf("vice-captain should be cleared, got: '%s'", r.ViceCaptainID)
	}

	// And symmetrically for the vice-captain
	if err := r.SetViceCaptain("bowl1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.CaptainID != "" {
		t.Errorf("captain should be cleared, got: '%s'", r.CaptainID)
	}
}

func TestValidateForSubmissionClean(t *testing.T) {
	r := validRoster(t)
	violations := r.ValidateForSubmission(DefaultRules())
	if len(violations) != 0 {
		t.Errorf("expected no violations, got: %v", violations)
	}
}

func TestValidateForSubmissionReportsAll(t *testing.T) {
	r := &Roster{} // empty roster breaks nearly everything
	violations := r.ValidateForSubmission(DefaultRules())

	found := make(map[string]bool)
	for _, v := range violations {
		found[v.Rule] = true
	}

	for _, rule := range []string{"roster_size", "role_wk", "role_bat", "role_bowl", "role_ar", "captain", "vice_captain"} {
		if !found[rule] {
			t.Errorf("expected violation of '%s', got: %v", rule, violations)
		}
	}
}

func TestValidateForSubmissionTwoKeepers(t *testing.T) {
	r := validRoster(t)
	// Swap a batsman for a second keeper directly; ToggleSelect would refuse.
	for i, p := range r.Players {
		if p.ID == "bat4" {
			r.Players[i] = testPlayer("wk2", "AUS", ROLE_WK, 8)
		}
	}

	// Batsman count drops to 3 which is still legal, so the keeper count is
	// the only rule broken.
	violations := r.ValidateForSubmission(DefaultRules())
	if len(violations) != 1 || violations[0].Rule != "role_wk" {
		t.Errorf("expected a single role_wk violation, got: %v", violations)
	}
}

func TestValidateForSubmissionCaptainDistinct(t *testing.T) {
	r := validRoster(t)
	r.ViceCaptainID = r.CaptainID

	violations := r.ValidateForSubmission(DefaultRules())
	if len(violations) != 1 || violations[0].Rule != "captain_distinct" {
		t.Errorf("expected a single captain_distinct violation, got: %v", violations)
	}
}

func TestTotalCreditsTracksMutations(t *testing.T) {
	rules := DefaultRules()
	r := &Roster{}
	players := []Player{
		testPlayer("p1", "IND", ROLE_BAT, 9.5),
		testPlayer("p2", "AUS", ROLE_BOWL, 8.5),
		testPlayer("p3", "IND", ROLE_AR, 7),
	}

	var want float64
	for _, p := range players {
		if err := r.ToggleSelect(p, rules); err != nil {
			t.Fatalf("error adding %s: %v", p.ID, err)
		}
		want += p.Credits
		if got := r.TotalCredits(); got != want {
			t.Errorf("after adding %s wanted %.1f credits, got %.1f", p.ID, want, got)
		}
	}

	if err := r.ToggleSelect(players[1], rules); err != nil {
		t.Fatalf("error removing p2: %v", err)
	}
	want -= players[1].Credits
	if got := r.TotalCredits(); got != want {
		t.Errorf("after removing p2 wanted %.1f credits, got %.1f", want, got)
	}
}
