package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/crickfan/fantasy_cricket/model"
)

// ErrMatchMismatch is returned when a team is entered into a contest for a
// different match.
var ErrMatchMismatch = errors.New("team and contest are for different matches")

func (c *controller) ListContests(ctx context.Context) ([]model.Contest, error) {
	return c.db.ListContests(ctx)
}

func (c *controller) GetContest(ctx context.Context, id int32) (*model.Contest, error) {
	return c.db.GetContest(ctx, id)
}

func (c *controller) JoinContest(ctx context.Context, contestID, teamID int32) error {
	// Make sure both sides exist so the caller gets a useful error instead
	// of a foreign key violation.
	contest, err := c.db.GetContest(ctx, contestID)
	if err != nil {
		return err
	}
	team, err := c.db.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if contest.MatchID != team.MatchID {
		return fmt.Errorf("team %d is for match %s, not %s: %w", teamID, team.MatchID, contest.MatchID, ErrMatchMismatch)
	}

	return c.db.AddContestEntry(ctx, contestID, teamID)
}
