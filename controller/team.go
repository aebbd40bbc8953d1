package controller

import (
	"context"
	"fmt"

	"github.com/crickfan/fantasy_cricket/model"
)

// SubmitTeam validates the roster and, only when every rule passes, persists it
// as a team in a single transaction. Violations are data, not an error: the
// caller gets them back to show to the user.
func (c *controller) SubmitTeam(ctx context.Context, roster *model.Roster) (*model.Team, []model.Violation, error) {
	violations := roster.ValidateForSubmission(c.rules)
	if len(violations) > 0 {
		return nil, violations, nil
	}

	team := &model.Team{
		Name:          roster.Name,
		MatchID:       roster.MatchID,
		CaptainID:     roster.CaptainID,
		ViceCaptainID: roster.ViceCaptainID,
		TotalCredits:  roster.TotalCredits(),
		Players:       roster.Players,
	}
	if err := c.db.CreateTeam(ctx, team); err != nil {
		return nil, nil, fmt.Errorf("error saving team: %w", err)
	}

	c.log.Info().Int32("teamID", team.ID).Str("matchID", team.MatchID).Msg("team submitted")
	return team, nil, nil
}

func (c *controller) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	return c.db.GetTeam(ctx, id)
}

func (c *controller) ListTeams(ctx context.Context) ([]model.Team, error) {
	return c.db.ListTeams(ctx)
}
