package mockcricket

import (
	"context"

	"github.com/crickfan/fantasy_cricket/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) CurrentMatches(ctx context.Context) ([]model.Match, error) {
	args := c.Called(ctx)

	var res []model.Match
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Match)
	}

	return res, args.Error(1)
}

func (c *Client) MatchSquad(ctx context.Context, matchID string) ([]model.Player, error) {
	args := c.Called(ctx, matchID)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *Client) MatchScorecard(ctx context.Context, matchID string) (*model.Scorecard, error) {
	args := c.Called(ctx, matchID)

	var res *model.Scorecard
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Scorecard)
	}

	return res, args.Error(1)
}

func (c *Client) Players(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}
