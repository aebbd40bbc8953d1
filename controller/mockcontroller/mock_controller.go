package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/crickfan/fantasy_cricket/assistant"
	"github.com/crickfan/fantasy_cricket/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (c *C) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) Search(ctx context.Context, query string) ([]model.Player, error) {
	args := c.Called(ctx, query)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) SubmitTeam(ctx context.Context, roster *model.Roster) (*model.Team, []model.Violation, error) {
	args := c.Called(ctx, roster)

	var team *model.Team
	if args.Get(0) != nil {
		team = args.Get(0).(*model.Team)
	}
	var violations []model.Violation
	if args.Get(1) != nil {
		violations = args.Get(1).([]model.Violation)
	}

	return team, violations, args.Error(2)
}

func (c *C) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	args := c.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}

	return t, args.Error(1)
}

func (c *C) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *C) ListContests(ctx context.Context) ([]model.Contest, error) {
	args := c.Called(ctx)

	var res []model.Contest
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Contest)
	}

	return res, args.Error(1)
}

func (c *C) GetContest(ctx context.Context, id int32) (*model.Contest, error) {
	args := c.Called(ctx, id)

	var res *model.Contest
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Contest)
	}

	return res, args.Error(1)
}

func (c *C) JoinContest(ctx context.Context, contestID, teamID int32) error {
	args := c.Called(ctx, contestID, teamID)
	return args.Error(0)
}

func (c *C) Ask(ctx context.Context, query string) (*assistant.Answer, error) {
	args := c.Called(ctx, query)

	var res *assistant.Answer
	if args.Get(0) != nil {
		res = args.Get(0).(*assistant.Answer)
	}

	return res, args.Error(1)
}
