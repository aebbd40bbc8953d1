package mockdb

import (
	"context"

	"github.com/crickfan/fantasy_cricket/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) Search(ctx context.Context, query string, role model.Role, team string) ([]model.Player, error) {
	args := db.Called(ctx, query, role, team)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) CreateTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) ListContests(ctx context.Context) ([]model.Contest, error) {
	args := db.Called(ctx)

	var r []model.Contest
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Contest)
	}
	return r, args.Error(1)
}

func (db *DB) GetContest(ctx context.Context, id int32) (*model.Contest, error) {
	args := db.Called(ctx, id)

	var c *model.Contest
	if args.Get(0) != nil {
		c = args.Get(0).(*model.Contest)
	}
	return c, args.Error(1)
}

func (db *DB) AddContestEntry(ctx context.Context, contestID, teamID int32) error {
	args := db.Called(ctx, contestID, teamID)
	return args.Error(0)
}
