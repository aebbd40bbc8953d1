package db

import (
	"context"

	"github.com/crickfan/fantasy_cricket/model"
)

type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	ListPlayers(ctx context.Context) ([]model.Player, error)
	Search(ctx context.Context, query string, role model.Role, team string) ([]model.Player, error)

	// CreateTeam persists the team and its player memberships in a single
	// transaction and fills in the generated team ID. A team row is never
	// left behind without its players.
	CreateTeam(ctx context.Context, t *model.Team) error
	GetTeam(ctx context.Context, id int32) (*model.Team, error)
	// ListTeams returns team metadata only; player lists are loaded with
	// GetTeam().
	ListTeams(ctx context.Context) ([]model.Team, error)

	ListContests(ctx context.Context) ([]model.Contest, error)
	GetContest(ctx context.Context, id int32) (*model.Contest, error)
	AddContestEntry(ctx context.Context, contestID, teamID int32) error
}
