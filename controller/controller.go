package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/crickfan/fantasy_cricket/assistant"
	"github.com/crickfan/fantasy_cricket/db"
	"github.com/crickfan/fantasy_cricket/model"
	"github.com/crickfan/fantasy_cricket/platforms/cricketdata"
	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	Search(ctx context.Context, query string) ([]model.Player, error)
	// Refresh the player catalog from the cricket data platform.
	UpdatePlayers(ctx context.Context) error
	RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	// Validate a roster against the composition rules and save it when clean.
	// When the roster is invalid the violations are returned and nothing is saved.
	SubmitTeam(ctx context.Context, roster *model.Roster) (*model.Team, []model.Violation, error)
	GetTeam(ctx context.Context, id int32) (*model.Team, error)
	ListTeams(ctx context.Context) ([]model.Team, error)

	ListContests(ctx context.Context) ([]model.Contest, error)
	GetContest(ctx context.Context, id int32) (*model.Contest, error)
	JoinContest(ctx context.Context, contestID, teamID int32) error

	// Answer a free-form question about matches, squads, and fantasy picks.
	Ask(ctx context.Context, query string) (*assistant.Answer, error)
}

type controller struct {
	clock     clock.Clock
	cricket   cricketdata.Client
	db        db.DB
	assistant *assistant.Assistant
	rules     model.RosterRules
	log       zerolog.Logger
}

func New(clock clock.Clock, cricket cricketdata.Client, db db.DB, assistant *assistant.Assistant, rules model.RosterRules, log zerolog.Logger) (C, error) {
	c := &controller{
		clock:     clock,
		cricket:   cricket,
		db:        db,
		assistant: assistant,
		rules:     rules,
		log:       log,
	}
	return c, nil
}

func (c *controller) Ask(ctx context.Context, query string) (*assistant.Answer, error) {
	if c.assistant == nil {
		return nil, errors.New("assistant is not configured")
	}
	return c.assistant.Answer(ctx, query), nil
}
