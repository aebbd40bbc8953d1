package controller

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/crickfan/fantasy_cricket/model"
)

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListPlayers(ctx)
}

func (c *controller) Search(ctx context.Context, query string) ([]model.Player, error) {
	q, role := getRoleFromQuery(query)
	q, team := getTeamFromQuery(q)

	if role == model.ROLE_UNKNOWN && team == "" && q == "" {
		return nil, fmt.Errorf("error not a valid query: '%s'", query)
	}
	return c.db.Search(ctx, q, role, team)
}

func (c *controller) UpdatePlayers(ctx context.Context) error {
	start := c.clock.Now()
	c.log.Info().Msg("update players starting")

	players, err := c.cricket.Players(ctx)
	if err != nil {
		return err
	}

	for _, p := range players {
		err := c.db.SavePlayer(ctx, &p)
		if err != nil {
			return fmt.Errorf("error saving player (%s): %w", p.Name, err)
		}
	}

	c.log.Info().Int("count", len(players)).Dur("took", c.clock.Now().Sub(start)).Msg("update players finished")
	return nil
}

func (c *controller) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := c.UpdatePlayers(ctx); err != nil {
				c.log.Error().Err(err).Msg("periodic player update failed")
			}
			cancel()
		}
	}
}

var roleRegex = regexp.MustCompile(`(?i)role\s*:\s*(?P<role>[\w-]+)`)

// Parse out the role from the query, returning the same query without the role.
// So if the query is "Kohli role:bat" this will return "Kohli" and model.ROLE_BAT.
// If the input query does not have a `role:` argument then the function will return
// the input string and model.ROLE_UNKNOWN.
func getRoleFromQuery(q string) (string, model.Role) {
	role := model.ROLE_UNKNOWN
	m := roleRegex.FindStringSubmatch(q)
	if m != nil {
		r := m[roleRegex.SubexpIndex("role")]
		role = model.ParseRole(r)
		q = strings.Replace(q, m[0], "", 1) // Remove the role match from the query
		q = strings.TrimSpace(q)            // Remove any remaining whitespace
	}

	return q, role
}

var teamRegex = regexp.MustCompile(`(?i)team\s*:\s*(?P<team>\w+)`)

// Parse out the team from the query, returning the same query without the team.
// So if the query is "Kohli team:India" this will return "Kohli" and "India".
// Sides are free-form text so no validation happens here, the db filter simply
// matches nothing for an unknown side.
func getTeamFromQuery(q string) (string, string) {
	team := ""
	m := teamRegex.FindStringSubmatch(q)
	if m != nil {
		team = m[teamRegex.SubexpIndex("team")]
		q = strings.Replace(q, m[0], "", 1) // Remove the team match from the query
		q = strings.TrimSpace(q)            // Remove any remaining whitespace
	}

	return q, team
}
