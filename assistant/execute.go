package assistant

import (
	"context"
	"strings"

	"github.com/crickfan/fantasy_cricket/model"
	"golang.org/x/sync/errgroup"
)

// Bundle aggregates the upstream data for one query. Failed or absent
// fetches leave their field empty, so a Bundle is always structurally valid,
// just potentially sparse.
type Bundle struct {
	Matches       []model.Match
	Squad         []model.Player
	Scorecard     *model.Scorecard
	Catalog       []model.Player
	SearchResults []model.Player
}

// execute runs an intent's endpoint plan. Fetches that do not depend on each
// other are issued concurrently; squad and scorecard calls wait for the match
// list because they are keyed by the primary match's id. Every upstream
// failure degrades to empty data with a warning; there are no retries since
// the upstream is a free best-effort API and staleness is acceptable here.
func (a *Assistant) execute(ctx context.Context, intent Intent, queryText string) *Bundle {
	bundle := &Bundle{}

	g, gctx := errgroup.WithContext(ctx)
	if intent.needs(EndpointMatches) {
		g.Go(func() error {
			matches, err := a.cricket.CurrentMatches(gctx)
			if err != nil {
				a.log.Warn().Err(err).Msg("current matches fetch failed")
				return nil
			}
			bundle.Matches = matches
			return nil
		})
	}
	if intent.needs(EndpointPlayers) {
		g.Go(func() error {
			catalog, err := a.cricket.Players(gctx)
			if err != nil {
				a.log.Warn().Err(err).Msg("player catalog fetch failed")
				return nil
			}
			bundle.Catalog = catalog
			return nil
		})
	}
	_ = g.Wait()

	if intent.needs(EndpointSquad) || intent.needs(EndpointScorecard) {
		primary := primaryMatch(bundle.Matches)
		if primary == nil {
			a.log.Warn().Str("queryType", string(intent.Type)).Msg("no primary match available for chained fetch")
		} else {
			g, gctx := errgroup.WithContext(ctx)
			if intent.needs(EndpointSquad) {
				g.Go(func() error {
					squad, err := a.cricket.MatchSquad(gctx, primary.ID)
					if err != nil {
						a.log.Warn().Err(err).Str("matchID", primary.ID).Msg("squad fetch failed")
						return nil
					}
					bundle.Squad = squad
					return nil
				})
			}
			if intent.needs(EndpointScorecard) {
				g.Go(func() error {
					scorecard, err := a.cricket.MatchScorecard(gctx, primary.ID)
					if err != nil {
						a.log.Warn().Err(err).Str("matchID", primary.ID).Msg("scorecard fetch failed")
						return nil
					}
					bundle.Scorecard = scorecard
					return nil
				})
			}
			_ = g.Wait()
		}
	}

	if intent.Type == QuerySquadSearch {
		bundle.SearchResults = searchCatalog(bundle.Catalog, candidateName(queryText))
	}

	return bundle
}

// primaryMatch picks the match that chained calls are scoped to: the first
// live or started match, else the first match in the list.
func primaryMatch(matches []model.Match) *model.Match {
	for i := range matches {
		if matches[i].MatchStarted {
			return &matches[i]
		}
	}
	if len(matches) > 0 {
		return &matches[0]
	}
	return nil
}

// candidateName extracts the player name being asked about. A recognized
// known name wins, then the token after "is", then the token before "in".
func candidateName(queryText string) string {
	if name, ok := knownPlayerIn(queryText); ok {
		return name
	}

	tokens := strings.Fields(strings.ToLower(queryText))
	for i, tok := range tokens {
		if tok == "is" && i+1 < len(tokens) {
			return strings.Trim(tokens[i+1], "?.,!'\"")
		}
	}
	for i, tok := range tokens {
		if tok == "in" && i > 0 {
			return strings.Trim(tokens[i-1], "?.,!'\"")
		}
	}
	return ""
}

func searchCatalog(catalog []model.Player, name string) []model.Player {
	if name == "" {
		return nil
	}
	name = strings.ToLower(name)

	results := make([]model.Player, 0, 5)
	for _, p := range catalog {
		if strings.Contains(strings.ToLower(p.Name), name) {
			results = append(results, p)
		}
	}
	return results
}
