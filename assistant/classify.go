package assistant

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type QueryType string

const (
	QuerySquadSearch   QueryType = "squad_search"
	QueryCurrentMatch  QueryType = "current_matches"
	QueryFantasyTeam   QueryType = "fantasy_team"
	QueryPlayerStats   QueryType = "player_stats"
	QuerySquadInfo     QueryType = "squad_info"
	QueryFantasyScores QueryType = "fantasy_scores"
	QueryGeneral       QueryType = "general"
)

type Endpoint string

const (
	EndpointMatches   Endpoint = "currentMatches"
	EndpointSquad     Endpoint = "match_squad"
	EndpointScorecard Endpoint = "match_scorecard"
	EndpointPlayers   Endpoint = "players"
)

// Intent is the classification result for one query: what the user wants,
// which upstream endpoints to consult, and whether later calls depend on the
// result of earlier ones.
type Intent struct {
	Type             QueryType
	Endpoints        []Endpoint
	Description      string
	RequiresChaining bool
}

func (i Intent) needs(e Endpoint) bool {
	for _, ep := range i.Endpoints {
		if ep == e {
			return true
		}
	}
	return false
}

// rule pairs a predicate with an intent builder. Rules are evaluated in
// order and the first match wins, which is the tie-break for queries that
// mention keywords from more than one category.
type rule struct {
	matches func(q string) bool
	build   func() Intent
}

// knownPlayers is a short list of prominent names used for recognizing
// player-centric queries. Substring hits win; fuzzy matching covers typos.
var knownPlayers = []string{
	"rohit sharma",
	"virat kohli",
	"ms dhoni",
	"jasprit bumrah",
	"kl rahul",
	"hardik pandya",
	"ravindra jadeja",
	"shubman gill",
	"suryakumar yadav",
	"rishabh pant",
	"babar azam",
	"david warner",
	"steve smith",
	"glenn maxwell",
	"pat cummins",
	"ben stokes",
	"joe root",
	"jos buttler",
	"kane williamson",
	"rashid khan",
}

// knownPlayerIn returns the first recognized player name in the query.
func knownPlayerIn(q string) (string, bool) {
	q = strings.ToLower(q)
	for _, name := range knownPlayers {
		if strings.Contains(q, name) {
			return name, true
		}
	}

	// Check token bigrams against the list to catch misspellings like
	// "rohit sharme".
	tokens := strings.Fields(q)
	for i := 0; i+1 < len(tokens); i++ {
		bigram := strings.Trim(tokens[i]+" "+tokens[i+1], "?.,!'\"")
		ranks := fuzzy.RankFindFold(bigram, knownPlayers)
		for _, r := range ranks {
			if r.Distance >= 0 && r.Distance <= 2 {
				return r.Target, true
			}
		}
	}

	return "", false
}

func hasAny(q string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}

func hasFantasyTeamWords(q string) bool {
	return hasAny(q, "suggest", "fantasy team", "captain", "vice captain", "vice-captain", "pick", "recommend")
}

// classifierRules is the priority-ordered keyword table. The overlap between
// categories is significant, so the order is load-bearing: a player-name
// squad check outranks "today", and team-building words outrank liveness
// words.
var classifierRules = []rule{
	{
		// "Is Rohit Sharma in the squad for today's match?"
		matches: func(q string) bool {
			_, named := knownPlayerIn(q)
			return named && hasAny(q, "squad", "selected", "playing", " in ")
		},
		build: func() Intent {
			return Intent{
				Type:        QuerySquadSearch,
				Endpoints:   []Endpoint{EndpointPlayers},
				Description: "look up whether a player is in a squad",
			}
		},
	},
	{
		// Liveness questions. Team-building words are excluded here because
		// "a fantasy team for today's match" is about the team, not the
		// schedule.
		matches: func(q string) bool {
			return hasAny(q, "today", "now", "live", "happening", "matches") && !hasFantasyTeamWords(q)
		},
		build: func() Intent {
			return Intent{
				Type:        QueryCurrentMatch,
				Endpoints:   []Endpoint{EndpointMatches},
				Description: "list the matches being played now",
			}
		},
	},
	{
		matches: hasFantasyTeamWords,
		build: func() Intent {
			return Intent{
				Type:             QueryFantasyTeam,
				Endpoints:        []Endpoint{EndpointMatches, EndpointSquad, EndpointScorecard},
				Description:      "suggest a fantasy team for the primary match",
				RequiresChaining: true,
			}
		},
	},
	{
		matches: func(q string) bool {
			if hasAny(q, "perform", "stats", "points", "last match") {
				return true
			}
			_, named := knownPlayerIn(q)
			return named
		},
		build: func() Intent {
			return Intent{
				Type:             QueryPlayerStats,
				Endpoints:        []Endpoint{EndpointMatches, EndpointScorecard, EndpointPlayers},
				Description:      "report how a player has been performing",
				RequiresChaining: true,
			}
		},
	},
	{
		matches: func(q string) bool {
			return hasAny(q, "squad", "team players", "who are", "players in")
		},
		build: func() Intent {
			return Intent{
				Type:             QuerySquadInfo,
				Endpoints:        []Endpoint{EndpointMatches, EndpointSquad, EndpointPlayers},
				Description:      "list the squad for the primary match",
				RequiresChaining: true,
			}
		},
	},
	{
		matches: func(q string) bool {
			return hasAny(q, "fantasy score", "points breakdown", "yesterday", "last game")
		},
		build: func() Intent {
			return Intent{
				Type:             QueryFantasyScores,
				Endpoints:        []Endpoint{EndpointMatches, EndpointScorecard},
				Description:      "report fantasy scores for a recent match",
				RequiresChaining: true,
			}
		},
	},
}

var generalIntent = Intent{
	Type:        QueryGeneral,
	Endpoints:   []Endpoint{EndpointMatches},
	Description: "general cricket question",
}

// Classify maps free-form query text to an Intent. It is stateless and pure:
// keyword matching in fixed priority order, defaulting to a general intent.
func Classify(queryText string) Intent {
	q := strings.ToLower(strings.TrimSpace(queryText))
	for _, r := range classifierRules {
		if r.matches(q) {
			return r.build()
		}
	}
	return generalIntent
}
