// Package assistant answers free-text cricket questions. A query is
// classified into an intent, the intent's endpoint plan is executed against
// the cricket data API, and the result is rendered either by a template or
// by a language model when one is configured.
package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/crickfan/fantasy_cricket/model"
	"github.com/crickfan/fantasy_cricket/platforms/cricketdata"
	"github.com/crickfan/fantasy_cricket/platforms/llm"
	"github.com/rs/zerolog"
)

type Assistant struct {
	cricket   cricketdata.Client
	llm       llm.Client // nil when no key is configured
	extractor PickExtractor
	log       zerolog.Logger
}

func New(cricket cricketdata.Client, llmClient llm.Client, log zerolog.Logger) (*Assistant, error) {
	if cricket == nil {
		return nil, errors.New("assistant requires a cricket data client")
	}
	return &Assistant{
		cricket:   cricket,
		llm:       llmClient,
		extractor: regexPickExtractor{},
		log:       log,
	}, nil
}

// PlayerStat is one structured line in an answer, e.g. a suggested captain.
type PlayerStat struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Details string `json:"details"`
}

type Answer struct {
	Message     string        `json:"message"`
	CricketData []model.Match `json:"cricketData"`
	PlayerStats []PlayerStat  `json:"playerStats,omitempty"`
	HasData     bool          `json:"hasData"`
}

// Answer runs the full classify, fetch, respond pipeline for one query. It
// never fails outright: upstream and LLM errors degrade to sparser data and
// template text.
func (a *Assistant) Answer(ctx context.Context, queryText string) *Answer {
	intent := Classify(queryText)
	a.log.Info().
		Str("queryType", string(intent.Type)).
		Bool("chained", intent.RequiresChaining).
		Msg("classified query")

	bundle := a.execute(ctx, intent, queryText)
	message, picks := a.respond(ctx, intent, bundle, queryText)
	if strings.TrimSpace(message) == "" {
		message = "I could not put together an answer for that, please try rephrasing."
	}

	return &Answer{
		Message:     message,
		CricketData: bundle.Matches,
		PlayerStats: picks,
		HasData:     bundle.hasData(),
	}
}

func (b *Bundle) hasData() bool {
	return len(b.Matches) > 0 ||
		len(b.Squad) > 0 ||
		len(b.Catalog) > 0 ||
		len(b.SearchResults) > 0 ||
		(b.Scorecard != nil && len(b.Scorecard.Innings) > 0)
}
