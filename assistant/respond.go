package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/crickfan/fantasy_cricket/model"
)

const systemPrompt = `You are a fantasy cricket assistant. Answer questions about live matches, squads, player form and fantasy team picks using only the data provided. Keep answers short and use plain lines, not tables. When suggesting a fantasy team, include lines starting with "Captain:" and "Vice-Captain:".`

const (
	maxPromptMatches = 3
	maxPromptSquad   = 10
)

// respond produces the textual answer for an intent. The LLM path is used
// when a client is configured; any error there falls back to the
// deterministic templates, so a query always gets some answer.
func (a *Assistant) respond(ctx context.Context, intent Intent, bundle *Bundle, queryText string) (string, []PlayerStat) {
	if a.llm != nil {
		text, err := a.llm.Complete(ctx, systemPrompt, buildUserPrompt(bundle, queryText))
		if err == nil && strings.TrimSpace(text) != "" {
			var picks []PlayerStat
			if intent.Type == QueryFantasyTeam {
				picks = a.extractor.Extract(text)
			}
			return text, picks
		}
		a.log.Warn().Err(err).Msg("llm call failed, using template response")
	}

	return a.templateResponse(intent, bundle), nil
}

func (a *Assistant) templateResponse(intent Intent, bundle *Bundle) string {
	switch intent.Type {
	case QuerySquadSearch:
		return squadSearchTemplate(bundle)
	case QueryFantasyTeam:
		return fantasyTeamTemplate(bundle)
	case QueryPlayerStats:
		return playerStatsTemplate(bundle)
	case QuerySquadInfo:
		return squadInfoTemplate(bundle)
	case QueryFantasyScores:
		return fantasyScoresTemplate(bundle)
	default:
		return currentMatchesTemplate(bundle)
	}
}

func currentMatchesTemplate(bundle *Bundle) string {
	if len(bundle.Matches) == 0 {
		return "No current match data is available right now. Please try again in a bit."
	}

	m := featuredMatch(bundle.Matches)
	var b strings.Builder
	if m.Live() {
		fmt.Fprintf(&b, "**%s** is live at %s.\n", m.Title(), m.Venue)
	} else {
		fmt.Fprintf(&b, "**%s** at %s.\n", m.Title(), m.Venue)
	}
	fmt.Fprintf(&b, "Status: %s\n", m.Status)
	for _, s := range m.Score {
		fmt.Fprintf(&b, "- %s\n", s.String())
	}
	return b.String()
}

// featuredMatch picks the match the current-matches answer leads with: the
// first live match, else the first upcoming one, else the first in the list.
// Feeds often list finished matches first, so a plain started-match scan
// would report an ended game over a live one.
func featuredMatch(matches []model.Match) *model.Match {
	for i := range matches {
		if matches[i].Live() {
			return &matches[i]
		}
	}
	for i := range matches {
		if !matches[i].MatchStarted {
			return &matches[i]
		}
	}
	if len(matches) > 0 {
		return &matches[0]
	}
	return nil
}

func squadSearchTemplate(bundle *Bundle) string {
	if len(bundle.SearchResults) == 0 {
		return "I could not find that player in the current squads."
	}

	var b strings.Builder
	b.WriteString("Here is what I found:\n")
	for i, p := range bundle.SearchResults {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "- %s (%s, %s)\n", p.Name, p.Role.Friendly(), p.Country)
	}
	return b.String()
}

// fantasyTeamTemplate is advisory boilerplate, not an optimizer. It names
// picks straight from the squad listing order when a squad is available.
func fantasyTeamTemplate(bundle *Bundle) string {
	var b strings.Builder
	if m := primaryMatch(bundle.Matches); m != nil {
		fmt.Fprintf(&b, "Fantasy team suggestion for **%s**:\n", m.Title())
	} else {
		b.WriteString("Fantasy team suggestion:\n")
	}

	captain, vice := suggestLeaders(bundle.Squad)
	fmt.Fprintf(&b, "Captain: %s\n", captain)
	fmt.Fprintf(&b, "Vice-Captain: %s\n", vice)
	b.WriteString("Team balance: 1 wicket-keeper, 4 batsmen, 2 all-rounders, 4 bowlers.\n")
	b.WriteString("Stay under 100 credits and keep at most 7 players from one side.\n")
	return b.String()
}

func suggestLeaders(squad []model.Player) (string, string) {
	captain := "a top-order batsman in form"
	vice := "a frontline all-rounder"
	if len(squad) == 0 {
		return captain, vice
	}

	for _, p := range squad {
		if p.Role == model.ROLE_BAT {
			captain = p.Name
			break
		}
	}
	for _, p := range squad {
		if p.Role == model.ROLE_AR && p.Name != captain {
			vice = p.Name
			break
		}
	}
	return captain, vice
}

func playerStatsTemplate(bundle *Bundle) string {
	if bundle.Scorecard == nil || len(bundle.Scorecard.Innings) == 0 {
		return "No recent scorecard data is available for that player."
	}

	in := bundle.Scorecard.Innings[0]
	var b strings.Builder
	fmt.Fprintf(&b, "From the latest innings (%s):\n", in.Name)
	for i, bat := range in.Batting {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "- %s: %d (%d balls, SR %.1f)\n", bat.Player, bat.Runs, bat.Balls, bat.StrikeRate)
	}
	for i, bowl := range in.Bowling {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "- %s: %d/%d (%.1f ov, econ %.2f)\n", bowl.Player, bowl.Wickets, bowl.Runs, bowl.Overs, bowl.Economy)
	}
	return b.String()
}

func squadInfoTemplate(bundle *Bundle) string {
	if len(bundle.Squad) == 0 {
		return "No squad information is available for the current match."
	}

	var b strings.Builder
	b.WriteString("Squad:\n")
	bySide := make(map[string][]model.Player)
	order := make([]string, 0, 2)
	for _, p := range bundle.Squad {
		if _, seen := bySide[p.Team]; !seen {
			order = append(order, p.Team)
		}
		bySide[p.Team] = append(bySide[p.Team], p)
	}
	for _, side := range order {
		fmt.Fprintf(&b, "%s:\n", side)
		for _, p := range bySide[side] {
			fmt.Fprintf(&b, "- %s (%s)\n", p.Name, p.Role.Friendly())
		}
	}
	return b.String()
}

func fantasyScoresTemplate(bundle *Bundle) string {
	if bundle.Scorecard == nil || len(bundle.Scorecard.Innings) == 0 {
		return "No completed match data is available for a points breakdown."
	}

	var b strings.Builder
	b.WriteString("Latest match breakdown:\n")
	for _, in := range bundle.Scorecard.Innings {
		fmt.Fprintf(&b, "%s:\n", in.Name)
		for i, bat := range in.Batting {
			if i == 2 {
				break
			}
			fmt.Fprintf(&b, "- %s scored %d off %d\n", bat.Player, bat.Runs, bat.Balls)
		}
	}
	return b.String()
}

// buildUserPrompt serializes a truncated view of the bundle so the model
// answers from real data instead of inventing scores.
func buildUserPrompt(bundle *Bundle, queryText string) string {
	var b strings.Builder

	if len(bundle.Matches) > 0 {
		b.WriteString("Current matches:\n")
		for i, m := range bundle.Matches {
			if i == maxPromptMatches {
				break
			}
			fmt.Fprintf(&b, "- %s at %s (%s)\n", m.Title(), m.Venue, m.Status)
			for _, s := range m.Score {
				fmt.Fprintf(&b, "  %s\n", s.String())
			}
		}
	}

	if len(bundle.Squad) > 0 {
		b.WriteString("Squad:\n")
		for i, p := range bundle.Squad {
			if i == maxPromptSquad {
				break
			}
			fmt.Fprintf(&b, "- %s, %s, %s\n", p.Name, p.Role.Friendly(), p.Team)
		}
	}

	if bundle.Scorecard != nil && len(bundle.Scorecard.Innings) > 0 {
		in := bundle.Scorecard.Innings[0]
		fmt.Fprintf(&b, "Latest innings (%s):\n", in.Name)
		for i, bat := range in.Batting {
			if i == 5 {
				break
			}
			fmt.Fprintf(&b, "- %s %d (%d)\n", bat.Player, bat.Runs, bat.Balls)
		}
	}

	if b.Len() == 0 {
		b.WriteString("No upstream data is available.\n")
	}

	fmt.Fprintf(&b, "\nQuestion: %s", queryText)
	return b.String()
}

// PickExtractor pulls captain and vice-captain picks out of free-form LLM
// text. It sits behind an interface so the regex version can be swapped for
// a structured-output call without touching the response flow.
type PickExtractor interface {
	Extract(text string) []PlayerStat
}

type regexPickExtractor struct{}

var (
	captainRegex     = regexp.MustCompile(`(?im)^\**captain\**\s*:\s*(.+)$`)
	viceCaptainRegex = regexp.MustCompile(`(?im)^\**vice[- ]captain\**\s*:\s*(.+)$`)
)

// Extract is best-effort: absent lines are not an error, they just produce
// no picks.
func (regexPickExtractor) Extract(text string) []PlayerStat {
	picks := make([]PlayerStat, 0, 2)
	if m := captainRegex.FindStringSubmatch(text); m != nil {
		picks = append(picks, PlayerStat{Name: strings.Trim(m[1], " *"), Role: "Captain", Details: "suggested captain"})
	}
	if m := viceCaptainRegex.FindStringSubmatch(text); m != nil {
		picks = append(picks, PlayerStat{Name: strings.Trim(m[1], " *"), Role: "Vice-Captain", Details: "suggested vice-captain"})
	}
	return picks
}
