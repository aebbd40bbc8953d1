package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/crickfan/fantasy_cricket/model"
	"github.com/rs/zerolog"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.response, s.err
}

func TestCurrentMatchesTemplate(t *testing.T) {
	bundle := &Bundle{Matches: testMatches()}
	got := currentMatchesTemplate(bundle)

	for _, want := range []string{"India", "Australia", "Wankhede Stadium", "180/7"} {
		if !strings.Contains(got, want) {
			t.Errorf("response missing '%s': %s", want, got)
		}
	}
}

func TestCurrentMatchesTemplateSkipsEndedMatch(t *testing.T) {
	bundle := &Bundle{Matches: []model.Match{
		{ID: "m0", Name: "ENG vs NZ", Teams: []string{"England", "New Zealand"}, Venue: "Lord's",
			Status: "ENG won by 5 wickets", MatchStarted: true, MatchEnded: true},
		{ID: "m1", Name: "IND vs AUS", Teams: []string{"India", "Australia"}, Venue: "Wankhede Stadium",
			Status: "India need 50 runs", MatchStarted: true,
			Score: []model.ScoreLine{{Inning: "Australia Inning 1", Runs: 180, Wickets: 7, Overs: 20}}},
	}}

	got := currentMatchesTemplate(bundle)
	for _, want := range []string{"India vs Australia", "Wankhede Stadium", "is live"} {
		if !strings.Contains(got, want) {
			t.Errorf("response missing '%s': %s", want, got)
		}
	}
	if strings.Contains(got, "England") {
		t.Errorf("response leads with an ended match: %s", got)
	}
}

func TestFeaturedMatch(t *testing.T) {
	live := model.Match{ID: "live", MatchStarted: true}
	ended := model.Match{ID: "ended", MatchStarted: true, MatchEnded: true}
	upcoming := model.Match{ID: "upcoming"}

	tests := map[string]struct {
		matches []model.Match
		wantID  string
	}{
		"live after ended":     {matches: []model.Match{ended, live}, wantID: "live"},
		"upcoming after ended": {matches: []model.Match{ended, upcoming}, wantID: "upcoming"},
		"only ended":           {matches: []model.Match{ended}, wantID: "ended"},
		"empty":                {matches: nil, wantID: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := featuredMatch(tc.matches)
			if tc.wantID == "" {
				if got != nil {
					t.Fatalf("expected no match, got: %+v", got)
				}
				return
			}
			if got == nil || got.ID != tc.wantID {
				t.Errorf("featured match incorrect, wanted: '%s', got: %+v", tc.wantID, got)
			}
		})
	}
}

func TestCurrentMatchesTemplateNoData(t *testing.T) {
	got := currentMatchesTemplate(&Bundle{})
	if got == "" {
		t.Errorf("template must produce an answer even without data")
	}
}

func TestSquadSearchTemplateCapsResults(t *testing.T) {
	bundle := &Bundle{}
	for i := 0; i < 8; i++ {
		bundle.SearchResults = append(bundle.SearchResults, model.Player{Name: "Sharma", Role: model.ROLE_BAT})
	}

	got := squadSearchTemplate(bundle)
	if count := strings.Count(got, "Sharma"); count != 5 {
		t.Errorf("expected 5 listed names, got %d:\n%s", count, got)
	}
}

func TestFantasyTeamTemplate(t *testing.T) {
	bundle := &Bundle{
		Matches: testMatches(),
		Squad: []model.Player{
			{Name: "Jasprit Bumrah", Role: model.ROLE_BOWL},
			{Name: "Virat Kohli", Role: model.ROLE_BAT},
			{Name: "Hardik Pandya", Role: model.ROLE_AR},
		},
	}

	got := fantasyTeamTemplate(bundle)
	if !strings.Contains(got, "Captain: Virat Kohli") {
		t.Errorf("expected first batsman as captain:\n%s", got)
	}
	if !strings.Contains(got, "Vice-Captain: Hardik Pandya") {
		t.Errorf("expected first all-rounder as vice-captain:\n%s", got)
	}
}

func TestPlayerStatsTemplate(t *testing.T) {
	bundle := &Bundle{
		Scorecard: &model.Scorecard{
			MatchID: "m1",
			Innings: []model.Innings{{
				Name: "India Inning 1",
				Batting: []model.BattingLine{
					{Player: "Rohit Sharma", Runs: 76, Balls: 44, StrikeRate: 172.7},
				},
				Bowling: []model.BowlingLine{
					{Player: "Pat Cummins", Overs: 4, Runs: 31, Wickets: 2, Economy: 7.75},
				},
			}},
		},
	}

	got := playerStatsTemplate(bundle)
	if !strings.Contains(got, "Rohit Sharma: 76") {
		t.Errorf("missing batting line:\n%s", got)
	}
	if !strings.Contains(got, "Pat Cummins: 2/31") {
		t.Errorf("missing bowling line:\n%s", got)
	}
}

func TestRegexPickExtractor(t *testing.T) {
	tests := map[string]struct {
		text      string
		wantPicks int
		wantFirst string
	}{
		"both lines": {
			text:      "Here you go.\nCaptain: Virat Kohli\nVice-Captain: Hardik Pandya\nGood luck!",
			wantPicks: 2,
			wantFirst: "Virat Kohli",
		},
		"markdown bold": {
			text:      "**Captain**: Rohit Sharma\n**Vice-Captain**: Jasprit Bumrah",
			wantPicks: 2,
			wantFirst: "Rohit Sharma",
		},
		"spaced vice captain": {
			text:      "Captain: A\nVice Captain: B",
			wantPicks: 2,
			wantFirst: "A",
		},
		"missing lines are not an error": {
			text:      "I suggest a balanced team with strong bowlers.",
			wantPicks: 0,
		},
	}

	e := regexPickExtractor{}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			picks := e.Extract(tc.text)
			if len(picks) != tc.wantPicks {
				t.Fatalf("pick count incorrect, wanted: %d, got: %v", tc.wantPicks, picks)
			}
			if tc.wantPicks > 0 && picks[0].Name != tc.wantFirst {
				t.Errorf("first pick incorrect, wanted: '%s', got: '%s'", tc.wantFirst, picks[0].Name)
			}
		})
	}
}

func TestRespondLLMPath(t *testing.T) {
	cricket := &stubCricket{
		matches: func(ctx context.Context) ([]model.Match, error) { return testMatches(), nil },
		squad: func(ctx context.Context, matchID string) ([]model.Player, error) {
			return []model.Player{{Name: "Virat Kohli", Role: model.ROLE_BAT, Team: "India"}}, nil
		},
		scorecard: func(ctx context.Context, matchID string) (*model.Scorecard, error) {
			return &model.Scorecard{}, nil
		},
	}
	llmClient := &stubLLM{response: "Go aggressive.\nCaptain: Virat Kohli\nVice-Captain: Pat Cummins"}

	a, err := New(cricket, llmClient, zerolog.Nop())
	if err != nil {
		t.Fatalf("error creating assistant: %v", err)
	}

	answer := a.Answer(context.Background(), "suggest a fantasy team for today")
	if answer.Message != llmClient.response {
		t.Errorf("expected the llm text to be used, got: %s", answer.Message)
	}
	if len(answer.PlayerStats) != 2 || answer.PlayerStats[0].Name != "Virat Kohli" {
		t.Errorf("expected extracted picks, got: %v", answer.PlayerStats)
	}
}

func TestRespondLLMFailureFallsBackToTemplate(t *testing.T) {
	cricket := &stubCricket{
		matches: func(ctx context.Context) ([]model.Match, error) { return testMatches(), nil },
	}
	llmClient := &stubLLM{err: errors.New("rate limited")}

	a, err := New(cricket, llmClient, zerolog.Nop())
	if err != nil {
		t.Fatalf("error creating assistant: %v", err)
	}

	answer := a.Answer(context.Background(), "what matches are live today")
	if answer.Message == "" {
		t.Fatalf("fallback must still answer")
	}
	if !strings.Contains(answer.Message, "India vs Australia") {
		t.Errorf("expected template response, got: %s", answer.Message)
	}
}

// Round-trip: classify, execute and respond never fail outright, even when
// every upstream call does.
func TestAnswerAllUpstreamsDown(t *testing.T) {
	down := errors.New("upstream down")
	cricket := &stubCricket{
		matches:   func(ctx context.Context) ([]model.Match, error) { return nil, down },
		squad:     func(ctx context.Context, matchID string) ([]model.Player, error) { return nil, down },
		scorecard: func(ctx context.Context, matchID string) (*model.Scorecard, error) { return nil, down },
		players:   func(ctx context.Context) ([]model.Player, error) { return nil, down },
	}
	a := newTestAssistant(t, cricket)

	queries := []string{
		"what matches are live today",
		"suggest a fantasy team for today's match",
		"Is Rohit Sharma in the squad?",
		"how did the bowlers perform",
		"who are the players in the squad",
		"fantasy score from yesterday",
		"hello",
	}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			answer := a.Answer(context.Background(), q)
			if strings.TrimSpace(answer.Message) == "" {
				t.Errorf("empty answer for query '%s'", q)
			}
			if answer.HasData {
				t.Errorf("hasData should be false when every fetch fails")
			}
		})
	}
}
