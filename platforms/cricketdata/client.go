package cricketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/crickfan/fantasy_cricket/model"
)

const cricketDataURL = "https://api.cricapi.com"

// Client wraps the hosted cricket statistics API. The upstream is a free
// best-effort service: every call returns a status/data envelope and a
// non-success status is reported as empty data rather than an error.
type Client interface {
	CurrentMatches(ctx context.Context) ([]model.Match, error)
	MatchSquad(ctx context.Context, matchID string) ([]model.Player, error)
	MatchScorecard(ctx context.Context, matchID string) (*model.Scorecard, error)
	Players(ctx context.Context) ([]model.Player, error)
}

type client struct {
	url        string
	key        string
	httpClient *http.Client
}

func New(key string) (Client, error) {
	c := &client{
		url: cricketDataURL,
		key: key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(serverURL string) Client {
	return &client{
		url:        serverURL,
		key:        "not-important",
		httpClient: http.DefaultClient,
	}
}

func (c *client) CurrentMatches(ctx context.Context) ([]model.Match, error) {
	var parsed []cricMatch
	if err := c.get(ctx, &parsed, "/v1/currentMatches", nil); err != nil {
		return nil, err
	}

	result := make([]model.Match, 0, len(parsed))
	for _, m := range parsed {
		result = append(result, *m.toMatch())
	}
	return result, nil
}

func (c *client) MatchSquad(ctx context.Context, matchID string) ([]model.Player, error) {
	var parsed []cricSquad
	if err := c.get(ctx, &parsed, "/v1/match_squad", url.Values{"id": []string{matchID}}); err != nil {
		return nil, err
	}

	result := make([]model.Player, 0, 22)
	for _, squad := range parsed {
		for _, p := range squad.Players {
			result = append(result, *p.toPlayer(squad.TeamName))
		}
	}
	return result, nil
}

func (c *client) MatchScorecard(ctx context.Context, matchID string) (*model.Scorecard, error) {
	var parsed cricScorecard
	if err := c.get(ctx, &parsed, "/v1/match_scorecard", url.Values{"id": []string{matchID}}); err != nil {
		return nil, err
	}
	return parsed.toScorecard(), nil
}

func (c *client) Players(ctx context.Context) ([]model.Player, error) {
	var parsed []cricPlayer
	if err := c.get(ctx, &parsed, "/v1/players", nil); err != nil {
		return nil, err
	}

	result := make([]model.Player, 0, len(parsed))
	for _, p := range parsed {
		result = append(result, *p.toPlayer(""))
	}
	return result, nil
}

// get performs a keyed request and unmarshals the data portion of the
// envelope into res. When the envelope status is not "success" res is left
// untouched, which the callers above surface as empty data.
func (c *client) get(ctx context.Context, res any, path string, params url.Values) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s?%s", c.url, path, params.Encode()), nil)
	if err != nil {
		return fmt.Errorf("error creating cricket data http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending cricket data http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from cricket data api: %d", resp.StatusCode)
	}

	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("error parsing response from cricket data api: %w", err)
	}

	if envelope.Status != "success" || len(envelope.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, res); err != nil {
		return fmt.Errorf("error parsing cricket data payload: %w", err)
	}
	return nil
}
