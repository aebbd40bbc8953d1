package cricketdata

import (
	"time"

	"github.com/crickfan/fantasy_cricket/model"
)

const gmtTimeFormat = "2006-01-02T15:04:05"

type cricMatch struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Status       string      `json:"status"`
	Venue        string      `json:"venue"`
	DateTimeGMT  string      `json:"dateTimeGMT"`
	Teams        []string    `json:"teams"`
	Score        []cricScore `json:"score"`
	MatchStarted bool        `json:"matchStarted"`
	MatchEnded   bool        `json:"matchEnded"`
}

type cricScore struct {
	Runs    int     `json:"r"`
	Wickets int     `json:"w"`
	Overs   float64 `json:"o"`
	Inning  string  `json:"inning"`
}

func (m *cricMatch) toMatch() *model.Match {
	date, err := time.Parse(gmtTimeFormat, m.DateTimeGMT)
	if err != nil {
		date = time.Time{} // an unparseable date is not worth failing the match over
	}

	score := make([]model.ScoreLine, 0, len(m.Score))
	for _, s := range m.Score {
		score = append(score, model.ScoreLine{
			Inning:  s.Inning,
			Runs:    s.Runs,
			Wickets: s.Wickets,
			Overs:   s.Overs,
		})
	}

	return &model.Match{
		ID:           m.ID,
		Name:         m.Name,
		Venue:        m.Venue,
		Date:         date,
		Status:       m.Status,
		Teams:        m.Teams,
		Score:        score,
		MatchStarted: m.MatchStarted,
		MatchEnded:   m.MatchEnded,
	}
}

type cricSquad struct {
	TeamName string       `json:"teamName"`
	Players  []cricPlayer `json:"players"`
}

type cricPlayer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Country string `json:"country"`
}

// The upstream feed has no credit values; new players get a role-based
// default and the stored value wins once a player is in the catalog.
var defaultCredits = map[model.Role]float64{
	model.ROLE_BAT:  9,
	model.ROLE_BOWL: 8.5,
	model.ROLE_AR:   9,
	model.ROLE_WK:   8.5,
}

func (p *cricPlayer) toPlayer(team string) *model.Player {
	role := model.ParseRole(p.Role)
	return &model.Player{
		ID:      p.ID,
		Name:    model.TrimNameMarkers(p.Name),
		Country: p.Country,
		Team:    team,
		Role:    role,
		Credits: defaultCredits[role],
	}
}

type cricScorecard struct {
	ID        string        `json:"id"`
	Scorecard []cricInnings `json:"scorecard"`
}

type cricInnings struct {
	Inning  string            `json:"inning"`
	Batting []cricBattingLine `json:"batting"`
	Bowling []cricBowlingLine `json:"bowling"`
}

type cricBattingLine struct {
	Batsman    cricPlayerRef `json:"batsman"`
	Dismissal  string        `json:"dismissal-text"`
	Runs       int           `json:"r"`
	Balls      int           `json:"b"`
	Fours      int           `json:"4s"`
	Sixes      int           `json:"6s"`
	StrikeRate float64       `json:"sr"`
}

type cricBowlingLine struct {
	Bowler  cricPlayerRef `json:"bowler"`
	Overs   float64       `json:"o"`
	Maidens int           `json:"m"`
	Runs    int           `json:"r"`
	Wickets int           `json:"w"`
	Economy float64       `json:"eco"`
}

type cricPlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *cricScorecard) toScorecard() *model.Scorecard {
	innings := make([]model.Innings, 0, len(s.Scorecard))
	for _, in := range s.Scorecard {
		batting := make([]model.BattingLine, 0, len(in.Batting))
		for _, b := range in.Batting {
			batting = append(batting, model.BattingLine{
				Player:     model.TrimNameMarkers(b.Batsman.Name),
				Dismissal:  b.Dismissal,
				Runs:       b.Runs,
				Balls:      b.Balls,
				Fours:      b.Fours,
				Sixes:      b.Sixes,
				StrikeRate: b.StrikeRate,
			})
		}
		bowling := make([]model.BowlingLine, 0, len(in.Bowling))
		for _, b := range in.Bowling {
			bowling = append(bowling, model.BowlingLine{
				Player:  model.TrimNameMarkers(b.Bowler.Name),
				Overs:   b.Overs,
				Maidens: b.Maidens,
				Runs:    b.Runs,
				Wickets: b.Wickets,
				Economy: b.Economy,
			})
		}
		innings = append(innings, model.Innings{
			Name:    in.Inning,
			Batting: batting,
			Bowling: bowling,
		})
	}

	return &model.Scorecard{
		MatchID: s.ID,
		Innings: innings,
	}
}
