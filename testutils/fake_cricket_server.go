package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed cricketdata
var cricketdata embed.FS

// The only match id the fake server has squad and scorecard data for.
const FakeMatchID = "m-ind-aus"

type FakeCricketServer struct {
	s *httptest.Server
}

func NewFakeCricketServer() *FakeCricketServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/currentMatches", currentMatchesHandler)
		r.Get("/match_squad", matchSquadHandler)
		r.Get("/match_scorecard", matchScorecardHandler)
		r.Get("/players", playersHandler)
	})

	return &FakeCricketServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeCricketServer) Close() {
	f.s.Close()
}

func (f *FakeCricketServer) URL() string {
	return f.s.URL
}

func currentMatchesHandler(w http.ResponseWriter, r *http.Request) {
	if !hasAPIKey(w, r) {
		return
	}
	serveCricketFile(w, "currentMatches.json")
}

func matchSquadHandler(w http.ResponseWriter, r *http.Request) {
	if !hasAPIKey(w, r) {
		return
	}
	if r.URL.Query().Get("id") == FakeMatchID {
		serveCricketFile(w, "match_squad.json")
	} else {
		serveFailure(w)
	}
}

func matchScorecardHandler(w http.ResponseWriter, r *http.Request) {
	if !hasAPIKey(w, r) {
		return
	}
	if r.URL.Query().Get("id") == FakeMatchID {
		serveCricketFile(w, "match_scorecard.json")
	} else {
		serveFailure(w)
	}
}

func playersHandler(w http.ResponseWriter, r *http.Request) {
	if !hasAPIKey(w, r) {
		return
	}
	serveCricketFile(w, "players.json")
}

func hasAPIKey(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.Query().Get("apikey") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}
	return true
}

// A failure envelope still has a 200 status code, the upstream signals
// problems inside the body.
func serveFailure(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"failure"}`))
}

func serveCricketFile(w http.ResponseWriter, name string) {
	b, err := cricketdata.ReadFile(fmt.Sprintf("cricketdata/%s", name))
	if err != nil {
		log.Printf("error reading cricketdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
