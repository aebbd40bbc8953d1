package web

import (
	"time"

	"github.com/crickfan/fantasy_cricket/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, adminPassword string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	// The assistant can call out to the LLM, give it more room than the
	// default timeout.
	r.With(middleware.Timeout(30 * time.Second)).
		Post("/assistant", askHandler(ctrl, render))

	r.Route("/players", func(r chi.Router) {
		r.Get("/", playerSearchHandler(ctrl, render))
		r.Get("/{playerID}", getPlayerHandler(ctrl, render))
	})

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", listTeamsHandler(ctrl, render))
		r.Post("/", submitTeamHandler(ctrl, render))
		r.Get("/{teamID:\\d+}", getTeamHandler(ctrl, render))
	})

	r.Route("/contests", func(r chi.Router) {
		r.Get("/", listContestsHandler(ctrl, render))
		r.Get("/{contestID:\\d+}", getContestHandler(ctrl, render))
		r.Post("/{contestID:\\d+}/join", joinContestHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("fc", map[string]string{"admin": adminPassword}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Post("/players", forceUpdatePlayers(ctrl, render))
	})

	return r
}
