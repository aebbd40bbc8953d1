package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/crickfan/fantasy_cricket/controller"
	"github.com/rs/zerolog"
	"github.com/unrolled/render"
)

type Server struct {
	server *http.Server
	log    zerolog.Logger
}

func NewServer(port int, ctrl controller.C, adminPassword string, log zerolog.Logger) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, adminPassword)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
		log: log,
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.log.Fatal().Err(err).Msg("fatal error shutting down server")
		}
	}()

	s.log.Info().Str("addr", s.server.Addr).Msg("web server is listening")
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.log.Fatal().Err(err).Msg("fatal error with server")
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		IndentJSON: true,
	})
}
