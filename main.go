package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/crickfan/fantasy_cricket/assistant"
	"github.com/crickfan/fantasy_cricket/controller"
	"github.com/crickfan/fantasy_cricket/db"
	"github.com/crickfan/fantasy_cricket/model"
	"github.com/crickfan/fantasy_cricket/platforms/cricketdata"
	"github.com/crickfan/fantasy_cricket/platforms/llm"
	"github.com/crickfan/fantasy_cricket/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("error loading .env file")
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatal().Err(err).Msg("error parsing port number")
		}
	}

	cricketAPIKey := os.Getenv("CRICKET_API_KEY")
	llmAPIKey := os.Getenv("LLM_API_KEY")
	llmURL := os.Getenv("LLM_URL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal().Msg("ADMIN_PASSWORD must be set")
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to DB")
	}

	cricketClient, err := cricketdata.New(cricketAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cricket data client")
	}

	// The LLM is optional. Without a key the assistant answers from templates.
	var llmClient llm.Client
	if llmAPIKey != "" {
		llmClient, err = llm.New(llmURL, llmAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating llm client")
		}
	}

	asst, err := assistant.New(cricketClient, llmClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating assistant")
	}

	ctrl, err := controller.New(clock, cricketClient, db, asst, model.DefaultRules(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating a new controller")
	}

	server, err := web.NewServer(portNum, ctrl, adminPassword, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating new web server")
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Error().Msg("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that refreshes the player catalog every 24-hours
	wg.Add(1)
	go ctrl.RunPeriodicPlayerUpdates(24*time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Info().Msg("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
