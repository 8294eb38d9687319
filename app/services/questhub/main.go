package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/questhub/app/services/questhub/handlers"
	v1 "github.com/ardanlabs/questhub/app/services/questhub/handlers/v1"
	"github.com/ardanlabs/questhub/business/core/hub"
	"github.com/ardanlabs/questhub/business/data/catalog"
	"github.com/ardanlabs/questhub/foundation/events"
	"github.com/ardanlabs/questhub/foundation/logger"
	"github.com/ardanlabs/questhub/foundation/timer"
	"github.com/ardanlabs/conf/v3"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("QUEST")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Web struct {
			ReadTimeout     time.Duration `conf:"default:5s"`
			WriteTimeout    time.Duration `conf:"default:10s"`
			IdleTimeout     time.Duration `conf:"default:120s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
			APIHost         string        `conf:"default:0.0.0.0:3000"`
			DebugHost       string        `conf:"default:0.0.0.0:4000"`
			CorsOrigin      string        `conf:"default:*"`
		}
		Catalog struct {
			Path string `conf:"help:catalog yaml file, the embedded catalog when empty"`
		}
		Game struct {
			Tick            time.Duration `conf:"default:1s"`
			QuizCountdown   int           `conf:"default:30"`
			PuzzleCountdown int           `conf:"default:60"`
			InitialPoints   int           `conf:"default:1250"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	const prefix = "QUEST"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Content Support

	content, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	log.Infow("startup", "status", "catalog loaded", "questions", len(content.Questions), "courses", len(content.Courses))

	// =========================================================================
	// Engine Support

	// The engines report transient notices and completions. Both are sent
	// to any websocket client that is connected through the events package.
	evts := events.New()

	sched := timer.NewSystem()
	defer sched.Shutdown()

	hb, err := hub.New(hub.Config{
		Log:             log,
		Evts:            evts,
		Sched:           sched,
		Content:         content,
		Tick:            cfg.Game.Tick,
		QuizCountdown:   cfg.Game.QuizCountdown,
		PuzzleCountdown: cfg.Game.PuzzleCountdown,
		InitialPoints:   cfg.Game.InitialPoints,
	})
	if err != nil {
		return err
	}
	defer hb.Stop()

	// Logging the address book for documentation in the logs.
	for address, name := range hb.NS.Copy() {
		log.Infow("startup", "status", "nameservice", "name", name, "address", address)
	}

	// =========================================================================
	// Start Debug Service

	log.Infow("startup", "status", "debug v1 router started", "host", cfg.Web.DebugHost)

	// The Debug function returns a mux to listen and serve on for all the debug
	// related endpoints. This includes the standard library endpoints.
	ready := func() bool { return hb != nil }
	debugMux := handlers.DebugMux(build, log, ready)

	// Start the service listening for debug requests.
	// Not concerned with shutting this down with load shedding.
	go func() {
		if err := http.ListenAndServe(cfg.Web.DebugHost, debugMux); err != nil {
			log.Errorw("shutdown", "status", "debug v1 router closed", "host", cfg.Web.DebugHost, "ERROR", err)
		}
	}()

	// =========================================================================
	// Start API Service

	log.Infow("startup", "status", "initializing V1 API support")

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Construct the mux for the API calls.
	apiMux := handlers.APIMux(handlers.APIMuxConfig{
		Shutdown:   shutdown,
		Log:        log,
		CorsOrigin: cfg.Web.CorsOrigin,
		V1: v1.Config{
			Quiz:     hb.Quiz,
			Puzzle:   hb.Puzzle,
			Sudoku:   hb.Sudoku,
			Sandbox:  hb.Sandbox,
			Courses:  hb.Courses,
			Progress: hb.Progress,
			Evts:     evts,
		},
	})

	// Construct a server to service the requests against the mux.
	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      apiMux,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	// Start the service listening for api requests.
	go func() {
		log.Infow("startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// =========================================================================
	// Shutdown

	// Blocking main and waiting for shutdown.
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		// Release any web sockets that are currently active.
		log.Infow("shutdown", "status", "shutdown web socket channels")
		evts.Shutdown()

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		// Asking listener to shut down and shed load.
		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
