// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/ardanlabs/questhub/app/services/questhub/handlers/v1/coursegrp"
	"github.com/ardanlabs/questhub/app/services/questhub/handlers/v1/eventgrp"
	"github.com/ardanlabs/questhub/app/services/questhub/handlers/v1/progressgrp"
	"github.com/ardanlabs/questhub/app/services/questhub/handlers/v1/puzzlegrp"
	"github.com/ardanlabs/questhub/app/services/questhub/handlers/v1/quizgrp"
	"github.com/ardanlabs/questhub/app/services/questhub/handlers/v1/sandboxgrp"
	"github.com/ardanlabs/questhub/app/services/questhub/handlers/v1/sudokugrp"
	"github.com/ardanlabs/questhub/business/core/course"
	"github.com/ardanlabs/questhub/business/core/progress"
	"github.com/ardanlabs/questhub/business/core/puzzle"
	"github.com/ardanlabs/questhub/business/core/quiz"
	"github.com/ardanlabs/questhub/business/core/sandbox"
	"github.com/ardanlabs/questhub/business/core/sudoku"
	"github.com/ardanlabs/questhub/foundation/events"
	"github.com/ardanlabs/questhub/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log      *zap.SugaredLogger
	Quiz     *quiz.Quiz
	Puzzle   *puzzle.Puzzle
	Sudoku   *sudoku.Sudoku
	Sandbox  *sandbox.Sandbox
	Courses  *course.Catalog
	Progress *progress.Progress
	Evts     *events.Events
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	qgh := quizgrp.Handlers{
		Log:  cfg.Log,
		Quiz: cfg.Quiz,
	}
	app.Handle(http.MethodPost, version, "/quiz/start", qgh.Start)
	app.Handle(http.MethodPost, version, "/quiz/answer", qgh.Answer)
	app.Handle(http.MethodPost, version, "/quiz/next", qgh.Next)
	app.Handle(http.MethodGet, version, "/quiz", qgh.Query)

	pgh := puzzlegrp.Handlers{
		Log:    cfg.Log,
		Puzzle: cfg.Puzzle,
	}
	app.Handle(http.MethodPost, version, "/puzzle/start", pgh.Start)
	app.Handle(http.MethodPost, version, "/puzzle/place/:id", pgh.Place)
	app.Handle(http.MethodPost, version, "/puzzle/remove/:slot", pgh.Remove)
	app.Handle(http.MethodGet, version, "/puzzle", pgh.Query)

	sgh := sudokugrp.Handlers{
		Log:    cfg.Log,
		Sudoku: cfg.Sudoku,
	}
	app.Handle(http.MethodPost, version, "/sudoku/start", sgh.Start)
	app.Handle(http.MethodPost, version, "/sudoku/select", sgh.Select)
	app.Handle(http.MethodPost, version, "/sudoku/place", sgh.Place)
	app.Handle(http.MethodPost, version, "/sudoku/clear", sgh.Clear)
	app.Handle(http.MethodPost, version, "/sudoku/hint", sgh.Hint)
	app.Handle(http.MethodGet, version, "/sudoku", sgh.Query)

	sbh := sandboxgrp.Handlers{
		Log:     cfg.Log,
		Sandbox: cfg.Sandbox,
	}
	app.Handle(http.MethodPost, version, "/sandbox/send", sbh.Send)
	app.Handle(http.MethodPost, version, "/sandbox/faucet", sbh.Faucet)
	app.Handle(http.MethodPost, version, "/sandbox/reset", sbh.Reset)
	app.Handle(http.MethodGet, version, "/sandbox", sbh.Query)

	cgh := coursegrp.Handlers{
		Log:     cfg.Log,
		Courses: cfg.Courses,
	}
	app.Handle(http.MethodGet, version, "/courses", cgh.List)
	app.Handle(http.MethodPost, version, "/courses/:id/open", cgh.Open)
	app.Handle(http.MethodPost, version, "/courses/:id/modules/:index/complete", cgh.Complete)
	app.Handle(http.MethodPost, version, "/courses/:id/modules/:index/answer", cgh.Answer)
	app.Handle(http.MethodPost, version, "/courses/:id/restart", cgh.Restart)
	app.Handle(http.MethodGet, version, "/courses/:id", cgh.Query)

	prh := progressgrp.Handlers{
		Progress: cfg.Progress,
	}
	app.Handle(http.MethodGet, version, "/progress", prh.Query)

	evh := eventgrp.Handlers{
		Log:  cfg.Log,
		Evts: cfg.Evts,
	}
	app.Handle(http.MethodGet, version, "/events", evh.Events)
}
