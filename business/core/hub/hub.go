// Package hub assembles the engines of a player session from the content
// catalog and connects their reports to the points aggregator and the
// notification stream.
package hub

import (
	"fmt"
	"time"

	"github.com/ardanlabs/questhub/business/core/course"
	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/business/core/progress"
	"github.com/ardanlabs/questhub/business/core/puzzle"
	"github.com/ardanlabs/questhub/business/core/quiz"
	"github.com/ardanlabs/questhub/business/core/sandbox"
	"github.com/ardanlabs/questhub/business/core/sudoku"
	"github.com/ardanlabs/questhub/business/data/catalog"
	"github.com/ardanlabs/questhub/foundation/events"
	"github.com/ardanlabs/questhub/foundation/nameservice"
	"github.com/ardanlabs/questhub/foundation/timer"
	"go.uber.org/zap"
)

// Set of event types sent on the notification stream.
const (
	EventNotice = "notice"
	EventAward  = "award"
)

// Event is the message sent to notification stream subscribers.
type Event struct {
	Type   string          `json:"type"`
	Notice *game.Notice    `json:"notice,omitempty"`
	Award  *progress.Award `json:"award,omitempty"`
}

// Config represents the settings of a hub.
type Config struct {
	Log             *zap.SugaredLogger
	Evts            *events.Events
	Sched           timer.Scheduler
	Content         catalog.Catalog
	Tick            time.Duration
	QuizCountdown   int
	PuzzleCountdown int
	InitialPoints   int
}

// Hub holds the engines of a player session.
type Hub struct {
	Quiz     *quiz.Quiz
	Puzzle   *puzzle.Puzzle
	Sudoku   *sudoku.Sudoku
	Sandbox  *sandbox.Sandbox
	Courses  *course.Catalog
	Progress *progress.Progress
	NS       *nameservice.NameService

	log  *zap.SugaredLogger
	evts *events.Events
}

// New constructs the engines. Zero settings take the engine defaults.
func New(cfg Config) (*Hub, error) {
	h := Hub{
		Progress: progress.New(cfg.InitialPoints),
		NS:       nameservice.New(cfg.Content.AddressBook),
		log:      cfg.Log,
		evts:     cfg.Evts,
	}

	rep := game.Reporter{
		OnComplete: h.award,
		Notify:     h.notify,
	}

	quizOpts := []quiz.Option{}
	puzzleOpts := []puzzle.Option{}
	sudokuOpts := []sudoku.Option{}

	if cfg.Tick > 0 {
		quizOpts = append(quizOpts, quiz.WithTick(cfg.Tick))
		puzzleOpts = append(puzzleOpts, puzzle.WithTick(cfg.Tick))
		sudokuOpts = append(sudokuOpts, sudoku.WithTick(cfg.Tick))
	}
	if cfg.QuizCountdown > 0 {
		quizOpts = append(quizOpts, quiz.WithCountdown(cfg.QuizCountdown))
	}
	if cfg.PuzzleCountdown > 0 {
		puzzleOpts = append(puzzleOpts, puzzle.WithCountdown(cfg.PuzzleCountdown))
	}

	var err error

	if h.Quiz, err = quiz.New(cfg.Content.Questions, cfg.Sched, rep, quizOpts...); err != nil {
		return nil, fmt.Errorf("constructing quiz: %w", err)
	}

	if h.Puzzle, err = puzzle.New(cfg.Content.Blocks, cfg.Sched, rep, puzzleOpts...); err != nil {
		return nil, fmt.Errorf("constructing puzzle: %w", err)
	}

	if h.Sudoku, err = sudoku.New(cfg.Content.Sudoku, cfg.Sched, rep, sudokuOpts...); err != nil {
		return nil, fmt.Errorf("constructing sudoku: %w", err)
	}

	sbCfg, err := sandbox.ConfigFromCatalog(cfg.Content.Sandbox)
	if err != nil {
		return nil, fmt.Errorf("constructing sandbox: %w", err)
	}

	if h.Sandbox, err = sandbox.New(sbCfg, cfg.Sched, rep, sandbox.WithNames(h.NS)); err != nil {
		return nil, fmt.Errorf("constructing sandbox: %w", err)
	}

	if h.Courses, err = course.NewCatalog(cfg.Content, rep); err != nil {
		return nil, fmt.Errorf("constructing courses: %w", err)
	}

	return &h, nil
}

// Stop tears down every engine timer.
func (h *Hub) Stop() {
	h.Quiz.Stop()
	h.Puzzle.Stop()
	h.Sudoku.Stop()
	h.Sandbox.Stop()
}

// =============================================================================

func (h *Hub) award(source string, points int) {
	award := h.Progress.Award(source, points)

	h.log.Infow("award", "traceid", "00000000-0000-0000-0000-000000000000", "source", source, "points", points, "total", award.Total, "level", progress.Level(award.Total))

	h.send(Event{Type: EventAward, Award: &award})
}

func (h *Hub) notify(n game.Notice) {
	h.log.Infow("notice", "traceid", "00000000-0000-0000-0000-000000000000", "source", n.Source, "level", n.Level, "kind", n.Kind, "title", n.Title)

	h.send(Event{Type: EventNotice, Notice: &n})
}

func (h *Hub) send(evt Event) {
	if h.evts == nil {
		return
	}

	if err := h.evts.SendJSON(evt); err != nil {
		h.log.Errorw("event", "ERROR", err)
	}
}
