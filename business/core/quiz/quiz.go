// Package quiz implements the multiple choice quiz: a fixed sequence of
// questions, a per-question countdown, explanations revealed after each
// answer and a score of fixed points per correct answer.
package quiz

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/business/data/catalog"
	"github.com/ardanlabs/questhub/foundation/timer"
)

// Source identifies the quiz in notifications and completion reports.
const Source = "quiz"

// NoAnswer is the selection recorded when the countdown runs out.
const NoAnswer = -1

// Default settings.
const (
	DefaultCountdown = 30
	DefaultPoints    = 10
	DefaultTick      = time.Second
)

// Badge thresholds in percent. Badges are cosmetic.
const (
	expertThreshold = 80
	seekerThreshold = 60
)

// Option changes a default setting of the quiz.
type Option func(q *Quiz)

// WithCountdown sets the number of ticks given for each question.
func WithCountdown(ticks int) Option {
	return func(q *Quiz) {
		q.countdown = ticks
	}
}

// WithTick sets the length of one countdown tick.
func WithTick(d time.Duration) Option {
	return func(q *Quiz) {
		q.tick = d
	}
}

// WithPoints sets the points awarded for a correct answer.
func WithPoints(points int) Option {
	return func(q *Quiz) {
		q.points = points
	}
}

// Answer records how a question was answered.
type Answer struct {
	QuestionID int  `json:"question_id"`
	Selected   int  `json:"selected"`
	Correct    bool `json:"correct"`
	TimedOut   bool `json:"timed_out"`
}

// Quiz manages a quiz session. It is safe for concurrent use.
type Quiz struct {
	questions []catalog.Question
	sched     timer.Scheduler
	rep       game.Reporter
	countdown int
	points    int
	tick      time.Duration

	mu        sync.Mutex
	gen       uint64
	handle    timer.Handle
	started   bool
	index     int
	score     int
	selected  int
	revealed  bool
	remaining int
	active    bool
	complete  bool
	answers   []Answer
}

// New constructs a quiz over the specified questions.
func New(questions []catalog.Question, sched timer.Scheduler, rep game.Reporter, opts ...Option) (*Quiz, error) {
	if len(questions) == 0 {
		return nil, errors.New("quiz needs at least one question")
	}

	for _, q := range questions {
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return nil, fmt.Errorf("question %d: correct option %d out of range", q.ID, q.Correct)
		}
	}

	q := Quiz{
		questions: append([]catalog.Question(nil), questions...),
		sched:     sched,
		rep:       rep,
		countdown: DefaultCountdown,
		points:    DefaultPoints,
		tick:      DefaultTick,
		selected:  NoAnswer,
	}

	for _, opt := range opts {
		opt(&q)
	}

	if q.countdown <= 0 || q.points <= 0 || q.tick <= 0 {
		return nil, errors.New("quiz countdown, points and tick must be positive")
	}

	return &q, nil
}

// Start resets the session to the first question and starts its countdown.
// Any countdown from a previous session is stopped first.
func (q *Quiz) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.started = true
	q.index = 0
	q.score = 0
	q.complete = false
	q.answers = nil
	q.loadQuestion()
}

// Submit records the selection for the current question. NoAnswer is
// accepted. A question can only be answered once, which also guards the
// countdown against submitting twice.
func (q *Quiz) Submit(option int) error {
	var out game.Outbox
	defer out.Flush(q.rep)

	q.mu.Lock()
	defer q.mu.Unlock()

	switch {
	case !q.started || q.complete:
		return out.Reject(Source, game.ErrInactive)

	case q.revealed:
		return out.Reject(Source, game.ErrAlreadyAnswered)

	case option != NoAnswer && (option < 0 || option >= len(q.questions[q.index].Options)):
		return out.Reject(Source, game.NewValidationError(game.KindOutOfRange, "option %d out of range", option))
	}

	q.submit(option, false, &out)
	return nil
}

// Advance moves to the next question and restarts the countdown, or
// completes the session after the last question.
func (q *Quiz) Advance() error {
	var out game.Outbox
	defer out.Flush(q.rep)

	q.mu.Lock()
	defer q.mu.Unlock()

	switch {
	case !q.started || q.complete:
		return out.Reject(Source, game.ErrInactive)

	case !q.revealed:
		return out.Reject(Source, game.ErrNotAnswered)
	}

	if q.index < len(q.questions)-1 {
		q.index++
		q.loadQuestion()
		return nil
	}

	q.stopCountdown()
	q.complete = true

	pct := q.percentage()
	out.Raise(game.Notice{
		Source:  Source,
		Level:   game.LevelSuccess,
		Title:   "Quiz Complete!",
		Message: fmt.Sprintf("%d/%d points (%d%%)", q.score, q.maxScore(), pct),
	})
	out.Complete(Source, q.score)

	return nil
}

// Stop tears down the countdown. The session can be started again.
func (q *Quiz) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopCountdown()
}

// =============================================================================

// loadQuestion presents the question at the current index.
func (q *Quiz) loadQuestion() {
	q.stopCountdown()

	q.selected = NoAnswer
	q.revealed = false
	q.remaining = q.countdown
	q.active = true

	gen := q.gen
	q.handle = q.sched.Every(q.tick, func() { q.onTick(gen) })
}

// stopCountdown clears the countdown handle. Bumping the generation makes
// any tick already in flight a no-op.
func (q *Quiz) stopCountdown() {
	timer.Stop(q.handle)
	q.handle = nil
	q.gen++
	q.active = false
}

func (q *Quiz) onTick(gen uint64) {
	var out game.Outbox
	defer out.Flush(q.rep)

	q.mu.Lock()
	defer q.mu.Unlock()

	if gen != q.gen || !q.active || q.revealed {
		return
	}

	q.remaining--
	if q.remaining > 0 {
		return
	}

	q.submit(NoAnswer, true, &out)
}

func (q *Quiz) submit(option int, timedOut bool, out *game.Outbox) {
	q.stopCountdown()

	question := q.questions[q.index]
	correct := option == question.Correct

	q.selected = option
	q.revealed = true
	if correct {
		q.score += q.points
	}

	q.answers = append(q.answers, Answer{
		QuestionID: question.ID,
		Selected:   option,
		Correct:    correct,
		TimedOut:   timedOut,
	})

	n := game.Notice{
		Source:  Source,
		Level:   game.LevelError,
		Title:   "Incorrect",
		Message: question.Explanation,
	}
	switch {
	case correct:
		n.Level = game.LevelSuccess
		n.Title = "Correct!"
	case timedOut:
		n.Level = game.LevelInfo
		n.Title = "Time's up!"
	}
	out.Raise(n)
}

func (q *Quiz) maxScore() int {
	return len(q.questions) * q.points
}

func (q *Quiz) percentage() int {
	return Percentage(q.score, q.maxScore())
}

// Percentage returns score as a rounded percentage of total.
func Percentage(score int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) * 100 / float64(total)))
}

// Badges returns the cosmetic badges earned for a percentage.
func Badges(percentage int) []string {
	var badges []string
	if percentage >= expertThreshold {
		badges = append(badges, "crypto-expert")
	}
	if percentage >= seekerThreshold {
		badges = append(badges, "knowledge-seeker")
	}
	return badges
}
