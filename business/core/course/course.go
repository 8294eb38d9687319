// Package course tracks the progress of a player through the modules of a
// course. Completion only moves forward until the course is restarted and a
// course pays its reward once.
package course

import (
	"fmt"
	"sync"

	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/business/data/catalog"
)

// Course tracks one course. It is safe for concurrent use.
type Course struct {
	course catalog.Course
	reward int
	rep    game.Reporter

	mu        sync.Mutex
	current   int
	completed []bool
	rewarded  bool
}

// New constructs a tracker for the course paying the specified reward.
func New(c catalog.Course, reward int, rep game.Reporter) (*Course, error) {
	if len(c.Modules) == 0 {
		return nil, fmt.Errorf("course %q has no modules", c.ID)
	}

	if reward <= 0 {
		return nil, fmt.Errorf("course %q: reward %d must be positive", c.ID, reward)
	}

	for i, m := range c.Modules {
		if m.Quiz != nil && (m.Quiz.Correct < 0 || m.Quiz.Correct >= len(m.Quiz.Options)) {
			return nil, fmt.Errorf("course %q module %d: correct option %d out of range", c.ID, i, m.Quiz.Correct)
		}
	}

	crs := Course{
		course:    c,
		reward:    reward,
		rep:       rep,
		completed: make([]bool, len(c.Modules)),
	}

	return &crs, nil
}

// ID returns the course id.
func (c *Course) ID() string {
	return c.course.ID
}

// Select moves to the specified module.
func (c *Course) Select(index int) error {
	var out game.Outbox
	defer out.Flush(c.rep)

	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.completed) {
		return out.Reject(c.source(), game.NewValidationError(game.KindOutOfRange, "module %d out of range", index))
	}

	c.current = index

	return nil
}

// Next moves to the following module once the current one is complete.
func (c *Course) Next() error {
	var out game.Outbox
	defer out.Flush(c.rep)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == len(c.completed)-1 {
		return out.Reject(c.source(), game.NewValidationError(game.KindOutOfRange, "already at the last module"))
	}

	if !c.completed[c.current] {
		return out.Reject(c.source(), game.NewValidationError(game.KindLocked, "complete module %d first", c.current))
	}

	c.current++

	return nil
}

// Previous moves to the module before the current one.
func (c *Course) Previous() error {
	var out game.Outbox
	defer out.Flush(c.rep)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == 0 {
		return out.Reject(c.source(), game.NewValidationError(game.KindOutOfRange, "already at the first module"))
	}

	c.current--

	return nil
}

// Complete marks the current module complete. Modules with a quiz are
// completed by answering it.
func (c *Course) Complete() error {
	var out game.Outbox
	defer out.Flush(c.rep)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.course.Modules[c.current].Quiz != nil {
		return out.Reject(c.source(), game.NewValidationError(game.KindNotAnswered, "module %d is completed by its quiz", c.current))
	}

	c.complete(&out)

	return nil
}

// Answer submits an answer to the quiz of the current module. A correct
// answer completes the module, an incorrect one leaves it open for another
// try.
func (c *Course) Answer(option int) (bool, error) {
	var out game.Outbox
	defer out.Flush(c.rep)

	c.mu.Lock()
	defer c.mu.Unlock()

	q := c.course.Modules[c.current].Quiz
	if q == nil {
		return false, out.Reject(c.source(), game.NewValidationError(game.KindNotFound, "module %d has no quiz", c.current))
	}

	if option < 0 || option >= len(q.Options) {
		return false, out.Reject(c.source(), game.NewValidationError(game.KindOutOfRange, "option %d out of range", option))
	}

	if option != q.Correct {
		out.Raise(game.Notice{
			Source:  c.source(),
			Level:   game.LevelError,
			Title:   "Incorrect Answer",
			Message: "Review the content and try again!",
		})
		return false, nil
	}

	c.complete(&out)

	return true, nil
}

// Restart clears every completion and returns to the first module. The
// reward is not paid again.
func (c *Course) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = 0
	c.completed = make([]bool, len(c.course.Modules))
}

// =============================================================================

// complete is a no-op for a module already complete.
func (c *Course) complete(out *game.Outbox) {
	if c.completed[c.current] {
		return
	}
	c.completed[c.current] = true

	for _, done := range c.completed {
		if !done {
			out.Raise(game.Notice{
				Source:  c.source(),
				Level:   game.LevelSuccess,
				Title:   "Module Complete!",
				Message: "Great progress! Continue to the next module.",
			})
			return
		}
	}

	if c.rewarded {
		out.Raise(game.Notice{
			Source:  c.source(),
			Level:   game.LevelSuccess,
			Title:   "Course Complete!",
			Message: "Reward already earned.",
		})
		return
	}
	c.rewarded = true

	out.Raise(game.Notice{
		Source:  c.source(),
		Level:   game.LevelSuccess,
		Title:   "Course Complete!",
		Message: fmt.Sprintf("Earned %d points!", c.reward),
	})
	out.Complete(c.course.ID, c.reward)
}

func (c *Course) source() string {
	return "course:" + c.course.ID
}

func (c *Course) percent() int {
	var done int
	for _, d := range c.completed {
		if d {
			done++
		}
	}
	return done * 100 / len(c.completed)
}
