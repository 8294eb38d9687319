// Package puzzle implements the block-ordering puzzle: four content blocks
// are placed into four ordered slots and each slot holding the block that
// belongs there scores points.
package puzzle

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/business/data/catalog"
	"github.com/ardanlabs/questhub/foundation/timer"
)

// Source identifies the puzzle in notifications and completion reports.
const Source = "puzzle"

// SlotCount is the number of slots in the chain.
const SlotCount = 4

// Default settings.
const (
	DefaultCountdown = 60
	DefaultTick      = time.Second
	DefaultEndDelay  = 500 * time.Millisecond
	DefaultPoints    = 100
)

// Option changes a default setting of the puzzle.
type Option func(p *Puzzle)

// WithCountdown sets the number of ticks a session lasts.
func WithCountdown(ticks int) Option {
	return func(p *Puzzle) {
		p.countdown = ticks
	}
}

// WithTick sets the length of one countdown tick.
func WithTick(d time.Duration) Option {
	return func(p *Puzzle) {
		p.tick = d
	}
}

// WithEndDelay sets the pause between filling the last slot and scoring.
func WithEndDelay(d time.Duration) Option {
	return func(p *Puzzle) {
		p.endDelay = d
	}
}

// WithSeed makes the presentation shuffle reproducible.
func WithSeed(seed uint64) Option {
	return func(p *Puzzle) {
		p.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// Block is a puzzle block and where it currently is.
type Block struct {
	ID              int    `json:"id"`
	Category        string `json:"category"`
	Content         string `json:"content"`
	Placed          bool   `json:"placed"`
	CorrectPosition int    `json:"-"`
}

// Puzzle manages a puzzle session. It is safe for concurrent use.
type Puzzle struct {
	blocks    []Block
	sched     timer.Scheduler
	rep       game.Reporter
	countdown int
	tick      time.Duration
	endDelay  time.Duration
	rng       *rand.Rand

	mu       sync.Mutex
	gen      uint64
	tickH    timer.Handle
	endH     timer.Handle
	started  bool
	pool     []Block
	slots    [SlotCount]int
	timeLeft int
	active   bool
	complete bool
	score    int
}

// New constructs a puzzle over the specified blocks. The blocks must be
// exactly SlotCount with correct positions covering every slot once.
func New(blocks []catalog.Block, sched timer.Scheduler, rep game.Reporter, opts ...Option) (*Puzzle, error) {
	if len(blocks) != SlotCount {
		return nil, fmt.Errorf("puzzle needs %d blocks, got %d", SlotCount, len(blocks))
	}

	var positions [SlotCount]bool
	ids := make(map[int]bool, SlotCount)
	bs := make([]Block, len(blocks))
	for i, b := range blocks {
		if b.ID <= 0 || ids[b.ID] {
			return nil, fmt.Errorf("block id %d is invalid or repeated", b.ID)
		}
		ids[b.ID] = true

		if b.CorrectPosition < 0 || b.CorrectPosition >= SlotCount || positions[b.CorrectPosition] {
			return nil, fmt.Errorf("block %d: correct position %d is invalid or repeated", b.ID, b.CorrectPosition)
		}
		positions[b.CorrectPosition] = true

		bs[i] = Block{
			ID:              b.ID,
			Category:        b.Category,
			Content:         b.Content,
			CorrectPosition: b.CorrectPosition,
		}
	}

	p := Puzzle{
		blocks:    bs,
		sched:     sched,
		rep:       rep,
		countdown: DefaultCountdown,
		tick:      DefaultTick,
		endDelay:  DefaultEndDelay,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	for _, opt := range opts {
		opt(&p)
	}

	if p.countdown <= 0 || p.tick <= 0 || p.endDelay < 0 {
		return nil, fmt.Errorf("puzzle countdown and tick must be positive")
	}

	return &p, nil
}

// Start shuffles the blocks into a new presentation order, clears the slots
// and starts the countdown. Timers from a previous session are stopped first.
func (p *Puzzle) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopTimers()

	p.pool = append([]Block(nil), p.blocks...)
	p.rng.Shuffle(len(p.pool), func(i, j int) {
		p.pool[i], p.pool[j] = p.pool[j], p.pool[i]
	})

	p.slots = [SlotCount]int{}
	p.started = true
	p.score = 0
	p.timeLeft = p.countdown
	p.active = true
	p.complete = false

	gen := p.gen
	p.tickH = p.sched.Every(p.tick, func() { p.onTick(gen) })
}

// Place moves the block into the first empty slot. Filling the last empty
// slot ends the game after the end delay.
func (p *Puzzle) Place(blockID int) error {
	var out game.Outbox
	defer out.Flush(p.rep)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return out.Reject(Source, game.ErrInactive)
	}

	idx := p.find(blockID)
	if idx == -1 {
		return out.Reject(Source, game.NewValidationError(game.KindNotFound, "block %d does not exist", blockID))
	}

	if p.pool[idx].Placed {
		return out.Reject(Source, game.ErrAlreadyPlaced)
	}

	slot := p.firstEmpty()
	if slot == -1 {
		return out.Reject(Source, game.NewValidationError(game.KindOutOfRange, "no empty slot"))
	}

	p.slots[slot] = blockID
	p.pool[idx].Placed = true

	if p.firstEmpty() == -1 {
		gen := p.gen
		p.endH = p.sched.After(p.endDelay, func() { p.onFilled(gen) })
	}

	return nil
}

// Remove clears the slot and returns its block to the pool. Removing from an
// empty slot does nothing. A pending end is cancelled because the chain is no
// longer complete.
func (p *Puzzle) Remove(slot int) error {
	var out game.Outbox
	defer out.Flush(p.rep)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return out.Reject(Source, game.ErrInactive)
	}

	if slot < 0 || slot >= SlotCount {
		return out.Reject(Source, game.NewValidationError(game.KindOutOfRange, "slot %d out of range", slot))
	}

	blockID := p.slots[slot]
	if blockID == 0 {
		return nil
	}

	p.slots[slot] = 0
	p.pool[p.find(blockID)].Placed = false

	timer.Stop(p.endH)
	p.endH = nil

	return nil
}

// Stop tears down the timers. The session can be started again.
func (p *Puzzle) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopTimers()
	p.active = false
}

// =============================================================================

func (p *Puzzle) onTick(gen uint64) {
	var out game.Outbox
	defer out.Flush(p.rep)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen || !p.active {
		return
	}

	p.timeLeft--
	if p.timeLeft > 0 {
		return
	}

	p.end(&out)
}

func (p *Puzzle) onFilled(gen uint64) {
	var out game.Outbox
	defer out.Flush(p.rep)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen || !p.active || p.firstEmpty() != -1 {
		return
	}

	p.end(&out)
}

// end scores whatever is placed, full or partial.
func (p *Puzzle) end(out *game.Outbox) {
	p.stopTimers()
	p.active = false
	p.complete = true
	p.score = p.scoreSlots()

	switch {
	case p.score == p.maxScore():
		out.Raise(game.Notice{
			Source:  Source,
			Level:   game.LevelSuccess,
			Title:   "Perfect Score!",
			Message: "You've mastered blockchain structure!",
		})

	case p.score >= p.maxScore()/2:
		out.Raise(game.Notice{
			Source:  Source,
			Level:   game.LevelSuccess,
			Title:   "Great Job!",
			Message: fmt.Sprintf("Score: %d points", p.score),
		})

	default:
		out.Raise(game.Notice{
			Source:  Source,
			Level:   game.LevelInfo,
			Title:   "Game Over",
			Message: fmt.Sprintf("Score: %d points", p.score),
		})
	}

	out.Complete(Source, p.score)
}

func (p *Puzzle) stopTimers() {
	timer.Stop(p.tickH)
	timer.Stop(p.endH)
	p.tickH = nil
	p.endH = nil
	p.gen++
}

func (p *Puzzle) scoreSlots() int {
	var points int
	for slot, blockID := range p.slots {
		if blockID == 0 {
			continue
		}
		if p.pool[p.find(blockID)].CorrectPosition == slot {
			points += DefaultPoints
		}
	}
	return points
}

func (p *Puzzle) maxScore() int {
	return SlotCount * DefaultPoints
}

func (p *Puzzle) find(blockID int) int {
	for i, b := range p.pool {
		if b.ID == blockID {
			return i
		}
	}
	return -1
}

func (p *Puzzle) firstEmpty() int {
	for i, blockID := range p.slots {
		if blockID == 0 {
			return i
		}
	}
	return -1
}
