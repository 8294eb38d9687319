// Package sudoku implements the 4x4 symbol sudoku: four symbols, four 2x2
// boxes and a fixed seed made from a known solution with cells removed.
package sudoku

import (
	"fmt"
	"sync"
	"time"

	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/business/data/catalog"
	"github.com/ardanlabs/questhub/foundation/timer"
)

// Source identifies the sudoku in notifications and completion reports.
const Source = "sudoku"

// Grid dimensions and limits.
const (
	Size     = 4
	BoxSize  = 2
	Removed  = 8
	MaxHints = 3
)

// DefaultTick is the length of one elapsed time unit.
const DefaultTick = time.Second

// Option changes a default setting of the sudoku.
type Option func(s *Sudoku)

// WithTick sets the length of one elapsed time unit.
func WithTick(d time.Duration) Option {
	return func(s *Sudoku) {
		s.tick = d
	}
}

// Pos is a cell position on the board.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Sudoku manages a sudoku session. It is safe for concurrent use.
type Sudoku struct {
	symbols  []string
	solution [Size][Size]string
	removed  []Pos
	sched    timer.Scheduler
	rep      game.Reporter
	tick     time.Duration

	mu       sync.Mutex
	gen      uint64
	tickH    timer.Handle
	started  bool
	board    Board
	selected *Pos
	mistakes int
	hints    int
	elapsed  int
	active   bool
	complete bool
	score    int
}

// New constructs a sudoku from the catalog seed. The solution must be a
// valid grid over the symbols and exactly Removed distinct cells must be
// removed from it.
func New(seed catalog.Sudoku, sched timer.Scheduler, rep game.Reporter, opts ...Option) (*Sudoku, error) {
	s := Sudoku{
		symbols: append([]string(nil), seed.Symbols...),
		sched:   sched,
		rep:     rep,
		tick:    DefaultTick,
	}

	if len(seed.Symbols) != Size {
		return nil, fmt.Errorf("sudoku needs %d symbols, got %d", Size, len(seed.Symbols))
	}

	if len(seed.Solution) != Size {
		return nil, fmt.Errorf("sudoku solution needs %d rows, got %d", Size, len(seed.Solution))
	}
	for r, row := range seed.Solution {
		if len(row) != Size {
			return nil, fmt.Errorf("sudoku solution row %d needs %d cells, got %d", r, Size, len(row))
		}
		copy(s.solution[r][:], row)
	}

	if err := s.checkSolution(); err != nil {
		return nil, err
	}

	if len(seed.Removed) != Removed {
		return nil, fmt.Errorf("sudoku needs %d removed cells, got %d", Removed, len(seed.Removed))
	}
	seen := make(map[Pos]bool, Removed)
	for _, rc := range seed.Removed {
		if len(rc) != 2 || !inRange(rc[0], rc[1]) {
			return nil, fmt.Errorf("sudoku removed cell %v is not a position", rc)
		}
		p := Pos{Row: rc[0], Col: rc[1]}
		if seen[p] {
			return nil, fmt.Errorf("sudoku removed cell %v is repeated", rc)
		}
		seen[p] = true
		s.removed = append(s.removed, p)
	}

	for _, opt := range opts {
		opt(&s)
	}

	if s.tick <= 0 {
		return nil, fmt.Errorf("sudoku tick must be positive")
	}

	return &s, nil
}

// Start regenerates the grid, resets the counters and the selection and
// starts the elapsed time ticker. A ticker from a previous session is
// stopped first.
func (s *Sudoku) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTicker()

	s.board = s.generate()
	s.started = true
	s.selected = nil
	s.mistakes = 0
	s.hints = 0
	s.elapsed = 0
	s.score = 0
	s.active = true
	s.complete = false

	gen := s.gen
	s.tickH = s.sched.Every(s.tick, func() { s.onTick(gen) })
}

// Select makes the cell the target of Place and Clear.
func (s *Sudoku) Select(row int, col int) error {
	var out game.Outbox
	defer out.Flush(s.rep)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return out.Reject(Source, game.ErrInactive)
	}

	if !inRange(row, col) {
		return out.Reject(Source, game.NewValidationError(game.KindOutOfRange, "cell (%d,%d) is off the board", row, col))
	}

	if s.board[row][col].Fixed {
		return out.Reject(Source, game.ErrFixedCell)
	}

	s.selected = &Pos{Row: row, Col: col}

	return nil
}

// Place writes the symbol into the selected cell. A placement that conflicts
// with its row, column or box is kept but marked invalid and counted as a
// mistake.
func (s *Sudoku) Place(symbol string) error {
	var out game.Outbox
	defer out.Flush(s.rep)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.editable()
	if err != nil {
		return out.Reject(Source, err)
	}

	if !s.isSymbol(symbol) {
		return out.Reject(Source, game.NewValidationError(game.KindUnknownSymbol, "symbol %q is not on the board", symbol))
	}

	cell := &s.board[p.Row][p.Col]
	cell.Value = symbol
	cell.Hinted = false
	cell.Valid = s.fits(p.Row, p.Col, symbol)

	if !cell.Valid {
		s.mistakes++
		out.Raise(game.Notice{
			Source:  Source,
			Level:   game.LevelWarning,
			Title:   "Invalid move!",
			Message: "This symbol conflicts with sudoku rules",
		})
	}

	s.revalidate()
	s.checkComplete(&out)

	return nil
}

// Clear empties the selected cell.
func (s *Sudoku) Clear() error {
	var out game.Outbox
	defer out.Flush(s.rep)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.editable()
	if err != nil {
		return out.Reject(Source, err)
	}

	s.board[p.Row][p.Col] = Cell{Valid: true}
	s.revalidate()

	return nil
}

// Hint fills the first empty cell in row-major order with its solution
// value. With no empty cell left the hint is not consumed.
func (s *Sudoku) Hint() error {
	var out game.Outbox
	defer out.Flush(s.rep)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return out.Reject(Source, game.ErrInactive)
	}

	if s.hints >= MaxHints {
		return out.Reject(Source, game.ErrHintLimit)
	}

	for r := range Size {
		for c := range Size {
			if s.board[r][c].Value != "" {
				continue
			}

			s.board[r][c] = Cell{Value: s.solution[r][c], Valid: true, Hinted: true}
			s.hints++

			out.Raise(game.Notice{
				Source:  Source,
				Level:   game.LevelInfo,
				Title:   "Hint used!",
				Message: fmt.Sprintf("%d hints remaining", MaxHints-s.hints),
			})

			s.revalidate()
			s.checkComplete(&out)
			return nil
		}
	}

	return nil
}

// Stop tears down the ticker. The session can be started again.
func (s *Sudoku) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTicker()
	s.active = false
}

// =============================================================================

func (s *Sudoku) onTick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || !s.active {
		return
	}

	s.elapsed++
}

func (s *Sudoku) stopTicker() {
	timer.Stop(s.tickH)
	s.tickH = nil
	s.gen++
}

// editable returns the selected cell if input may change it.
func (s *Sudoku) editable() (Pos, error) {
	if !s.active {
		return Pos{}, game.ErrInactive
	}

	if s.selected == nil {
		return Pos{}, game.ErrNoSelection
	}

	p := *s.selected
	if s.board[p.Row][p.Col].Fixed {
		return Pos{}, game.ErrFixedCell
	}

	return p, nil
}

// checkComplete ends the session once every cell is filled and valid.
func (s *Sudoku) checkComplete(out *game.Outbox) {
	for r := range Size {
		for c := range Size {
			if cell := s.board[r][c]; cell.Value == "" || !cell.Valid {
				return
			}
		}
	}

	s.stopTicker()
	s.active = false
	s.complete = true
	s.selected = nil
	s.score = Score(s.elapsed, s.mistakes, s.hints)

	out.Raise(game.Notice{
		Source:  Source,
		Level:   game.LevelSuccess,
		Title:   "Puzzle Complete!",
		Message: fmt.Sprintf("Score: %d points", s.score),
	})
	out.Complete(Source, s.score)
}

// revalidate recomputes the valid flag of every non-fixed cell, hinted
// ones included, so a cell stays valid only while it has no equal peer.
func (s *Sudoku) revalidate() {
	for r := range Size {
		for c := range Size {
			cell := &s.board[r][c]
			if cell.Fixed || cell.Value == "" {
				continue
			}
			cell.Valid = s.fits(r, c, cell.Value)
		}
	}
}

// fits reports whether the value has no equal peer in the row, the column
// or the box of the cell.
func (s *Sudoku) fits(row int, col int, value string) bool {
	for c := range Size {
		if c != col && s.board[row][c].Value == value {
			return false
		}
	}

	for r := range Size {
		if r != row && s.board[r][col].Value == value {
			return false
		}
	}

	br, bc := row/BoxSize*BoxSize, col/BoxSize*BoxSize
	for r := br; r < br+BoxSize; r++ {
		for c := bc; c < bc+BoxSize; c++ {
			if (r != row || c != col) && s.board[r][c].Value == value {
				return false
			}
		}
	}

	return true
}

func (s *Sudoku) generate() Board {
	var b Board
	for r := range Size {
		for c := range Size {
			b[r][c] = Cell{Value: s.solution[r][c], Fixed: true, Valid: true}
		}
	}

	for _, p := range s.removed {
		b[p.Row][p.Col] = Cell{Valid: true}
	}

	return b
}

// checkSolution runs before the removed cells are recorded, so generate
// yields the complete solution.
func (s *Sudoku) checkSolution() error {
	for r := range Size {
		for c := range Size {
			v := s.solution[r][c]
			if !s.isSymbol(v) {
				return fmt.Errorf("sudoku solution (%d,%d): unknown symbol %q", r, c, v)
			}
		}
	}

	s.board = s.generate()
	defer func() { s.board = Board{} }()

	for r := range Size {
		for c := range Size {
			if !s.fits(r, c, s.solution[r][c]) {
				return fmt.Errorf("sudoku solution (%d,%d): %q repeats in its row, column or box", r, c, s.solution[r][c])
			}
		}
	}

	return nil
}

func (s *Sudoku) isSymbol(v string) bool {
	for _, sym := range s.symbols {
		if sym == v {
			return true
		}
	}
	return false
}

func inRange(row int, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// =============================================================================

// Score computes the final score. Every second under 300 is a bonus, every
// mistake costs 50 and every hint 100. The score never drops below 100.
func Score(elapsed int, mistakes int, hints int) int {
	return max(100, 1000+max(0, 300-elapsed)-50*mistakes-100*hints)
}

// FormatElapsed renders seconds as m:ss.
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
