package sudoku

// Snapshot is a read-only view of the sudoku for rendering.
type Snapshot struct {
	Started     bool     `json:"started"`
	Board       Board    `json:"board"`
	Symbols     []string `json:"symbols"`
	Selected    *Pos     `json:"selected"`
	Mistakes    int      `json:"mistakes"`
	Hints       int      `json:"hints"`
	HintsLeft   int      `json:"hints_left"`
	Elapsed     int      `json:"elapsed"`
	ElapsedText string   `json:"elapsed_text"`
	Active      bool     `json:"active"`
	Complete    bool     `json:"complete"`
	Score       int      `json:"score"`
}

// Snapshot returns the current state of the sudoku.
func (s *Sudoku) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Started:     s.started,
		Board:       s.board,
		Symbols:     append([]string(nil), s.symbols...),
		Mistakes:    s.mistakes,
		Hints:       s.hints,
		HintsLeft:   MaxHints - s.hints,
		Elapsed:     s.elapsed,
		ElapsedText: FormatElapsed(s.elapsed),
		Active:      s.active,
		Complete:    s.complete,
		Score:       s.score,
	}

	if s.selected != nil {
		p := *s.selected
		snap.Selected = &p
	}

	return snap
}
