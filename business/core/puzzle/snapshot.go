package puzzle

// Slot is the view of a slot. Correct is only reported once the game is
// complete.
type Slot struct {
	Block   *Block `json:"block"`
	Correct *bool  `json:"correct,omitempty"`
}

// Snapshot is a read-only view of the puzzle for rendering.
type Snapshot struct {
	Started  bool            `json:"started"`
	Pool     []Block         `json:"pool"`
	Slots    [SlotCount]Slot `json:"slots"`
	TimeLeft int             `json:"time_left"`
	Active   bool            `json:"active"`
	Complete bool            `json:"complete"`
	Score    int             `json:"score"`
	MaxScore int             `json:"max_score"`
}

// Snapshot returns the current state of the puzzle.
func (p *Puzzle) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := Snapshot{
		Started:  p.started,
		Pool:     append([]Block{}, p.pool...),
		TimeLeft: p.timeLeft,
		Active:   p.active,
		Complete: p.complete,
		Score:    p.score,
		MaxScore: p.maxScore(),
	}

	for slot, blockID := range p.slots {
		if blockID == 0 {
			continue
		}

		b := p.pool[p.find(blockID)]
		snap.Slots[slot].Block = &b

		if p.complete {
			correct := b.CorrectPosition == slot
			snap.Slots[slot].Correct = &correct
		}
	}

	return snap
}
