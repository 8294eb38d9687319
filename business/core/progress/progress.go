// Package progress aggregates the points the player earns across the games
// and courses.
package progress

import (
	"sync"
	"time"
)

// PointsPerLevel is the number of points between two levels.
const PointsPerLevel = 500

// Award is one entry in the award history.
type Award struct {
	Source string    `json:"source"`
	Points int       `json:"points"`
	Total  int       `json:"total"`
	At     time.Time `json:"at"`
}

// Snapshot is a read-only view of the player progress.
type Snapshot struct {
	Total   int     `json:"total"`
	Level   int     `json:"level"`
	ToNext  int     `json:"to_next"`
	History []Award `json:"history"`
}

// Progress keeps the running total. It only receives awards and never
// touches the state of the engines that report them. It is safe for
// concurrent use.
type Progress struct {
	mu      sync.RWMutex
	total   int
	history []Award
	now     func() time.Time
}

// New constructs a progress starting at the specified total.
func New(initial int) *Progress {
	return &Progress{
		total: initial,
		now:   time.Now,
	}
}

// Award adds the points earned by the source and returns the history entry.
func (p *Progress) Award(source string, points int) Award {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total += points

	a := Award{
		Source: source,
		Points: points,
		Total:  p.total,
		At:     p.now().UTC(),
	}
	p.history = append([]Award{a}, p.history...)

	return a
}

// Total returns the running total.
func (p *Progress) Total() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.total
}

// Snapshot returns the current progress. The history is newest first.
func (p *Progress) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Snapshot{
		Total:   p.total,
		Level:   Level(p.total),
		ToNext:  PointsPerLevel - max(p.total, 0)%PointsPerLevel,
		History: append([]Award{}, p.history...),
	}
}

// Level derives the level from a total.
func Level(total int) int {
	return 1 + max(total, 0)/PointsPerLevel
}
