package course

import (
	"fmt"
	"sync"

	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/business/data/catalog"
)

// Summary describes a course in the catalog listing.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
	Modules     int    `json:"modules"`
	Reward      int    `json:"reward"`
	Locked      bool   `json:"locked"`
	Open        bool   `json:"open"`
	Progress    int    `json:"progress"`
}

// Catalog holds every course and the trackers of the courses the player
// has opened. It is safe for concurrent use.
type Catalog struct {
	content catalog.Catalog
	rep     game.Reporter

	mu   sync.Mutex
	open map[string]*Course
}

// NewCatalog constructs a course catalog. Every course must have a reward.
func NewCatalog(content catalog.Catalog, rep game.Reporter) (*Catalog, error) {
	for _, c := range content.Courses {
		if _, err := content.Reward(c.ID); err != nil {
			return nil, err
		}
	}

	cat := Catalog{
		content: content,
		rep:     rep,
		open:    make(map[string]*Course),
	}

	return &cat, nil
}

// Courses lists every course in catalog order.
func (cat *Catalog) Courses() []Summary {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	list := make([]Summary, len(cat.content.Courses))
	for i, c := range cat.content.Courses {
		reward, _ := cat.content.Reward(c.ID)

		s := Summary{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Duration:    c.Duration,
			Difficulty:  c.Difficulty,
			Modules:     len(c.Modules),
			Reward:      reward,
			Locked:      c.Locked,
		}

		if crs, exists := cat.open[c.ID]; exists {
			s.Open = true
			s.Progress = crs.Snapshot().Progress
		}

		list[i] = s
	}

	return list
}

// Open returns the tracker for the course, constructing it on first use.
// Unknown and locked courses cannot be opened.
func (cat *Catalog) Open(courseID string) (*Course, error) {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	if crs, exists := cat.open[courseID]; exists {
		return crs, nil
	}

	c, err := cat.content.Course(courseID)
	if err != nil {
		return nil, game.NewValidationError(game.KindNotFound, "course %q does not exist", courseID)
	}

	if c.Locked {
		return nil, game.NewValidationError(game.KindLocked, "course %q is locked", courseID)
	}

	reward, err := cat.content.Reward(courseID)
	if err != nil {
		return nil, err
	}

	crs, err := New(c, reward, cat.rep)
	if err != nil {
		return nil, fmt.Errorf("opening course: %w", err)
	}
	cat.open[courseID] = crs

	return crs, nil
}

// Get returns the tracker for a course that has been opened.
func (cat *Catalog) Get(courseID string) (*Course, error) {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	crs, exists := cat.open[courseID]
	if !exists {
		return nil, game.NewValidationError(game.KindNotFound, "course %q is not open", courseID)
	}

	return crs, nil
}
