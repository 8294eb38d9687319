package course

// Quiz is the view of a module quiz. The correct option is shown once the
// module is complete.
type Quiz struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  *int     `json:"correct,omitempty"`
}

// Module is the view of a module.
type Module struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Video     string `json:"video,omitempty"`
	Quiz      *Quiz  `json:"quiz,omitempty"`
	Completed bool   `json:"completed"`
}

// Snapshot is a read-only view of the course for rendering.
type Snapshot struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Reward    int      `json:"reward"`
	Modules   []Module `json:"modules"`
	Current   int      `json:"current"`
	Completed int      `json:"completed"`
	Progress  int      `json:"progress"`
	Complete  bool     `json:"complete"`
	Rewarded  bool     `json:"rewarded"`
}

// Snapshot returns the current state of the course.
func (c *Course) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		ID:       c.course.ID,
		Title:    c.course.Title,
		Reward:   c.reward,
		Modules:  make([]Module, len(c.course.Modules)),
		Current:  c.current,
		Progress: c.percent(),
		Rewarded: c.rewarded,
	}

	for i, m := range c.course.Modules {
		mod := Module{
			ID:        m.ID,
			Title:     m.Title,
			Content:   m.Content,
			Video:     m.Video,
			Completed: c.completed[i],
		}

		if m.Quiz != nil {
			mod.Quiz = &Quiz{
				Question: m.Quiz.Question,
				Options:  append([]string(nil), m.Quiz.Options...),
			}
			if c.completed[i] {
				correct := m.Quiz.Correct
				mod.Quiz.Correct = &correct
			}
		}

		if mod.Completed {
			snap.Completed++
		}
		snap.Modules[i] = mod
	}

	snap.Complete = snap.Completed == len(snap.Modules)

	return snap
}
