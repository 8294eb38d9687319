package quiz

// Question is the view of a question. The correct option and explanation
// are only filled in once the question has been answered.
type Question struct {
	ID          int      `json:"id"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     *int     `json:"correct,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Snapshot is a read-only view of the quiz for rendering.
type Snapshot struct {
	Started    bool      `json:"started"`
	Index      int       `json:"index"`
	Count      int       `json:"count"`
	Question   *Question `json:"question,omitempty"`
	Selected   int       `json:"selected"`
	Revealed   bool      `json:"revealed"`
	Remaining  int       `json:"remaining"`
	Active     bool      `json:"active"`
	Complete   bool      `json:"complete"`
	Score      int       `json:"score"`
	MaxScore   int       `json:"max_score"`
	Percentage int       `json:"percentage"`
	Badges     []string  `json:"badges,omitempty"`
	Answers    []Answer  `json:"answers"`
}

// Snapshot returns the current state of the quiz.
func (q *Quiz) Snapshot() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	snap := Snapshot{
		Started:    q.started,
		Index:      q.index,
		Count:      len(q.questions),
		Selected:   q.selected,
		Revealed:   q.revealed,
		Remaining:  q.remaining,
		Active:     q.active,
		Complete:   q.complete,
		Score:      q.score,
		MaxScore:   q.maxScore(),
		Percentage: q.percentage(),
		Answers:    append([]Answer{}, q.answers...),
	}

	if q.complete {
		snap.Badges = Badges(snap.Percentage)
	}

	if q.started && !q.complete {
		cq := q.questions[q.index]
		view := Question{
			ID:      cq.ID,
			Prompt:  cq.Prompt,
			Options: append([]string(nil), cq.Options...),
		}
		if q.revealed {
			correct := cq.Correct
			view.Correct = &correct
			view.Explanation = cq.Explanation
		}
		snap.Question = &view
	}

	return snap
}
