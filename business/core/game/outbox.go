package game

// Outbox collects reports raised while an engine holds its lock so they can
// be delivered once the lock is released. The zero value is ready to use.
//
//	var out game.Outbox
//	defer out.Flush(e.rep)
//
//	e.mu.Lock()
//	defer e.mu.Unlock()
type Outbox struct {
	notices []Notice
	done    []completion
}

type completion struct {
	id     string
	points int
}

// Raise queues a notification.
func (o *Outbox) Raise(n Notice) {
	o.notices = append(o.notices, n)
}

// Complete queues a completion report.
func (o *Outbox) Complete(id string, points int) {
	o.done = append(o.done, completion{id: id, points: points})
}

// Reject queues a warning for a validation error and returns the error.
func (o *Outbox) Reject(source string, err error) error {
	o.Raise(Notice{
		Source:  source,
		Level:   LevelWarning,
		Kind:    KindOf(err),
		Title:   "Invalid action",
		Message: err.Error(),
	})
	return err
}

// Flush delivers the queued notifications followed by the completion
// reports and empties the outbox.
func (o *Outbox) Flush(rep Reporter) {
	for _, n := range o.notices {
		rep.Raise(n)
	}
	for _, c := range o.done {
		rep.Complete(c.id, c.points)
	}

	o.notices = nil
	o.done = nil
}
