// Package game provides the vocabulary shared by the game engines: the
// callbacks an engine reports through and the classified validation errors
// it rejects input with.
package game

// Level classifies a notification for the presentation layer.
type Level string

// Set of notification levels.
const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a transient user-facing message raised by an engine.
type Notice struct {
	Source  string `json:"source"`
	Level   Level  `json:"level"`
	Kind    Kind   `json:"kind,omitempty"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Reporter holds the callbacks an engine reports through. Either callback
// may be nil. Callbacks are invoked after the engine has released its lock,
// so they may read the engine's snapshot.
type Reporter struct {
	OnComplete func(id string, points int)
	Notify     func(n Notice)
}

// Complete invokes the completion callback if one is set.
func (r Reporter) Complete(id string, points int) {
	if r.OnComplete != nil {
		r.OnComplete(id, points)
	}
}

// Raise invokes the notification callback if one is set.
func (r Reporter) Raise(n Notice) {
	if r.Notify != nil {
		r.Notify(n)
	}
}
