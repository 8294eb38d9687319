package sandbox

// Snapshot is a read-only view of the sandbox for rendering.
type Snapshot struct {
	Address  string        `json:"address"`
	Name     string        `json:"name"`
	Balance  Amount        `json:"balance"`
	Fee      Amount        `json:"fee"`
	Log      []Transaction `json:"log"`
	InFlight bool          `json:"in_flight"`
	Step     int           `json:"step"`
	Steps    []string      `json:"steps"`
	Pending  *Pending      `json:"pending"`
}

// Snapshot returns the current state of the sandbox. The log is newest
// first.
func (s *Sandbox) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Address:  s.cfg.WalletAddress,
		Name:     s.names.Lookup(s.cfg.WalletAddress),
		Balance:  s.balance,
		Fee:      s.cfg.Fee,
		Log:      append([]Transaction{}, s.log...),
		InFlight: s.pending != nil,
		Step:     s.step,
		Steps:    append([]string(nil), s.cfg.Steps...),
	}

	if s.pending != nil {
		p := *s.pending
		snap.Pending = &p
	}

	return snap
}
