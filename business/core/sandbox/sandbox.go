// Package sandbox simulates sending and receiving test tokens. Nothing leaves
// the process: a send walks a fixed list of steps with an artificial delay
// between each and then lands in a local log.
package sandbox

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/foundation/nameservice"
	"github.com/ardanlabs/questhub/foundation/timer"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// Source identifies the sandbox in notifications.
const Source = "sandbox"

// Direction of a transaction relative to the wallet.
type Direction string

// Set of directions.
const (
	DirectionSend    Direction = "send"
	DirectionReceive Direction = "receive"
)

// Status of a transaction. Every simulated transaction resolves to
// confirmed.
type Status string

// Set of statuses.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Transaction is an entry in the simulated transaction log.
type Transaction struct {
	ID        string    `json:"id"`
	Direction Direction `json:"direction"`
	Amount    Amount    `json:"amount"`
	Address   string    `json:"address"`
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Fee       Amount    `json:"fee"`
	Hash      string    `json:"hash"`
}

// Pending is the send currently walking through the steps.
type Pending struct {
	Amount Amount `json:"amount"`
	To     string `json:"to"`
}

// Option changes a default setting of the sandbox.
type Option func(s *Sandbox)

// WithNames resolves transaction addresses to display names.
func WithNames(ns *nameservice.NameService) Option {
	return func(s *Sandbox) {
		s.names = ns
	}
}

// WithSeed makes faucet amounts reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Sandbox) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithClock sets the source of transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Sandbox) {
		s.now = now
	}
}

// Sandbox manages the simulated wallet. It is safe for concurrent use.
type Sandbox struct {
	cfg   Config
	sched timer.Scheduler
	rep   game.Reporter
	names *nameservice.NameService
	rng   *rand.Rand
	now   func() time.Time

	mu      sync.Mutex
	gen     uint64
	stepH   timer.Handle
	balance Amount
	log     []Transaction
	step    int
	pending *Pending
}

// New constructs a sandbox holding the initial balance.
func New(cfg Config, sched timer.Scheduler, rep game.Reporter, opts ...Option) (*Sandbox, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("sandbox config: %w", err)
	}

	s := Sandbox{
		cfg:     cfg,
		sched:   sched,
		rep:     rep,
		names:   nameservice.New(nil),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:     time.Now,
		balance: cfg.InitialBalance,
	}

	for _, opt := range opts {
		opt(&s)
	}

	return &s, nil
}

// Send starts a simulated send. The send is validated up front and debits
// amount plus fee once the last step completes.
func (s *Sandbox) Send(amount Amount, to string) error {
	var out game.Outbox
	defer out.Flush(s.rep)

	s.mu.Lock()
	defer s.mu.Unlock()

	to = strings.TrimSpace(to)
	if amount <= 0 || to == "" {
		return out.Reject(Source, game.NewValidationError(game.KindMissingInput, "please enter amount and recipient address"))
	}

	if s.pending != nil {
		return out.Reject(Source, game.ErrSendInProgress)
	}

	if amount+s.cfg.Fee > s.balance {
		return out.Reject(Source, game.NewValidationError(game.KindInsufficientBalance, "sending %s plus a %s fee exceeds the balance of %s", amount, s.cfg.Fee, s.balance))
	}

	s.pending = &Pending{Amount: amount, To: to}
	s.step = 0

	gen := s.gen
	s.stepH = s.sched.After(s.cfg.StepDelay, func() { s.onStep(gen) })

	return nil
}

// Faucet credits a random amount in the faucet range. It may be used while a
// send is in flight.
func (s *Sandbox) Faucet() Transaction {
	var out game.Outbox
	defer out.Flush(s.rep)

	s.mu.Lock()
	defer s.mu.Unlock()

	span := int64(s.cfg.FaucetMax - s.cfg.FaucetMin)
	amount := s.cfg.FaucetMin + Amount(s.rng.Int64N(span))

	tx := s.record(DirectionReceive, amount, s.cfg.FaucetAddress, 0)
	s.balance += amount

	out.Raise(game.Notice{
		Source:  Source,
		Level:   game.LevelSuccess,
		Title:   "Tokens received!",
		Message: fmt.Sprintf("Received %s test tokens from faucet", amount),
	})

	return tx
}

// Reset restores the initial balance, clears the log and cancels a send in
// flight.
func (s *Sandbox) Reset() {
	var out game.Outbox
	defer out.Flush(s.rep)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel()
	s.balance = s.cfg.InitialBalance
	s.log = nil

	out.Raise(game.Notice{
		Source:  Source,
		Level:   game.LevelInfo,
		Title:   "Sandbox reset",
		Message: "All data has been reset to initial state",
	})
}

// Stop tears down a send in flight without touching the balance or log.
func (s *Sandbox) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel()
}

// =============================================================================

func (s *Sandbox) onStep(gen uint64) {
	var out game.Outbox
	defer out.Flush(s.rep)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.pending == nil {
		return
	}

	s.step++
	if s.step < len(s.cfg.Steps) {
		s.stepH = s.sched.After(s.cfg.StepDelay, func() { s.onStep(gen) })
		return
	}

	p := *s.pending
	s.record(DirectionSend, p.Amount, p.To, s.cfg.Fee)
	s.balance -= p.Amount + s.cfg.Fee

	s.stepH = nil
	s.pending = nil
	s.step = 0

	out.Raise(game.Notice{
		Source:  Source,
		Level:   game.LevelSuccess,
		Title:   "Transaction successful!",
		Message: fmt.Sprintf("Sent %s test tokens", p.Amount),
	})
}

func (s *Sandbox) cancel() {
	timer.Stop(s.stepH)
	s.stepH = nil
	s.gen++
	s.pending = nil
	s.step = 0
}

// record prepends a confirmed transaction to the log.
func (s *Sandbox) record(dir Direction, amount Amount, address string, fee Amount) Transaction {
	tx := Transaction{
		ID:        uuid.NewString(),
		Direction: dir,
		Amount:    amount,
		Address:   address,
		Name:      s.names.Lookup(address),
		Status:    StatusConfirmed,
		Timestamp: s.now().UTC(),
		Fee:       fee,
	}
	tx.Hash = hash(tx)

	s.log = append([]Transaction{tx}, s.log...)

	return tx
}

// hash fabricates a transaction hash from the record fields.
func hash(tx Transaction) string {
	tx.Hash = ""

	data, err := json.Marshal(tx)
	if err != nil {
		return hexutil.Encode(make([]byte, 32))
	}

	return hexutil.Encode(crypto.Keccak256(data))
}
