package game

import (
	"errors"
	"fmt"
)

// Kind classifies a validation error.
type Kind string

// Set of validation error kinds.
const (
	KindInactive            Kind = "inactive"
	KindMissingInput        Kind = "missing-input"
	KindInsufficientBalance Kind = "insufficient-balance"
	KindFixedCell           Kind = "fixed-cell"
	KindSendInProgress      Kind = "send-in-progress"
	KindNoSelection         Kind = "no-selection"
	KindAlreadyAnswered     Kind = "already-answered"
	KindNotAnswered         Kind = "not-answered"
	KindAlreadyPlaced       Kind = "already-placed"
	KindOutOfRange          Kind = "out-of-range"
	KindHintLimit           Kind = "hint-limit"
	KindUnknownSymbol       Kind = "unknown-symbol"
	KindLocked              Kind = "locked"
	KindNotFound            Kind = "not-found"
)

// ValidationError is returned when an engine rejects input. A rejected
// operation never mutates engine state.
type ValidationError struct {
	Kind Kind
	Msg  string
}

// NewValidationError constructs a validation error of the specified kind.
func NewValidationError(kind Kind, format string, args ...any) error {
	return &ValidationError{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	return ve.Msg
}

// Is reports whether target is a validation error of the same kind, which
// lets callers write errors.Is(err, game.ErrInactive).
func (ve *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == ve.Kind
}

// Sentinel values for errors.Is comparisons by kind.
var (
	ErrInactive            = &ValidationError{Kind: KindInactive, Msg: "game is not active"}
	ErrMissingInput        = &ValidationError{Kind: KindMissingInput, Msg: "missing input"}
	ErrInsufficientBalance = &ValidationError{Kind: KindInsufficientBalance, Msg: "insufficient balance"}
	ErrFixedCell           = &ValidationError{Kind: KindFixedCell, Msg: "cell is fixed"}
	ErrSendInProgress      = &ValidationError{Kind: KindSendInProgress, Msg: "a send is already in progress"}
	ErrNoSelection         = &ValidationError{Kind: KindNoSelection, Msg: "no cell selected"}
	ErrAlreadyAnswered     = &ValidationError{Kind: KindAlreadyAnswered, Msg: "question already answered"}
	ErrNotAnswered         = &ValidationError{Kind: KindNotAnswered, Msg: "question not answered"}
	ErrAlreadyPlaced       = &ValidationError{Kind: KindAlreadyPlaced, Msg: "block already placed"}
	ErrOutOfRange          = &ValidationError{Kind: KindOutOfRange, Msg: "value out of range"}
	ErrHintLimit           = &ValidationError{Kind: KindHintLimit, Msg: "no hints left"}
	ErrUnknownSymbol       = &ValidationError{Kind: KindUnknownSymbol, Msg: "unknown symbol"}
	ErrLocked              = &ValidationError{Kind: KindLocked, Msg: "locked"}
	ErrNotFound            = &ValidationError{Kind: KindNotFound, Msg: "not found"}
)

// IsValidation checks if an error of type ValidationError exists.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// KindOf returns the kind of the validation error or an empty kind.
func KindOf(err error) Kind {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return ""
	}
	return ve.Kind
}
