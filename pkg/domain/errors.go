package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyProgram is returned when the program text holds no records.
	ErrEmptyProgram = errors.New("empty program")

	// ErrEmptyRecord is returned for an empty record that is not the single trailing one.
	ErrEmptyRecord = errors.New("empty transition record")

	// ErrMalformedRecord is returned when a record does not match the five-field pattern.
	ErrMalformedRecord = errors.New("record does not match 0+10+10+10+10+")

	// ErrBadDirection is returned when the direction field is not one or two zeros.
	ErrBadDirection = errors.New("direction must be 0 (left) or 00 (right)")

	// ErrDuplicateKey is returned in strict mode when two records share a key.
	ErrDuplicateKey = errors.New("duplicate transition key")

	// ErrNoAcceptingTransition is returned when no rule ever enters the accepting state.
	ErrNoAcceptingTransition = errors.New("no transition enters the accepting state")

	// ErrInvalidTapeSymbol is returned for a tape character that is not a decimal digit.
	ErrInvalidTapeSymbol = errors.New("tape symbol must be a decimal digit")

	// ErrBlankCollision is returned when a tape digit maps onto the blank symbol.
	ErrBlankCollision = errors.New("tape digit collides with the blank symbol")

	// ErrUnencodable is returned when a rule uses state or symbol 0, which has no unary form.
	ErrUnencodable = errors.New("state and symbol must be at least 1 to encode")

	// ErrStepLimit is returned when a run stops at its configured step limit.
	ErrStepLimit = errors.New("step limit reached")
)

// DecodeError identifies the record that made a program fail to decode.
// Index is -1 for failures that concern the program as a whole.
type DecodeError struct {
	Index  int
	Record string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode program: %v", e.Err)
	}
	return fmt.Sprintf("decode record %d (%q): %v", e.Index, e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TapeError identifies the character that made a tape fail to decode.
type TapeError struct {
	Position int
	Char     byte
	Err      error
}

func (e *TapeError) Error() string {
	return fmt.Sprintf("decode tape at %d (%q): %v", e.Position, e.Char, e.Err)
}

func (e *TapeError) Unwrap() error {
	return e.Err
}

// InvariantViolation reports a pointer move outside the single-cell growth bound.
// It signals a defect in the engine and is raised with panic, never returned.
type InvariantViolation struct {
	Pointer int
	Target  int
	Length  int
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("tape invariant violated: pointer %d -> %d on tape of length %d", e.Pointer, e.Target, e.Length)
}
