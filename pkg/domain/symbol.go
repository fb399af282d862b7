package domain

import "fmt"

// Symbol identifies a member of the tape alphabet.
type Symbol uint

// Blank is the default EMPTY_WORD symbol used to extend the tape.
// Tape digit d maps to symbol d+1, so input tapes only hold symbols 1 to 10
// and Blank sits just past them.
const Blank Symbol = 11

// SymbolFromDigit maps an input digit (0-9) to its tape symbol.
func SymbolFromDigit(d byte) Symbol {
	return Symbol(d) + 1
}

// State identifies a control state of the machine.
type State uint

const (
	InitialState State = 1 // Every run starts here
	AcceptState  State = 2 // Halting here means "accept"
)

// Direction is the head movement applied after a write.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Delta returns the pointer offset for the direction.
func (d Direction) Delta() int {
	return int(d)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
