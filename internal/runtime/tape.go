package runtime

import "github.com/aretw0/turing/pkg/domain"

// Tape is a double-ended growable sequence of symbols.
//
// Cells left of the origin are kept reversed in front so that growing at
// either end is an amortized append. Index 0 is always the leftmost cell.
type Tape struct {
	front []domain.Symbol // reversed: front[0] is the cell just left of back[0]
	back  []domain.Symbol
}

// NewTape materializes the initial cells. An empty input yields one blank cell.
func NewTape(cells []domain.Symbol, blank domain.Symbol) *Tape {
	back := make([]domain.Symbol, len(cells), max(len(cells), 1))
	copy(back, cells)
	if len(back) == 0 {
		back = append(back, blank)
	}
	return &Tape{back: back}
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int {
	return len(t.front) + len(t.back)
}

// At returns the symbol at index i.
func (t *Tape) At(i int) domain.Symbol {
	if i < len(t.front) {
		return t.front[len(t.front)-1-i]
	}
	return t.back[i-len(t.front)]
}

// Set writes s at index i.
func (t *Tape) Set(i int, s domain.Symbol) {
	if i < len(t.front) {
		t.front[len(t.front)-1-i] = s
		return
	}
	t.back[i-len(t.front)] = s
}

// PushFront prepends one cell, shifting every index up by one.
func (t *Tape) PushFront(s domain.Symbol) {
	t.front = append(t.front, s)
}

// PushBack appends one cell.
func (t *Tape) PushBack(s domain.Symbol) {
	t.back = append(t.back, s)
}

// Cells returns a copy of the tape from left to right.
func (t *Tape) Cells() []domain.Symbol {
	out := make([]domain.Symbol, 0, t.Len())
	for i := len(t.front) - 1; i >= 0; i-- {
		out = append(out, t.front[i])
	}
	return append(out, t.back...)
}
