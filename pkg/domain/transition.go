package domain

import (
	"cmp"
	"slices"
)

// TransitionKey is the pair the engine looks up on every step.
type TransitionKey struct {
	State  State
	Symbol Symbol
}

// Compare orders keys by state, then symbol.
func (k TransitionKey) Compare(other TransitionKey) int {
	if c := cmp.Compare(k.State, other.State); c != 0 {
		return c
	}
	return cmp.Compare(k.Symbol, other.Symbol)
}

// TransitionStep is the action taken when a key matches.
type TransitionStep struct {
	Next  State
	Write Symbol
	Move  Direction
}

// Transition is a single rule of the machine.
type Transition struct {
	From  State
	Read  Symbol
	To    State
	Write Symbol
	Move  Direction
}

// Key returns the lookup key of the rule.
func (t Transition) Key() TransitionKey {
	return TransitionKey{State: t.From, Symbol: t.Read}
}

// Step returns the action of the rule.
func (t Transition) Step() TransitionStep {
	return TransitionStep{Next: t.To, Write: t.Write, Move: t.Move}
}

// Table maps transition keys to their actions.
// A Table is immutable once built and safe to share between machines.
type Table struct {
	steps map[TransitionKey]TransitionStep
}

// NewTable folds the transitions into a table.
// When two transitions share a key, the later one wins.
func NewTable(transitions ...Transition) *Table {
	steps := make(map[TransitionKey]TransitionStep, len(transitions))
	for _, t := range transitions {
		steps[t.Key()] = t.Step()
	}
	return &Table{steps: steps}
}

// Lookup returns the action for key, if any.
func (t *Table) Lookup(key TransitionKey) (TransitionStep, bool) {
	step, ok := t.steps[key]
	return step, ok
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.steps)
}

// Transitions returns the rules of the table in ascending key order.
func (t *Table) Transitions() []Transition {
	keys := make([]TransitionKey, 0, len(t.steps))
	for k := range t.steps {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, TransitionKey.Compare)

	out := make([]Transition, 0, len(keys))
	for _, k := range keys {
		s := t.steps[k]
		out = append(out, Transition{From: k.State, Read: k.Symbol, To: s.Next, Write: s.Write, Move: s.Move})
	}
	return out
}

// Targets reports whether any rule moves the machine into state s.
func (t *Table) Targets(s State) bool {
	for _, step := range t.steps {
		if step.Next == s {
			return true
		}
	}
	return false
}

// Equal reports whether both tables hold the same rules.
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}
	for k, s := range t.steps {
		if o, ok := other.steps[k]; !ok || o != s {
			return false
		}
	}
	return true
}
