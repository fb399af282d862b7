package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// ValidateTable crawls the state graph from the initial state and reports rules
// that can never fire and an accepting state that can never be entered.
// Such programs still run; the findings only point at likely encoding mistakes.
func ValidateTable(table *domain.Table) error {
	reachable := ReachableStates(table)

	var problems []string
	for _, t := range table.Transitions() {
		if !reachable[t.From] {
			problems = append(problems, fmt.Sprintf("rule (%d, %d) starts in unreachable state %d", t.From, t.Read, t.From))
		}
	}
	if !reachable[domain.AcceptState] {
		problems = append(problems, fmt.Sprintf("accepting state %d is unreachable from state %d", domain.AcceptState, domain.InitialState))
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}

// ReachableStates returns the states the control can enter from the initial
// state, ignoring which symbols are actually on the tape.
func ReachableStates(table *domain.Table) map[domain.State]bool {
	next := make(map[domain.State][]domain.State)
	for _, t := range table.Transitions() {
		if !slices.Contains(next[t.From], t.To) {
			next[t.From] = append(next[t.From], t.To)
		}
	}

	visited := map[domain.State]bool{}
	queue := []domain.State{domain.InitialState}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, target := range next[current] {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}
	return visited
}
