package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
)

// cancelCheckInterval is how many steps Run executes between context checks.
const cancelCheckInterval = 1024

// Machine is a single-tape Turing machine bound to a shared transition table.
// A Machine is not safe for concurrent use; the table it reads is.
type Machine struct {
	table *domain.Table
	tape  *Tape
	ptr   int
	state domain.State
	steps int

	id       string
	blank    domain.Symbol
	maxSteps int
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) MachineOption {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithBlank overrides the symbol used to grow the tape.
func WithBlank(blank domain.Symbol) MachineOption {
	return func(m *Machine) {
		m.blank = blank
	}
}

// WithMaxSteps bounds Run. Zero means unlimited.
func WithMaxSteps(n int) MachineOption {
	return func(m *Machine) {
		m.maxSteps = n
	}
}

// WithID labels events and log lines emitted by the machine.
func WithID(id string) MachineOption {
	return func(m *Machine) {
		m.id = id
	}
}

// NewMachine creates a machine in the initial state with the pointer on cell 0.
func NewMachine(table *domain.Table, tape []domain.Symbol, opts ...MachineOption) *Machine {
	m := &Machine{
		table:  table,
		state:  domain.InitialState,
		blank:  domain.Blank,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.id != "" {
		m.logger = m.logger.With("machine", m.id)
	}
	m.tape = NewTape(tape, m.blank)
	return m
}

// State returns the current control state.
func (m *Machine) State() domain.State { return m.state }

// Pointer returns the head position as an index into the materialized tape.
func (m *Machine) Pointer() int { return m.ptr }

// Steps returns the number of transitions applied so far.
func (m *Machine) Steps() int { return m.steps }

// TapeLen returns the number of materialized cells.
func (m *Machine) TapeLen() int { return m.tape.Len() }

// Tape returns a copy of the tape contents.
func (m *Machine) Tape() []domain.Symbol { return m.tape.Cells() }

// Result snapshots the machine.
func (m *Machine) Result() domain.Result {
	return domain.Result{
		State:    m.state,
		Steps:    m.steps,
		Accepted: domain.IsAccepting(m.state),
		Tape:     m.tape.Cells(),
		Pointer:  m.ptr,
	}
}

// Step applies the transition for the current state and the symbol under the
// pointer. It returns false, leaving the machine untouched, when none applies.
func (m *Machine) Step(ctx context.Context) bool {
	key := domain.TransitionKey{State: m.state, Symbol: m.tape.At(m.ptr)}
	action, ok := m.table.Lookup(key)
	if !ok {
		return false
	}

	m.tape.Set(m.ptr, action.Write)
	m.state = action.Next
	grew := m.move(action.Move)
	m.steps++

	if m.hooks.OnStep != nil {
		m.hooks.OnStep(ctx, &domain.StepEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep, MachineID: m.id},
			Step:      m.steps,
			Key:       key,
			Action:    action,
			Pointer:   m.ptr,
			TapeLen:   m.tape.Len(),
			Grew:      grew,
		})
	}
	return true
}

// canStep reports whether a transition applies to the current configuration.
func (m *Machine) canStep() bool {
	_, ok := m.table.Lookup(domain.TransitionKey{State: m.state, Symbol: m.tape.At(m.ptr)})
	return ok
}

// move shifts the pointer, growing the tape by one blank cell when the pointer
// would fall off either end. It reports whether the tape grew.
func (m *Machine) move(dir domain.Direction) bool {
	target := m.ptr + dir.Delta()
	length := m.tape.Len()
	switch {
	case target < 0:
		m.tape.PushFront(m.blank)
		m.ptr = 0
		return true
	case target == length:
		m.tape.PushBack(m.blank)
		m.ptr = target
		return true
	case target > length:
		panic(&domain.InvariantViolation{Pointer: m.ptr, Target: target, Length: length})
	default:
		m.ptr = target
		return false
	}
}

// Run steps the machine until no transition applies.
// It also stops, returning the partial result with an error, when the step
// limit is reached with a transition still pending, or when ctx is done.
// The context is polled every cancelCheckInterval steps.
func (m *Machine) Run(ctx context.Context) (domain.Result, error) {
	m.logger.DebugContext(ctx, "run started", "state", m.state, "tape_len", m.tape.Len(), "max_steps", m.maxSteps)

	var err error
	for {
		if m.maxSteps > 0 && m.steps >= m.maxSteps && m.canStep() {
			err = fmt.Errorf("after %d steps: %w", m.steps, domain.ErrStepLimit)
			break
		}
		if m.steps%cancelCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				break
			}
		}
		if !m.Step(ctx) {
			break
		}
	}

	res := m.Result()
	if err != nil {
		m.logger.WarnContext(ctx, "run stopped", "state", res.State, "steps", res.Steps, "error", err)
	} else {
		m.logger.DebugContext(ctx, "run halted", "state", res.State, "steps", res.Steps, "accepted", res.Accepted)
	}

	if m.hooks.OnHalt != nil {
		m.hooks.OnHalt(ctx, &domain.HaltEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventHalt, MachineID: m.id},
			State:     res.State,
			Steps:     res.Steps,
			Accepted:  res.Accepted,
			TapeLen:   len(res.Tape),
			Err:       err,
		})
	}
	return res, err
}
