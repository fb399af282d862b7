package turing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
)

// Interpreter is the high-level entry point for the library.
// It holds a decoded transition table and creates machines that share it.
type Interpreter struct {
	table      *domain.Table
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	blank      domain.Symbol
	maxSteps   int
	strictKeys bool
	Name       string
}

// Option defines a functional option for configuring the Interpreter.
type Option func(*Interpreter)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(i *Interpreter) {
		i.hooks = i.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithMaxSteps caps every run at n steps. Zero (the default) means unlimited.
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) {
		i.maxSteps = n
	}
}

// WithBlank sets the symbol used for unwritten cells (default domain.Blank).
// Tape digits that map onto it are rejected.
func WithBlank(blank domain.Symbol) Option {
	return func(i *Interpreter) {
		i.blank = blank
	}
}

// WithStrictKeys rejects programs that define the same (state, symbol) key twice.
func WithStrictKeys() Option {
	return func(i *Interpreter) {
		i.strictKeys = true
	}
}

// WithName labels the interpreter in logs and events.
func WithName(name string) Option {
	return func(i *Interpreter) {
		i.Name = name
	}
}

// New decodes program and returns an interpreter for it.
func New(program string, opts ...Option) (*Interpreter, error) {
	i := newInterpreter(opts)

	var parserOpts []compiler.ParserOption
	if i.strictKeys {
		parserOpts = append(parserOpts, compiler.WithStrictKeys())
	}
	table, err := compiler.NewParser(parserOpts...).Parse(program)
	if err != nil {
		return nil, err
	}
	i.table = table

	i.logger.Debug("program decoded", "name", i.Name, "transitions", table.Len())
	return i, nil
}

// NewFromTable returns an interpreter for an already built table.
// The table is not checked for an accepting transition.
func NewFromTable(table *domain.Table, opts ...Option) *Interpreter {
	i := newInterpreter(opts)
	i.table = table
	return i
}

func newInterpreter(opts []Option) *Interpreter {
	i := &Interpreter{blank: domain.Blank}
	for _, opt := range opts {
		opt(i)
	}

	// Ensure logger is initialized so the runtime never sees nil.
	if i.logger == nil {
		i.logger = logging.NewNop()
	}
	return i
}

// Table returns the decoded transition table.
func (i *Interpreter) Table() *domain.Table {
	return i.table
}

// Encode renders the table back into program text.
func (i *Interpreter) Encode() (string, error) {
	return compiler.Encode(i.table)
}

// NewMachine decodes tape and returns a machine positioned on its first cell.
func (i *Interpreter) NewMachine(tape string) (*runtime.Machine, error) {
	cells, err := compiler.DecodeTape(tape, i.blank)
	if err != nil {
		return nil, err
	}
	return runtime.NewMachine(i.table, cells,
		runtime.WithID(i.Name),
		runtime.WithBlank(i.blank),
		runtime.WithMaxSteps(i.maxSteps),
		runtime.WithLifecycleHooks(i.hooks),
		runtime.WithLogger(i.logger),
	), nil
}

// Run executes the program on tape until it halts.
// With a step limit or a cancellable ctx the partial result is returned
// alongside the error.
func (i *Interpreter) Run(ctx context.Context, tape string) (domain.Result, error) {
	m, err := i.NewMachine(tape)
	if err != nil {
		return domain.Result{}, fmt.Errorf("invalid tape: %w", err)
	}
	return m.Run(ctx)
}
