package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStep EventType = "step"
	EventHalt EventType = "halt"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	MachineID string    `json:"machine_id,omitempty"`
}

// StepEvent describes a transition that was just applied.
type StepEvent struct {
	EventBase
	Step    int            `json:"step"`
	Key     TransitionKey  `json:"key"`
	Action  TransitionStep `json:"action"`
	Pointer int            `json:"pointer"`
	TapeLen int            `json:"tape_len"`
	Grew    bool           `json:"grew"`
}

// HaltEvent describes the end of a run.
type HaltEvent struct {
	EventBase
	State    State `json:"state"`
	Steps    int   `json:"steps"`
	Accepted bool  `json:"accepted"`
	TapeLen  int   `json:"tape_len"`
	Err      error `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnStep func(context.Context, *StepEvent)
	OnHalt func(context.Context, *HaltEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStep: chain(h.OnStep, other.OnStep),
		OnHalt: chain(h.OnHalt, other.OnHalt),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
