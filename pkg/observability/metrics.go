package observability

import (
	"context"
	"errors"
	"strconv"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by the engine's lifecycle hooks.
type Metrics struct {
	Steps      prometheus.Counter
	TapeGrowth *prometheus.CounterVec
	Halts      *prometheus.CounterVec
	RunSteps   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turing_steps_total",
			Help: "Total number of transitions applied",
		}),
		TapeGrowth: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_tape_growth_total",
				Help: "Cells materialized at either end of the tape",
			},
			[]string{"end"},
		),
		Halts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_runs_total",
				Help: "Finished runs by outcome and final state",
			},
			[]string{"outcome", "state"},
		),
		RunSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "turing_run_steps",
			Help:    "Steps taken per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Steps, m.TapeGrowth, m.Halts, m.RunSteps)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			m.Steps.Inc()
			if e.Grew {
				end := "right"
				if e.Pointer == 0 {
					end = "left"
				}
				m.TapeGrowth.WithLabelValues(end).Inc()
			}
		},
		OnHalt: func(_ context.Context, e *domain.HaltEvent) {
			m.Halts.WithLabelValues(Outcome(e), StateLabel(e.State)).Inc()
			m.RunSteps.Observe(float64(e.Steps))
		},
	}
}

// Outcome classifies a finished run as accepted, rejected, step_limit or canceled.
func Outcome(e *domain.HaltEvent) string {
	switch {
	case errors.Is(e.Err, domain.ErrStepLimit):
		return "step_limit"
	case e.Err != nil:
		return "canceled"
	case e.Accepted:
		return "accepted"
	default:
		return "rejected"
	}
}

// StateLabel formats a state for use as a label value.
func StateLabel(s domain.State) string {
	return strconv.FormatUint(uint64(s), 10)
}
