package observability_test

import (
	"context"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	// (1,1)->(1,1,L) (1,11)->(2,11,R)
	interp, err := turing.New("010101010110100000000000100100000000000100", turing.WithLifecycleHooks(m.Hooks()))
	require.NoError(t, err)

	_, err = interp.Run(context.Background(), "0")
	require.NoError(t, err)
	_, err = interp.Run(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Steps))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TapeGrowth.WithLabelValues("left")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TapeGrowth.WithLabelValues("right")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Halts.WithLabelValues("accepted", "2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Halts.WithLabelValues("rejected", "1")))

	families, err := reg.Gather()
	require.NoError(t, err)
	var observed uint64
	for _, mf := range families {
		if mf.GetName() == "turing_run_steps" {
			observed = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(2), observed)
}

func TestMetrics_StepLimit(t *testing.T) {
	m := observability.NewMetrics(nil)

	interp, err := turing.New("01010101001101000000000001010100110100100100100",
		turing.WithLifecycleHooks(m.Hooks()),
		turing.WithMaxSteps(10),
	)
	require.NoError(t, err)

	_, err = interp.Run(context.Background(), "0")
	require.ErrorIs(t, err, domain.ErrStepLimit)

	assert.Equal(t, 10.0, testutil.ToFloat64(m.Steps))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.TapeGrowth.WithLabelValues("right")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Halts.WithLabelValues("step_limit", "1")))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "accepted", observability.Outcome(&domain.HaltEvent{Accepted: true}))
	assert.Equal(t, "rejected", observability.Outcome(&domain.HaltEvent{}))
	assert.Equal(t, "canceled", observability.Outcome(&domain.HaltEvent{Err: context.Canceled}))
	assert.Equal(t, "step_limit", observability.Outcome(&domain.HaltEvent{Err: domain.ErrStepLimit}))
}

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	observability.NewMetrics(reg)

	assert.Panics(t, func() { observability.NewMetrics(reg) }, "duplicate registration must fail")
}
