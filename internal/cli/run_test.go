package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMachines_Examples(t *testing.T) {
	machines, err := config.LoadMachines("../../examples/machines.yaml")
	require.NoError(t, err)

	var out bytes.Buffer
	err = cli.RunMachines(context.Background(), &out, machines, cli.RunOptions{Profile: termenv.Ascii})

	// Only the non-halting sample fails, on its step limit.
	require.ErrorIs(t, err, domain.ErrStepLimit)
	assert.Contains(t, err.Error(), "forever:")

	text := out.String()
	assert.Contains(t, text, "scan-right: state=2 steps=5 accepted\n  011[0]_\n")
	assert.Contains(t, text, "starts-with-one: state=2 steps=1 accepted\n  1[0]\n")
	assert.Contains(t, text, "starts-with-one-rejects: state=1 steps=0 rejected\n  [0]1\n")
	assert.Contains(t, text, "walk-left: state=2 steps=2 accepted\n  _[0]\n")
	assert.Contains(t, text, "forever: state=1 steps=500 rejected\n")
}

func TestRunMachines_MaxStepsOverride(t *testing.T) {
	machines := []config.Machine{{
		Name:     "forever",
		Program:  "01010101001101000000000001010100110100100100100",
		Tape:     "0",
		MaxSteps: 500,
	}}

	var out bytes.Buffer
	err := cli.RunMachines(context.Background(), &out, machines, cli.RunOptions{MaxSteps: 3, Profile: termenv.Ascii})
	require.ErrorIs(t, err, domain.ErrStepLimit)
	assert.Equal(t, "forever: state=1 steps=3 rejected\n  000[_]\n", out.String())
}

func TestRunMachines_ContinuesAfterFailure(t *testing.T) {
	machines := []config.Machine{
		{Name: "broken", Program: "0100100010100"},
		{Name: "bad-tape", Program: "0100100100100", Tape: "2x"},
		{Name: "ok", Program: "0100100100100", Tape: "1"},
	}

	var out bytes.Buffer
	err := cli.RunMachines(context.Background(), &out, machines, cli.RunOptions{Profile: termenv.Ascii})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAcceptingTransition)
	assert.ErrorIs(t, err, domain.ErrInvalidTapeSymbol)
	assert.Equal(t, "ok: state=2 steps=1 accepted\n  1[_]\n", out.String())
}

func TestRunMachines_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	machines := []config.Machine{{Name: "ok", Program: "0100100100100", Tape: "1"}}
	var out bytes.Buffer
	err := cli.RunMachines(ctx, &out, machines, cli.RunOptions{Profile: termenv.Ascii})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRunMachines_Graph(t *testing.T) {
	machines := []config.Machine{
		{Name: "accepts", Program: "0100100100100", Tape: "1"},
		{Name: "rejects", Program: "0100100100100", Tape: "0"},
	}

	var out bytes.Buffer
	require.NoError(t, cli.RunMachines(context.Background(), &out, machines, cli.RunOptions{Profile: termenv.Ascii, Graph: true}))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "graph LR\n"))
	assert.Contains(t, text, "accepts: state=2 steps=1 accepted\n  1[_]\ngraph LR\n")
	assert.Contains(t, text, "class q2 current;")
	assert.Contains(t, text, "class q1 current;")
}

// expiringContext reports no error on its first check and a passed deadline
// afterwards, so the deadline lands inside the run.
type expiringContext struct {
	context.Context
	checks int
}

func (c *expiringContext) Err() error {
	c.checks++
	if c.checks > 1 {
		return context.DeadlineExceeded
	}
	return nil
}

func TestRunMachines_DeadlineKeepsPartialResult(t *testing.T) {
	ctx := &expiringContext{Context: context.Background()}
	machines := []config.Machine{{
		Name:    "forever",
		Program: "01010101001101000000000001010100110100100100100",
		Tape:    "0",
	}}

	var out bytes.Buffer
	err := cli.RunMachines(ctx, &out, machines, cli.RunOptions{Profile: termenv.Ascii})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "forever: state=1 steps=0 rejected\n  [0]\n", out.String())
}

func TestRunMachines_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	machines := []config.Machine{{Name: "ok", Program: "0100100100100", Tape: "1"}}

	var out bytes.Buffer
	err := cli.RunMachines(context.Background(), &out, machines, cli.RunOptions{
		Profile: termenv.Ascii,
		Metrics: observability.NewMetrics(reg),
	})
	require.NoError(t, err)

	var metrics bytes.Buffer
	require.NoError(t, cli.WriteMetrics(&metrics, reg))
	assert.Contains(t, metrics.String(), "turing_steps_total 1")
	assert.Contains(t, metrics.String(), `turing_runs_total{outcome="accepted",state="2"} 1`)
}

func TestDecodeProgram(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cli.DecodeProgram(&out, "01010101001101001010010011010000000000010010000000000010", cli.DecodeOptions{}))

	text := out.String()
	assert.Contains(t, text, "from")
	assert.Contains(t, text, "move")
	assert.Contains(t, text, "L")
	assert.Equal(t, 2, strings.Count(text, "R"), text)
}

func TestDecodeProgram_Formats(t *testing.T) {
	// Surrounding whitespace and a trailing separator are normalized away.
	program := " 0100100100100" + "11\n"

	var out bytes.Buffer
	require.NoError(t, cli.DecodeProgram(&out, program, cli.DecodeOptions{Format: cli.FormatProgram}))
	assert.Equal(t, "0100100100100\n", out.String())

	out.Reset()
	require.NoError(t, cli.DecodeProgram(&out, program, cli.DecodeOptions{Format: cli.FormatMermaid}))
	assert.Contains(t, out.String(), `q1 -- "1/1 R" --> q2`)

	err := cli.DecodeProgram(&out, program, cli.DecodeOptions{Format: "svg"})
	assert.ErrorContains(t, err, `unknown format "svg"`)
}

func TestDecodeProgram_Strict(t *testing.T) {
	var out bytes.Buffer
	err := cli.DecodeProgram(&out, "01001001001001101001001010", cli.DecodeOptions{Strict: true})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.Empty(t, out.String())
}

func TestDecodeProgram_Lint(t *testing.T) {
	// (1,2)->(2,2,R) plus (4,1)->(2,1,R), which no rule ever enters.
	program := "0100100100100" + "11" + "00001010010100"

	var out bytes.Buffer
	require.NoError(t, cli.DecodeProgram(&out, program, cli.DecodeOptions{Format: cli.FormatProgram}))

	out.Reset()
	err := cli.DecodeProgram(&out, program, cli.DecodeOptions{Format: cli.FormatProgram, Lint: true})
	assert.ErrorContains(t, err, "unreachable state 4")
	assert.NotEmpty(t, out.String())
}
