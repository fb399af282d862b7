package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/muesli/termenv"
)

// RunOptions configures RunMachines.
type RunOptions struct {
	// MaxSteps overrides each machine's own limit when positive.
	MaxSteps int
	Profile  termenv.Profile
	Logger   *slog.Logger
	Metrics  *observability.Metrics
	// Graph appends a Mermaid diagram of each machine with its final state marked.
	Graph bool
}

// RunMachines executes each machine in order and writes its outcome to w.
// A failing machine does not stop the others; all failures are returned joined.
func RunMachines(ctx context.Context, w io.Writer, machines []config.Machine, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	var errs []error
	for _, m := range machines {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := runMachine(ctx, w, m, opts, logger); err != nil {
			logger.Error("machine failed", "machine", m.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", m.Name, err))
		}
	}
	return errors.Join(errs...)
}

func runMachine(ctx context.Context, w io.Writer, m config.Machine, opts RunOptions, logger *slog.Logger) error {
	maxSteps := m.MaxSteps
	if opts.MaxSteps > 0 {
		maxSteps = opts.MaxSteps
	}

	interpOpts := []turing.Option{
		turing.WithName(m.Name),
		turing.WithLogger(logger),
		turing.WithMaxSteps(maxSteps),
	}
	if opts.Metrics != nil {
		interpOpts = append(interpOpts, turing.WithLifecycleHooks(opts.Metrics.Hooks()))
	}

	interp, err := turing.New(m.Program, interpOpts...)
	if err != nil {
		return err
	}

	res, runErr := interp.Run(ctx, m.Tape)
	if runErr != nil && !stoppedEarly(runErr) {
		// Tape errors leave nothing to report.
		return runErr
	}

	fmt.Fprintf(w, "%s: %s\n", m.Name, tui.RenderStatus(opts.Profile, res))
	fmt.Fprintf(w, "  %s\n", tui.RenderTape(opts.Profile, res.Tape, res.Pointer, domain.Blank))
	if opts.Graph {
		fmt.Fprint(w, graph.GenerateMermaid(interp.Table(), domain.Blank, &graph.Overlay{Current: res.State}))
	}
	return runErr
}

// stoppedEarly reports whether err interrupted a run that still has a
// partial result worth printing.
func stoppedEarly(err error) bool {
	return errors.Is(err, domain.ErrStepLimit) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
