package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [machines.yaml]",
	Short: "Run machines from a definition file or from flags",
	Long: `Runs every machine listed in a YAML or JSON definition file (or only the one
selected with --name), or a single machine given with --program and --tape.
Press Ctrl+C to stop a machine that does not halt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machines, err := machinesFrom(cmd, args)
		if err != nil {
			return err
		}

		logger, err := loggerFrom(cmd)
		if err != nil {
			return err
		}

		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		showMetrics, _ := cmd.Flags().GetBool("metrics")
		showGraph, _ := cmd.Flags().GetBool("graph")

		opts := cli.RunOptions{
			MaxSteps: maxSteps,
			Profile:  profileFor(cmd),
			Logger:   logger,
			Graph:    showGraph,
		}
		reg := prometheus.NewRegistry()
		if showMetrics {
			opts.Metrics = observability.NewMetrics(reg)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runErr := cli.RunMachines(ctx, cmd.OutOrStdout(), machines, opts)
		if showMetrics {
			if err := cli.WriteMetrics(cmd.OutOrStdout(), reg); err != nil {
				return err
			}
		}
		return runErr
	},
}

func machinesFrom(cmd *cobra.Command, args []string) ([]config.Machine, error) {
	program, _ := cmd.Flags().GetString("program")
	tape, _ := cmd.Flags().GetString("tape")

	if len(args) == 0 {
		if program == "" {
			return nil, fmt.Errorf("either a definition file or --program is required")
		}
		return []config.Machine{{Name: "inline", Program: program, Tape: tape}}, nil
	}
	if program != "" {
		return nil, fmt.Errorf("--program cannot be combined with a definition file")
	}

	machines, err := config.LoadMachines(args[0])
	if err != nil {
		return nil, err
	}
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		return machines, nil
	}
	m, ok := config.Find(machines, name)
	if !ok {
		return nil, fmt.Errorf("machine %q not found in %s", name, args[0])
	}
	return []config.Machine{m}, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("name", "", "Run only the named machine from the file")
	runCmd.Flags().String("program", "", "Inline program text")
	runCmd.Flags().String("tape", "", "Inline tape (decimal digits)")
	runCmd.Flags().Int("max-steps", 0, "Stop after this many steps (0 = use the machine's limit)")
	runCmd.Flags().Bool("metrics", false, "Print Prometheus metrics after the run")
	runCmd.Flags().Bool("graph", false, "Print a Mermaid diagram with the final state highlighted")
}
