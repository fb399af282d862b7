package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/logging"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:           "turing",
	Short:         "Turing is an interpreter for unary-encoded Turing machines",
	Long:          `Turing decodes single-tape machines written as runs of zeros separated by ones and runs them until they halt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

func loggerFrom(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// useColor reports whether stdout is a terminal and color was not disabled.
func useColor(cmd *cobra.Command) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return !noColor && term.IsTerminal(int(os.Stdout.Fd()))
}

func profileFor(cmd *cobra.Command) termenv.Profile {
	if !useColor(cmd) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
