package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <program>",
	Short: "Decode a program and print its transition table",
	Long: `Decodes a program and prints its rules as a table, as a Mermaid flowchart
(--format mermaid) or in canonical program form (--format program).
With --lint, rules in unreachable states are reported as an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		lint, _ := cmd.Flags().GetBool("lint")
		format, _ := cmd.Flags().GetString("format")

		return cli.DecodeProgram(cmd.OutOrStdout(), args[0], cli.DecodeOptions{
			Strict: strict,
			Color:  useColor(cmd),
			Lint:   lint,
			Format: format,
		})
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().Bool("strict", false, "Reject programs that define a (state, symbol) key twice")
	decodeCmd.Flags().Bool("lint", false, "Fail on rules that can never fire")
	decodeCmd.Flags().StringP("format", "f", cli.FormatTable, "Output format (table, mermaid, program)")
}
