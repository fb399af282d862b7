package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/domain"
)

// Output formats accepted by DecodeProgram.
const (
	FormatTable   = "table"
	FormatMermaid = "mermaid"
	FormatProgram = "program"
)

// DecodeOptions configures DecodeProgram.
type DecodeOptions struct {
	Strict bool
	Color  bool
	Lint   bool
	Format string
}

// DecodeProgram decodes program and writes its transition table to w: as a
// glamour-rendered Markdown table, a Mermaid flowchart, or canonical program text.
// With Lint set, unreachable rules or an unreachable accepting state fail the call
// after the output is written.
func DecodeProgram(w io.Writer, program string, opts DecodeOptions) error {
	var interpOpts []turing.Option
	if opts.Strict {
		interpOpts = append(interpOpts, turing.WithStrictKeys())
	}
	interp, err := turing.New(program, interpOpts...)
	if err != nil {
		return err
	}

	var out string
	switch opts.Format {
	case "", FormatTable:
		render, err := tui.NewRenderer(opts.Color)
		if err != nil {
			return err
		}
		out, err = render(tui.TableMarkdown(interp.Table(), domain.Blank))
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	case FormatMermaid:
		out = graph.GenerateMermaid(interp.Table(), domain.Blank, nil)
	case FormatProgram:
		text, err := interp.Encode()
		if err != nil {
			return err
		}
		out = text + "\n"
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}

	if _, err := fmt.Fprint(w, out); err != nil {
		return err
	}
	if opts.Lint {
		return validator.ValidateTable(interp.Table())
	}
	return nil
}
