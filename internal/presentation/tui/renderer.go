package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// TableMarkdown lists the rules of a table as a Markdown table.
func TableMarkdown(table *domain.Table, blank domain.Symbol) string {
	var sb strings.Builder
	sb.WriteString("| from | read | to | write | move |\n")
	sb.WriteString("|---:|:---:|---:|:---:|:---:|\n")
	for _, t := range table.Transitions() {
		fmt.Fprintf(&sb, "| %d | %s | %d | %s | %s |\n",
			t.From, Glyph(t.Read, blank), t.To, Glyph(t.Write, blank), t.Move)
	}
	return sb.String()
}

// NewRenderer returns a function that renders markdown using glamour.
// With color disabled it uses the plain "notty" style.
func NewRenderer(color bool) (func(string) (string, error), error) {
	opt := glamour.WithStandardStyle("notty")
	if color {
		opt = glamour.WithAutoStyle() // Automatically detect light/dark background
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
