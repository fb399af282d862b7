package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
)

// Overlay contains run data to visualize on the graph.
type Overlay struct {
	Current domain.State
}

// GenerateMermaid produces a Mermaid flowchart of the state graph of a table.
// It applies semantic styling:
// - Initial state: ((Circle))
// - Accepting state: (((Double circle)))
// - Other states: [Rectangle]
// Each edge is labelled "read/write move". The overlay, if provided, marks the
// state a run ended in.
func GenerateMermaid(table *domain.Table, blank domain.Symbol, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	declared := map[domain.State]bool{}
	declare := func(s domain.State) {
		if declared[s] {
			return
		}
		declared[s] = true

		opener, closer := "[", "]"
		switch s {
		case domain.InitialState:
			opener, closer = "((", "))"
		case domain.AcceptState:
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"q%d\"%s\n", nodeID(s), opener, s, closer)
	}

	declare(domain.InitialState)
	for _, t := range table.Transitions() {
		declare(t.From)
		declare(t.To)
	}

	for _, t := range table.Transitions() {
		label := fmt.Sprintf("%s/%s %s", tui.Glyph(t.Read, blank), tui.Glyph(t.Write, blank), t.Move)
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", nodeID(t.From), label, nodeID(t.To))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		fmt.Fprintf(&sb, "    class %s current;\n", nodeID(overlay.Current))
	}

	return sb.String()
}

func nodeID(s domain.State) string {
	return fmt.Sprintf("q%d", s)
}
