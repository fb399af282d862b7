package compiler

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Encode renders a table in the unary program format.
// Records are emitted in ascending key order, so equal tables encode identically.
func Encode(table *domain.Table) (string, error) {
	var sb strings.Builder
	for i, t := range table.Transitions() {
		if t.From == 0 || t.Read == 0 || t.To == 0 || t.Write == 0 || (t.Move != domain.Left && t.Move != domain.Right) {
			return "", fmt.Errorf("encode (%d, %d): %w", t.From, t.Read, domain.ErrUnencodable)
		}
		if i > 0 {
			sb.WriteString(Separator)
		}
		writeRecord(&sb, t)
	}
	return sb.String(), nil
}

func writeRecord(sb *strings.Builder, t domain.Transition) {
	sb.WriteString(strings.Repeat("0", int(t.From)))
	sb.WriteByte('1')
	sb.WriteString(strings.Repeat("0", int(t.Read)))
	sb.WriteByte('1')
	sb.WriteString(strings.Repeat("0", int(t.To)))
	sb.WriteByte('1')
	sb.WriteString(strings.Repeat("0", int(t.Write)))
	sb.WriteByte('1')
	switch t.Move {
	case domain.Left:
		sb.WriteString("0")
	case domain.Right:
		sb.WriteString("00")
	}
}
