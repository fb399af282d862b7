package tui

import (
	"strconv"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/muesli/termenv"
)

// Glyph returns the printable form of a symbol: the input digit it encodes,
// "_" for blank, or "<n>" for symbols outside the digit range.
func Glyph(s, blank domain.Symbol) string {
	switch {
	case s == blank:
		return "_"
	case s >= 1 && s <= 10:
		return strconv.Itoa(int(s) - 1)
	default:
		return "<" + strconv.FormatUint(uint64(s), 10) + ">"
	}
}

// RenderTape prints the tape on one line with the head cell bracketed and,
// on colour profiles, highlighted.
func RenderTape(p termenv.Profile, tape []domain.Symbol, pointer int, blank domain.Symbol) string {
	var sb strings.Builder
	for i, s := range tape {
		g := Glyph(s, blank)
		if i != pointer {
			sb.WriteString(g)
			continue
		}
		sb.WriteString(p.String("[" + g + "]").Reverse().Bold().String())
	}
	return sb.String()
}

// RenderStatus summarizes a result on one line.
func RenderStatus(p termenv.Profile, res domain.Result) string {
	verdict := p.String("rejected").Foreground(p.Color("#fb7185"))
	if res.Accepted {
		verdict = p.String("accepted").Foreground(p.Color("#4ade80"))
	}
	return "state=" + strconv.FormatUint(uint64(res.State), 10) +
		" steps=" + strconv.Itoa(res.Steps) +
		" " + verdict.String()
}
