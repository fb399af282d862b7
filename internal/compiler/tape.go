package compiler

import (
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// DecodeTape maps each decimal digit d of text to symbol d+1.
// Surrounding whitespace is ignored. A digit whose symbol equals blank is
// rejected so that blank cells stay distinguishable from input.
func DecodeTape(text string, blank domain.Symbol) ([]domain.Symbol, error) {
	text = strings.TrimSpace(text)
	tape := make([]domain.Symbol, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return nil, &domain.TapeError{Position: i, Char: c, Err: domain.ErrInvalidTapeSymbol}
		}
		sym := domain.SymbolFromDigit(c - '0')
		if sym == blank {
			return nil, &domain.TapeError{Position: i, Char: c, Err: domain.ErrBlankCollision}
		}
		tape = append(tape, sym)
	}
	return tape, nil
}
