package compiler_test

import (
	"errors"
	"testing"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTape(t *testing.T) {
	tape, err := compiler.DecodeTape("0001000", domain.Blank)
	require.NoError(t, err)
	assert.Equal(t, []domain.Symbol{1, 1, 1, 2, 1, 1, 1}, tape)
}

func TestDecodeTape_Empty(t *testing.T) {
	tape, err := compiler.DecodeTape(" ", domain.Blank)
	require.NoError(t, err)
	assert.Empty(t, tape)
}

func TestDecodeTape_Errors(t *testing.T) {
	tests := []struct {
		name  string
		tape  string
		blank domain.Symbol
		pos   int
		want  error
	}{
		{"Letter", "01a1", domain.Blank, 2, domain.ErrInvalidTapeSymbol},
		{"Interior Space", "0 1", domain.Blank, 1, domain.ErrInvalidTapeSymbol},
		{"Collides With Blank Three", "0120", 3, 2, domain.ErrBlankCollision},
		{"Collides With Blank Ten", "19", 10, 1, domain.ErrBlankCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compiler.DecodeTape(tt.tape, tt.blank)
			require.ErrorIs(t, err, tt.want)

			var tapeErr *domain.TapeError
			require.True(t, errors.As(err, &tapeErr))
			assert.Equal(t, tt.pos, tapeErr.Position)
		})
	}
}

func TestDecodeTape_DefaultBlankAcceptsEveryDigit(t *testing.T) {
	tape, err := compiler.DecodeTape("0123456789", domain.Blank)
	require.NoError(t, err)
	assert.Equal(t, []domain.Symbol{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, tape)
}
