package compiler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Separator splits a program into transition records.
const Separator = "11"

// recordPattern captures the five zero runs of a record:
// state-from, symbol-read, state-to, symbol-written, direction.
var recordPattern = regexp.MustCompile(`^(0+)1(0+)1(0+)1(0+)1(0+)$`)

// Parser is responsible for converting program text into a transition table.
type Parser struct {
	strictKeys bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithStrictKeys makes duplicate (state, symbol) keys a decode error
// instead of letting the later record win.
func WithStrictKeys() ParserOption {
	return func(p *Parser) {
		p.strictKeys = true
	}
}

// NewParser creates a new parser instance.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Decode parses program text with a default parser.
func Decode(program string) (*domain.Table, error) {
	return NewParser().Parse(program)
}

// Parse decodes program text into a table.
// Surrounding whitespace is ignored and a single trailing separator is tolerated.
// On any error no table is returned.
func (p *Parser) Parse(program string) (*domain.Table, error) {
	program = strings.TrimSpace(program)
	if program == "" {
		return nil, &domain.DecodeError{Index: -1, Err: domain.ErrEmptyProgram}
	}

	records := strings.Split(program, Separator)
	if last := len(records) - 1; last > 0 && records[last] == "" {
		records = records[:last]
	}

	transitions := make([]domain.Transition, 0, len(records))
	seen := make(map[domain.TransitionKey]int, len(records))
	for i, rec := range records {
		t, err := parseRecord(rec)
		if err != nil {
			return nil, &domain.DecodeError{Index: i, Record: rec, Err: err}
		}
		if prev, dup := seen[t.Key()]; dup && p.strictKeys {
			return nil, &domain.DecodeError{
				Index:  i,
				Record: rec,
				Err:    fmt.Errorf("%w: (%d, %d) already defined by record %d", domain.ErrDuplicateKey, t.From, t.Read, prev),
			}
		}
		seen[t.Key()] = i
		transitions = append(transitions, t)
	}

	table := domain.NewTable(transitions...)
	if !table.Targets(domain.AcceptState) {
		return nil, &domain.DecodeError{Index: -1, Err: domain.ErrNoAcceptingTransition}
	}
	return table, nil
}

func parseRecord(rec string) (domain.Transition, error) {
	if rec == "" {
		return domain.Transition{}, domain.ErrEmptyRecord
	}
	m := recordPattern.FindStringSubmatch(rec)
	if m == nil {
		return domain.Transition{}, domain.ErrMalformedRecord
	}

	var move domain.Direction
	switch len(m[5]) {
	case 1:
		move = domain.Left
	case 2:
		move = domain.Right
	default:
		return domain.Transition{}, fmt.Errorf("%w: got %d zeros", domain.ErrBadDirection, len(m[5]))
	}

	return domain.Transition{
		From:  domain.State(len(m[1])),
		Read:  domain.Symbol(len(m[2])),
		To:    domain.State(len(m[3])),
		Write: domain.Symbol(len(m[4])),
		Move:  move,
	}, nil
}
