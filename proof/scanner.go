// Package proof implements the two parser state machines from spec §4.4:
// the DIMACS CNF reader and the LPR proof reader. Both scan a single
// contiguous byte slice (the memory-mapped file) with an explicit cursor,
// mirroring the teacher's cursor-based classical/lexer.go rather than
// bufio.Scanner line buffering, and the arena's own "one flat slice,
// explicit offsets" shape in package clause.
package proof

import (
	"github.com/xDarkicex/prcheck/core"
)

// scanner walks a byte slice looking for whitespace-separated integers,
// tolerating 'c'-prefixed comment lines anywhere a token could start —
// the original source scans for comments before the header and the
// spec's own §4.4 wire grammar never distinguishes "comment before
// header" from "comment elsewhere", so one skip routine handles both.
type scanner struct {
	buf []byte
	pos int
}

func newScanner(buf []byte) *scanner {
	return &scanner{buf: buf}
}

func (s *scanner) atLineStart() bool {
	return s.pos == 0 || s.buf[s.pos-1] == '\n'
}

func (s *scanner) skipWS() {
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		if c == 'c' && s.atLineStart() {
			for s.pos < len(s.buf) && s.buf[s.pos] != '\n' {
				s.pos++
			}
			continue
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			s.pos++
			continue
		}
		break
	}
}

func (s *scanner) eof() bool {
	s.skipWS()
	return s.pos >= len(s.buf)
}

// word reads the next whitespace-delimited token verbatim, used for the
// literal "p" and "cnf" tokens of the DIMACS header and for the "d"
// marker of an LPR deletion record.
func (s *scanner) word() (string, error) {
	s.skipWS()
	start := s.pos
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			break
		}
		s.pos++
	}
	if s.pos == start {
		return "", core.NewVerifierError(core.KindParse, "proof.scanner.word", "unexpected end of input")
	}
	return string(s.buf[start:s.pos]), nil
}

// int64Tok reads one signed integer token. DIMACS and LPR both use plain
// ASCII decimal, optionally negative.
func (s *scanner) int64Tok() (int, error) {
	s.skipWS()
	if s.pos >= len(s.buf) {
		return 0, core.NewVerifierError(core.KindParse, "proof.scanner.int64Tok", "unexpected end of input")
	}
	start := s.pos
	if s.buf[s.pos] == '-' {
		s.pos++
	}
	digitsStart := s.pos
	for s.pos < len(s.buf) && s.buf[s.pos] >= '0' && s.buf[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == digitsStart {
		return 0, core.NewVerifierError(core.KindParse, "proof.scanner.int64Tok", "malformed integer at byte %d", start)
	}
	neg := s.buf[start] == '-'
	v := 0
	for i := digitsStart; i < s.pos; i++ {
		v = v*10 + int(s.buf[i]-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}

// peekDeleteMarker reports whether the next token is the literal 'd'
// marker that opens a deletion record, without consuming it.
func (s *scanner) peekDeleteMarker() bool {
	s.skipWS()
	return s.pos < len(s.buf) && s.buf[s.pos] == 'd'
}

// intsUntilZero reads signed integers up to and including a terminating
// 0, returning everything before it.
func (s *scanner) intsUntilZero() ([]core.Lit, error) {
	var out []core.Lit
	for {
		v, err := s.int64Tok()
		if err != nil {
			return nil, err
		}
		if v == 0 {
			return out, nil
		}
		out = append(out, core.Lit(v))
	}
}
