package proof

import (
	"github.com/xDarkicex/prcheck/core"
)

// CNF is the parsed form of the input formula: a declared variable/clause
// count plus the clauses themselves, numbered 1..NumClauses in the order
// they appear, ready to be loaded into a clause.Arena.
type CNF struct {
	NumVars    int
	NumClauses int
	Clauses    [][]core.Lit
}

// ParseCNF reads a DIMACS CNF file. It tolerates comment lines ('c ...')
// appearing before the 'p cnf' header and between clauses, reproducing
// the original lpr-check.c main() loop's read-header-or-skip-comment
// behavior rather than requiring all comments up front.
func ParseCNF(path string) (*CNF, error) {
	mf, buf, err := openMapped(path)
	if err != nil {
		return nil, err
	}
	defer mf.Close()

	sc := newScanner(buf)

	tag, err := sc.word()
	if err != nil {
		return nil, core.Wrap(core.KindParse, "proof.ParseCNF", err)
	}
	if tag != "p" {
		return nil, core.NewVerifierError(core.KindParse, "proof.ParseCNF", "expected 'p cnf' header, got %q", tag)
	}
	format, err := sc.word()
	if err != nil {
		return nil, core.Wrap(core.KindParse, "proof.ParseCNF", err)
	}
	if format != "cnf" {
		return nil, core.NewVerifierError(core.KindParse, "proof.ParseCNF", "expected 'p cnf' header, got 'p %s'", format)
	}
	nVars, err := sc.int64Tok()
	if err != nil {
		return nil, core.Wrap(core.KindParse, "proof.ParseCNF", err)
	}
	nClauses, err := sc.int64Tok()
	if err != nil {
		return nil, core.Wrap(core.KindParse, "proof.ParseCNF", err)
	}
	if nVars < 0 || nClauses < 0 {
		return nil, core.NewVerifierError(core.KindParse, "proof.ParseCNF", "negative count in header: vars=%d clauses=%d", nVars, nClauses)
	}

	cnf := &CNF{NumVars: nVars, NumClauses: nClauses, Clauses: make([][]core.Lit, 0, nClauses)}

	for i := 0; i < nClauses; i++ {
		var clause []core.Lit
		for {
			if sc.eof() {
				return nil, core.NewVerifierError(core.KindParse, "proof.ParseCNF",
					"unexpected end of file reading clause %d (declared %d clauses)", i+1, nClauses)
			}
			lit, err := sc.int64Tok()
			if err != nil {
				return nil, core.Wrap(core.KindParse, "proof.ParseCNF", err)
			}
			if lit == 0 {
				break
			}
			clause = append(clause, core.Lit(lit))
		}
		cnf.Clauses = append(cnf.Clauses, clause)
	}

	return cnf, nil
}
