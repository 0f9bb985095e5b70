package proof

import (
	"github.com/xDarkicex/prcheck/core"
)

// RecordKind distinguishes the two LPR record shapes from spec §4.4.
type RecordKind int

const (
	KindAddition RecordKind = iota
	KindDeletion
)

// Record is one parsed LPR proof step.
//
// For an addition record, Raw holds the clause body concatenated with its
// witness, exactly as the wire format packs them: both share the single
// 0-terminator the wire grammar uses, which is why they are not split
// here. A consumer (package check) finds the split itself by scanning for
// the second occurrence of Raw[0], the pivot — see Record.ClauseBody and
// Record.Witness. Hints holds the signed hint-group list verbatim
// (positive antecedent ids, negative -id group separators), with the
// terminating 0 already consumed.
//
// For a deletion record, DeleteIDs holds the ids to tombstone.
type Record struct {
	Kind      RecordKind
	ID        int
	Raw       []core.Lit
	Hints     []int
	DeleteIDs []int
}

// Pivot returns the addition record's pivot literal, Raw[0], or 0 for an
// empty clause.
func (r *Record) Pivot() core.Lit {
	if len(r.Raw) == 0 {
		return 0
	}
	return r.Raw[0]
}

// splitIndex finds where the clause body ends and the witness begins:
// the second occurrence of the pivot literal, or len(Raw) if the pivot
// never repeats (a plain RUP addition with a trivial witness).
func (r *Record) splitIndex() int {
	if len(r.Raw) == 0 {
		return 0
	}
	pivot := r.Raw[0]
	for i := 1; i < len(r.Raw); i++ {
		if r.Raw[i] == pivot {
			return i
		}
	}
	return len(r.Raw)
}

// ClauseBody returns the literals that are stored in the arena for this
// clause, excluding the witness.
func (r *Record) ClauseBody() []core.Lit {
	return r.Raw[:r.splitIndex()]
}

// Witness returns the witness literals, starting at the repeated pivot
// (inclusive), or an empty slice if the witness is trivial.
func (r *Record) Witness() []core.Lit {
	return r.Raw[r.splitIndex():]
}

// HintGroup is one discharge group within an addition record's hints:
// the clause Res being discharged and the positive antecedent hints used
// to derive a contradiction for it.
type HintGroup struct {
	Res   int
	Hints []int
}

// Antecedent returns the plain positive hints that appear before the
// first negative separator — spec §4.5 step 2's antecedent propagation
// group.
func (r *Record) Antecedent() []int {
	for i, h := range r.Hints {
		if h < 0 {
			return r.Hints[:i]
		}
	}
	return r.Hints
}

// Groups splits the hints that follow the antecedent group into one
// HintGroup per negative separator.
func (r *Record) Groups() []HintGroup {
	var groups []HintGroup
	i := 0
	for i < len(r.Hints) && r.Hints[i] >= 0 {
		i++
	}
	for i < len(r.Hints) {
		res := -r.Hints[i]
		i++
		start := i
		for i < len(r.Hints) && r.Hints[i] >= 0 {
			i++
		}
		groups = append(groups, HintGroup{Res: res, Hints: r.Hints[start:i]})
	}
	return groups
}

// Reader streams Records out of a memory-mapped LPR proof file.
type Reader struct {
	mf *mappedFile
	sc *scanner
}

// OpenProof memory-maps path and prepares it for record-by-record
// reading. Call Close when done.
func OpenProof(path string) (*Reader, error) {
	mf, buf, err := openMapped(path)
	if err != nil {
		return nil, err
	}
	return &Reader{mf: mf, sc: newScanner(buf)}, nil
}

func (r *Reader) Close() error {
	return r.mf.Close()
}

// Next reads the next record. done is true (with a nil record and nil
// error) once the file is exhausted.
func (r *Reader) Next() (rec *Record, done bool, err error) {
	if r.sc.eof() {
		return nil, true, nil
	}

	id, err := r.sc.int64Tok()
	if err != nil {
		return nil, false, core.Wrap(core.KindParse, "proof.Reader.Next", err)
	}

	if r.sc.peekDeleteMarker() {
		if _, werr := r.sc.word(); werr != nil {
			return nil, false, core.Wrap(core.KindParse, "proof.Reader.Next", werr)
		}
		ids, derr := r.sc.intsUntilZero()
		if derr != nil {
			return nil, false, core.Wrap(core.KindParse, "proof.Reader.Next", derr)
		}
		intIDs := make([]int, len(ids))
		for i, l := range ids {
			intIDs[i] = int(l)
		}
		return &Record{Kind: KindDeletion, ID: id, DeleteIDs: intIDs}, false, nil
	}

	raw, rerr := r.sc.intsUntilZero()
	if rerr != nil {
		return nil, false, core.Wrap(core.KindParse, "proof.Reader.Next", rerr)
	}
	hintLits, herr := r.sc.intsUntilZero()
	if herr != nil {
		return nil, false, core.Wrap(core.KindParse, "proof.Reader.Next", herr)
	}
	hints := make([]int, len(hintLits))
	for i, l := range hintLits {
		hints[i] = int(l)
	}
	return &Record{Kind: KindAddition, ID: id, Raw: raw, Hints: hints}, false, nil
}
