// Package clause implements the clause arena and directory described in
// spec §4.2: a flat, append-only buffer of literals with a tombstoned
// id-to-offset directory: flat-array bookkeeping (literals plus integer
// offsets) rather than a graph of clause objects.
package clause

import (
	"github.com/xDarkicex/prcheck/core"
)

const deletedOffset = -1

// Arena holds every live and tombstoned clause added during a run in one
// contiguous []core.Lit buffer, terminated per-clause by a literal 0
// (variable 0 never occurs in well-formed input). A parallel directory
// maps a clause id to its offset into that buffer, or to deletedOffset
// once the id has been deleted.
type Arena struct {
	table []core.Lit
	dir   []int
	last  int
}

// NewArena preallocates room for an expected number of clauses, mirroring
// the teacher's pool.go practice of sizing buffers from an expected
// workload instead of growing from zero.
func NewArena(expectedClauses int) *Arena {
	if expectedClauses < 16 {
		expectedClauses = 16
	}
	return &Arena{
		table: make([]core.Lit, 0, expectedClauses*4),
		dir:   []int{deletedOffset}, // index 0 is never a valid clause id
	}
}

func (a *Arena) growDirTo(id int) {
	for len(a.dir) <= id {
		a.dir = append(a.dir, deletedOffset)
	}
}

// AddClause stores a new clause under id, appending its literals (with a
// trailing sentinel 0) to the shared buffer. Re-adding a previously used
// id overwrites its directory entry; the old literals remain in the
// buffer as unreachable padding, the same append-only tradeoff the arena
// in spec §4.2 describes.
func (a *Arena) AddClause(id int, lits []core.Lit) error {
	if id < 1 {
		return core.NewVerifierError(core.KindParse, "clause.Arena.AddClause", "invalid clause id %d", id)
	}
	a.growDirTo(id)
	offset := len(a.table)
	a.table = append(a.table, lits...)
	a.table = append(a.table, 0)
	a.dir[id] = offset
	if id > a.last {
		a.last = id
	}
	return nil
}

// DeleteClauses tombstones each id in ids. An id that is already deleted,
// or was never added, produces a *core.VerifierError of KindWarning
// collected into the returned error rather than aborting the batch —
// spec §4.2 is explicit that this is a warning, not a failure.
func (a *Arena) DeleteClauses(ids []int) error {
	var warnings []error
	for _, id := range ids {
		if id < 1 || id >= len(a.dir) || a.dir[id] == deletedOffset {
			warnings = append(warnings, core.NewVerifierError(core.KindWarning, "clause.Arena.DeleteClauses",
				"clause %d has already been deleted", id))
			continue
		}
		a.dir[id] = deletedOffset
	}
	return joinWarnings(warnings)
}

// ClauseAt resolves id to its literal slice, or fails with a
// core.KindStructural error if id was deleted or never added — the
// "using DELETED clause" condition in spec §4.2/§7, reserved for hint
// dereferences that must never point at nonexistent state.
func (a *Arena) ClauseAt(id int) ([]core.Lit, error) {
	if id < 1 || id >= len(a.dir) || a.dir[id] == deletedOffset {
		return nil, core.NewVerifierError(core.KindStructural, "clause.Arena.ClauseAt", "using DELETED clause %d", id)
	}
	return a.clauseAtOffset(a.dir[id]), nil
}

// Peek is the non-fatal counterpart to ClauseAt, used by coverage scans
// that must iterate over a range of ids and simply skip ones that were
// deleted or never added.
func (a *Arena) Peek(id int) ([]core.Lit, bool) {
	if id < 1 || id >= len(a.dir) || a.dir[id] == deletedOffset {
		return nil, false
	}
	return a.clauseAtOffset(a.dir[id]), true
}

// Last returns the largest clause id ever added, clsLast in spec §4.2's
// naming, used as the upper bound of the final coverage check.
func (a *Arena) Last() int {
	return a.last
}

func (a *Arena) clauseAtOffset(offset int) []core.Lit {
	end := offset
	for a.table[end] != 0 {
		end++
	}
	return a.table[offset:end]
}
