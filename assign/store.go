// Package assign implements the epoch-mask assignment store from spec §4.3
// and §9's design notes: alpha/omega arrays indexed by literal Code, never
// cleared, compared against a fresh core.Epoch instead of being rolled
// back. This deliberately does not reuse the teacher's sat/trail.go
// decision-trail approach — spec §9 calls that out by name as the wrong
// shape for this checker, since a trail-with-rollback would need an
// undo log the epoch trick makes unnecessary.
package assign

import (
	"github.com/xDarkicex/prcheck/core"
)

// Store holds the alpha (hypothesis) and omega (witness) arrays shared by
// one checker run. Both are indexed by core.Code; a slot holds the epoch
// at which it was last written, and a write is "live" for any query whose
// epoch is <= the stored value.
type Store struct {
	alpha []core.Epoch
	omega []core.Epoch
	now   core.Epoch
}

// NewStore returns an empty store sized for literals up to maxCode.
func NewStore(maxCode core.Code) *Store {
	n := int(maxCode) + 2
	return &Store{
		alpha: make([]core.Epoch, n),
		omega: make([]core.Epoch, n),
	}
}

// EnsureCapacity grows both arrays so that code is a valid index,
// zero-filling the new slots (epoch 0 never matches a fresh epoch, which
// are minted starting at 1).
func (s *Store) EnsureCapacity(code core.Code) {
	need := int(code) + 1
	if need <= len(s.alpha) {
		return
	}
	grown := make([]core.Epoch, need)
	copy(grown, s.alpha)
	s.alpha = grown

	grown = make([]core.Epoch, need)
	copy(grown, s.omega)
	s.omega = grown
}

// NextEpoch mints a new epoch value, strictly greater than every epoch
// minted so far, and returns it. Every checkClause call and every PR group
// within it calls this at least once, which is what keeps one group's
// hypothetical assignment invisible to its siblings (see package check).
func (s *Store) NextEpoch() core.Epoch {
	s.now++
	return s.now
}

// Now returns the most recently minted epoch without minting a new one.
func (s *Store) Now() core.Epoch {
	return s.now
}

// Falsify marks literal l as false as of epoch e: isFalsifiedAt(l, e) will
// report true for any epoch <= e from this point on.
func (s *Store) Falsify(l core.Lit, e core.Epoch) {
	idx := core.Complement(core.Encode(l))
	s.EnsureCapacity(idx)
	s.alpha[idx] = e
}

// AssignTrue marks literal l as true as of epoch e. This is the same
// operation as Falsify(complement(l), e) — assigning l true and falsifying
// its negation are the same write — spelled out separately because
// callers reach for one or the other depending on which literal they hold.
func (s *Store) AssignTrue(l core.Lit, e core.Epoch) {
	idx := core.Encode(l)
	s.EnsureCapacity(idx)
	s.alpha[idx] = e
}

// IsFalsifiedAt reports whether l is falsified as of epoch e.
func (s *Store) IsFalsifiedAt(l core.Lit, e core.Epoch) bool {
	idx := core.Complement(core.Encode(l))
	if int(idx) >= len(s.alpha) {
		return false
	}
	return s.alpha[idx] >= e
}

// IsTrueAt reports whether l is assigned true as of epoch e under alpha.
func (s *Store) IsTrueAt(l core.Lit, e core.Epoch) bool {
	idx := core.Encode(l)
	if int(idx) >= len(s.alpha) {
		return false
	}
	return s.alpha[idx] >= e
}

// SetWitness records that literal l is assigned true by the witness ω at
// epoch e (spec §4.3's omega array).
func (s *Store) SetWitness(l core.Lit, e core.Epoch) {
	idx := core.Encode(l)
	s.EnsureCapacity(idx)
	s.omega[idx] = e
}

// WitnessMakesTrue reports whether omega assigns literal l true exactly
// at epoch e, used by the blocked-clause shortcut in package check to
// tell "alpha already made this literal true" apart from "and omega
// agrees, so there is nothing to discharge".
func (s *Store) WitnessMakesTrue(l core.Lit, e core.Epoch) bool {
	idx := core.Encode(l)
	if int(idx) >= len(s.omega) {
		return false
	}
	return s.omega[idx] == e
}

// WitnessState classifies how a clause's literals interact with the
// witness ω at a given epoch.
type WitnessState int

const (
	// Satisfied means some literal of the clause is made true by ω, or
	// ω does not mention the clause at all (the vacuous case spec §4.3
	// folds into "not reduced").
	Satisfied WitnessState = iota
	// Reduced means ω falsifies at least one literal of the clause and
	// satisfies none of them: the clause shrinks under ω but survives.
	Reduced
)

// CheckWitness classifies clauseBody against the witness recorded in omega
// at epoch e.
func (s *Store) CheckWitness(clauseBody []core.Lit, e core.Epoch) WitnessState {
	state := Satisfied
	for _, l := range clauseBody {
		code := core.Encode(l)
		comp := core.Complement(code)
		if int(comp) < len(s.omega) && s.omega[comp] == e {
			state = Reduced
		}
		if int(code) < len(s.omega) && s.omega[code] == e {
			return Satisfied
		}
	}
	return state
}
