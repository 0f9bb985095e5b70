// Package check implements the PR/RUP redundancy algorithm from spec §4.5:
// a two-phase check — RUP extension of the antecedent assignment, then one
// independent RUP check per witness-reduced clause — built directly on
// package assign's epoch-mask store instead of a trail, per spec §9's
// design notes.
package check

import (
	"github.com/xDarkicex/prcheck/assign"
	"github.com/xDarkicex/prcheck/core"
	"github.com/xDarkicex/prcheck/proof"
)

// Checker runs the redundancy algorithm against one clause source and
// assignment store shared across an entire proof.
type Checker struct {
	arena core.ClauseSource
	store *assign.Store
}

// NewChecker builds a Checker over arena, using store for the alpha/omega
// arrays. Both are shared with the rest of the driver so that clause ids
// added by earlier steps are visible to later ones.
func NewChecker(arena core.ClauseSource, store *assign.Store) *Checker {
	return &Checker{arena: arena, store: store}
}

// CheckClause runs the full PR check for one addition record. A nil error
// means the clause is verified redundant (SUCCESS); a *core.VerifierError
// with KindContent means the step failed the check; KindStructural means
// a hint dereferenced deleted or nonexistent clause state.
func (c *Checker) CheckClause(rec *proof.Record) error {
	base := c.store.NextEpoch()
	groups := rec.Groups()
	nRed := core.Epoch(len(groups))
	finalMask := base + nRed

	body := rec.ClauseBody()
	witness := rec.Witness()

	for _, l := range body {
		c.store.Falsify(l, finalMask)
	}

	contradiction, err := c.propagate(rec.Antecedent(), finalMask)
	if err != nil {
		return err
	}
	if contradiction {
		// finalMask was written above; mint the unused group epochs so the
		// next call's epochs all start above it.
		for c.store.Now() < finalMask {
			c.store.NextEpoch()
		}
		return nil
	}

	if nRed == 0 {
		return core.NewVerifierError(core.KindContent, "check.Checker.CheckClause", "clause %v has no hints", body)
	}

	if len(body) > 0 {
		c.store.SetWitness(rec.Pivot(), finalMask)
	}
	for _, w := range witness {
		c.store.SetWitness(w, finalMask)
	}

	prevRes := 0
	for _, g := range groups {
		groupEpoch := c.store.NextEpoch()

		if err := c.checkCoverage(prevRes+1, g.Res-1, finalMask); err != nil {
			return err
		}

		resBody, err := c.arena.ClauseAt(g.Res)
		if err != nil {
			return err
		}
		if c.store.CheckWitness(resBody, finalMask) != assign.Reduced {
			return core.NewVerifierError(core.KindContent, "check.Checker.CheckClause", "hint is not reduced by witness")
		}

		blocked := c.discharge(resBody, finalMask, groupEpoch)
		if !blocked {
			groupContradiction, err := c.propagate(g.Hints, groupEpoch)
			if err != nil {
				return err
			}
			if !groupContradiction {
				return core.NewVerifierError(core.KindContent, "check.Checker.CheckClause",
					"group for hint %d failed to derive a contradiction", g.Res)
			}
		}

		prevRes = g.Res
	}

	if err := c.checkCoverage(prevRes+1, c.arena.Last(), finalMask); err != nil {
		return err
	}

	return nil
}

// propagate runs unit propagation over hints (all positive clause ids) at
// epoch e, skipping literals already known false and assigning the sole
// remaining literal true when a clause has exactly one. It returns true as
// soon as some hinted clause is fully falsified (a contradiction).
func (c *Checker) propagate(hints []int, e core.Epoch) (bool, error) {
	for _, hintID := range hints {
		body, err := c.arena.ClauseAt(hintID)
		if err != nil {
			return false, err
		}
		count := 0
		var unassigned core.Lit
		for _, l := range body {
			if c.store.IsFalsifiedAt(l, e) {
				continue
			}
			count++
			if count > 1 {
				return false, core.NewVerifierError(core.KindContent, "check.Checker.propagate",
					"hint %d has multiple unassigned literals", hintID)
			}
			unassigned = l
		}
		if count == 0 {
			return true, nil
		}
		c.store.AssignTrue(unassigned, e)
	}
	return false, nil
}

// checkCoverage verifies that no live clause with an id in [lo, hi] is
// witness-reduced-but-unsatisfied at wMask — every such clause must have
// been named by a hint group, spec §4.5 step 5a/step 6.
func (c *Checker) checkCoverage(lo, hi int, wMask core.Epoch) error {
	for id := lo; id <= hi; id++ {
		body, ok := c.arena.Peek(id)
		if !ok {
			continue
		}
		if c.store.CheckWitness(body, wMask) == assign.Reduced {
			return core.NewVerifierError(core.KindContent, "check.Checker.checkCoverage", "hint %d is missing", id)
		}
	}
	return nil
}

// discharge implements spec §4.5 step 5c: scan C_res's literals. If one is
// already assigned true at finalMask under alpha, and omega does not also
// make it true, C_res is blocked — the group succeeds trivially and
// returns true. Otherwise every literal not already falsified at finalMask
// is falsified at the group's own epoch, extending the per-group
// hypothesis without disturbing alpha at finalMask or at sibling groups.
func (c *Checker) discharge(resBody []core.Lit, finalMask, groupEpoch core.Epoch) bool {
	for _, l := range resBody {
		if c.store.IsFalsifiedAt(l, finalMask) {
			continue
		}
		if c.store.IsTrueAt(l, finalMask) && !c.store.WitnessMakesTrue(l, finalMask) {
			return true
		}
		c.store.Falsify(l, groupEpoch)
	}
	return false
}
