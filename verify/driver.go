// Package verify wires the parser, assignment store, and checker into the
// end-to-end proof driver from spec §4.6: stream records, dispatch
// deletions and additions, stop at the empty clause or the first failure.
// The orchestration shape (Name() plus one Run operation, returning a
// plain result struct) follows the teacher's sat.SATSystemImpl.
package verify

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/xDarkicex/prcheck/assign"
	"github.com/xDarkicex/prcheck/check"
	"github.com/xDarkicex/prcheck/clause"
	"github.com/xDarkicex/prcheck/core"
	"github.com/xDarkicex/prcheck/proof"
)

// Driver runs one CNF+proof pair end to end.
type Driver struct {
	logger *zap.Logger
	fs     afero.Fs
}

// NewDriver builds a Driver. fs is used only to give friendlier errors for
// missing input files before the real memory-mapped parse is attempted;
// that parse always opens the files through the operating system, so fs
// must see the same files (a nil fs means afero.NewOsFs()).
func NewDriver(logger *zap.Logger, fs afero.Fs) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Driver{logger: logger, fs: fs}
}

func (d *Driver) Name() string {
	return "prcheck"
}

// Run verifies the proof at proofPath against the formula at cnfPath.
func (d *Driver) Run(cnfPath, proofPath string) (*core.Result, error) {
	runID := uuid.NewString()
	log := d.logger.With(zap.String("run_id", runID))

	if err := d.checkExists(cnfPath); err != nil {
		return nil, err
	}
	if err := d.checkExists(proofPath); err != nil {
		return nil, err
	}

	var t timing
	var cnf *proof.CNF
	if err := t.time("parse_cnf", func() error {
		var perr error
		cnf, perr = proof.ParseCNF(cnfPath)
		return perr
	}); err != nil {
		return nil, err
	}
	log.Info("parsed formula", zap.Int("vars", cnf.NumVars), zap.Int("clauses", cnf.NumClauses))

	arena := clause.NewArena(cnf.NumClauses + 64)
	for i, body := range cnf.Clauses {
		if err := arena.AddClause(i+1, body); err != nil {
			return nil, core.Wrap(core.KindParse, "verify.Driver.Run", err)
		}
	}
	store := assign.NewStore(core.Code(2*cnf.NumVars + 4))
	checker := check.NewChecker(arena, store)

	result := &core.Result{RunID: runID, Verdict: core.VerdictNotVerified}

	err := t.time("check_proof", func() error {
		return d.runProof(proofPath, arena, checker, result, log)
	})
	for _, s := range t.steps {
		log.Info("phase complete", zap.String("phase", s.name), zap.Duration("elapsed", s.duration))
	}
	if err != nil {
		return nil, err
	}

	log.Info("run complete", zap.String("verdict", result.Verdict.String()), zap.Int("steps", result.StepsChecked))
	return result, nil
}

func (d *Driver) runProof(proofPath string, arena *clause.Arena, checker *check.Checker, result *core.Result, log *zap.Logger) error {
	reader, err := proof.OpenProof(proofPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		rec, done, err := reader.Next()
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		switch rec.Kind {
		case proof.KindDeletion:
			if werr := arena.DeleteClauses(rec.DeleteIDs); werr != nil {
				printWarnings(werr)
				log.Warn("deletion warning", zap.Int("record", rec.ID), zap.Error(werr))
			}

		case proof.KindAddition:
			result.StepsChecked++
			if cerr := checker.CheckClause(rec); cerr != nil {
				if ve, ok := core.AsVerifierError(cerr); ok {
					fmt.Fprintf(os.Stdout, "c ERROR: %s\n", ve.Message)
					if ve.Kind == core.KindStructural {
						return cerr
					}
				}
				result.FailedStep = rec.ID
				result.Verdict = core.VerdictNotVerified
				return nil
			}
			if addErr := arena.AddClause(rec.ID, rec.ClauseBody()); addErr != nil {
				return core.Wrap(core.KindParse, "verify.Driver.runProof", addErr)
			}
			if len(rec.ClauseBody()) == 0 {
				result.Verdict = core.VerdictVerified
				return nil
			}
		}
	}
}

func (d *Driver) checkExists(path string) error {
	ok, err := afero.Exists(d.fs, path)
	if err != nil {
		return core.Wrap(core.KindParse, "verify.Driver.checkExists", err)
	}
	if !ok {
		return core.NewVerifierError(core.KindParse, "verify.Driver.checkExists", "%s does not exist", path)
	}
	return nil
}

// printWarnings writes one "c WARNING: <message>" line per diagnostic
// collected in a deletion record's joined multierror, matching the
// verbatim "c WARNING: clause %i has already been deleted" text
// SPEC_FULL.md's SUPPLEMENTED FEATURES requires on stdout, since external
// tooling greps for this exact string.
func printWarnings(err error) {
	merr, ok := err.(*multierror.Error)
	if !ok {
		if ve, ok := core.AsVerifierError(err); ok {
			fmt.Fprintf(os.Stdout, "c WARNING: %s\n", ve.Message)
		}
		return
	}
	for _, sub := range merr.Errors {
		if ve, ok := core.AsVerifierError(sub); ok {
			fmt.Fprintf(os.Stdout, "c WARNING: %s\n", ve.Message)
		}
	}
}

// PrintVerdict writes the fixed stdout protocol from spec §6: "c "
// prefixed comments followed by the exact verdict line. It deliberately
// writes with fmt.Fprintf directly, not through the zap logger, since
// the verdict line's byte-for-byte format is a machine-readable contract.
func PrintVerdict(result *core.Result) {
	fmt.Fprintf(os.Stdout, "c %d steps checked\n", result.StepsChecked)
	if result.Verdict == core.VerdictNotVerified && result.FailedStep != 0 {
		fmt.Fprintf(os.Stdout, "c failed at step %d\n", result.FailedStep)
	}
	fmt.Fprintf(os.Stdout, "s %s\n", result.Verdict.String())
}
