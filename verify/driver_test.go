package verify

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xDarkicex/prcheck/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it, so tests can assert on the "c ERROR: ..." /
// "c WARNING: ..." diagnostics spec §6/§7 require on stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	fn()
	os.Stdout = orig
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestDriverRunVerified(t *testing.T) {
	cnf := writeFile(t, "f.cnf", "p cnf 2 4\n1 2 0\n1 -2 0\n-1 2 0\n-1 -2 0\n")
	lpr := writeFile(t, "p.lpr", "5 1 0 1 2 0\n6 0 5 3 4 0\n")

	d := NewDriver(zaptest.NewLogger(t), nil)
	result, err := d.Run(cnf, lpr)
	require.NoError(t, err)
	assert.Equal(t, core.VerdictVerified, result.Verdict)
	assert.Equal(t, 2, result.StepsChecked)
	assert.NotEmpty(t, result.RunID)
}

func TestDriverRunNotVerified(t *testing.T) {
	cnf := writeFile(t, "f.cnf", "p cnf 2 4\n1 2 0\n1 -2 0\n-1 2 0\n-1 -2 0\n")
	// Hint 1 alone never derives a contradiction for ¬x, and there is no
	// witness, so this step must fail.
	lpr := writeFile(t, "p.lpr", "5 1 0 1 0\n")

	d := NewDriver(zaptest.NewLogger(t), nil)
	var result *core.Result
	var err error
	stdout := captureStdout(t, func() {
		result, err = d.Run(cnf, lpr)
	})
	require.NoError(t, err)
	assert.Equal(t, core.VerdictNotVerified, result.Verdict)
	assert.Equal(t, 5, result.FailedStep)
	assert.Contains(t, stdout, "c ERROR: clause [1] has no hints")
}

// TestDriverRunMissingHint reproduces spec §8 scenario 4: a PR addition
// whose hint list skips a reduced-unsatisfied clause (id 3) must fail
// with the exact "c ERROR: hint 3 is missing" diagnostic on stdout.
func TestDriverRunMissingHint(t *testing.T) {
	cnf := writeFile(t, "f.cnf", "p cnf 2 4\n1 2 0\n1 -2 0\n-1 2 0\n-1 -2 0\n")
	lpr := writeFile(t, "p.lpr", "5 1 0 -4 1 0\n")

	d := NewDriver(zaptest.NewLogger(t), nil)
	var result *core.Result
	var err error
	stdout := captureStdout(t, func() {
		result, err = d.Run(cnf, lpr)
	})
	require.NoError(t, err)
	assert.Equal(t, core.VerdictNotVerified, result.Verdict)
	assert.Equal(t, 5, result.FailedStep)
	assert.Contains(t, stdout, "c ERROR: hint 3 is missing\n")
}

// TestDriverRunAmbiguousHint reproduces spec §8 scenario 6: a hint clause
// with two unassigned literals at the moment it is consumed must fail
// with the exact "c ERROR: hint K has multiple unassigned literals"
// diagnostic on stdout.
func TestDriverRunAmbiguousHint(t *testing.T) {
	cnf := writeFile(t, "f.cnf", "p cnf 3 1\n1 2 3 0\n")
	lpr := writeFile(t, "p.lpr", "2 -1 0 1 0\n")

	d := NewDriver(zaptest.NewLogger(t), nil)
	var result *core.Result
	var err error
	stdout := captureStdout(t, func() {
		result, err = d.Run(cnf, lpr)
	})
	require.NoError(t, err)
	assert.Equal(t, core.VerdictNotVerified, result.Verdict)
	assert.Equal(t, 2, result.FailedStep)
	assert.Contains(t, stdout, "c ERROR: hint 1 has multiple unassigned literals\n")
}

func TestDriverRunStructuralErrorOnDeletedHint(t *testing.T) {
	cnf := writeFile(t, "f.cnf", "p cnf 2 4\n1 2 0\n1 -2 0\n-1 2 0\n-1 -2 0\n")
	lpr := writeFile(t, "p.lpr", "1 d 1 0\n5 1 0 1 2 0\n")

	d := NewDriver(zaptest.NewLogger(t), nil)
	var err error
	stdout := captureStdout(t, func() {
		_, err = d.Run(cnf, lpr)
	})
	require.Error(t, err)
	ve, ok := core.AsVerifierError(err)
	require.True(t, ok)
	assert.Equal(t, core.KindStructural, ve.Kind)
	assert.Contains(t, stdout, "c ERROR: using DELETED clause 1\n")
}

// TestDriverRunDeletionWarning reproduces SPEC_FULL.md's supplemented
// "clause already deleted" diagnostic: deleting the same id twice must
// print the exact "c WARNING: clause 1 has already been deleted" line
// without aborting the run.
func TestDriverRunDeletionWarning(t *testing.T) {
	cnf := writeFile(t, "f.cnf", "p cnf 2 4\n1 2 0\n1 -2 0\n-1 2 0\n-1 -2 0\n")
	lpr := writeFile(t, "p.lpr", "1 d 1 0\n2 d 1 0\n6 1 0 2 2 0\n")

	d := NewDriver(zaptest.NewLogger(t), nil)
	var stdout string
	stdout = captureStdout(t, func() {
		_, _ = d.Run(cnf, lpr)
	})
	assert.Contains(t, stdout, "c WARNING: clause 1 has already been deleted\n")
}

func TestDriverRunMissingFile(t *testing.T) {
	d := NewDriver(zaptest.NewLogger(t), nil)
	_, err := d.Run("/no/such/file.cnf", "/no/such/file.lpr")
	require.Error(t, err)
	ve, ok := core.AsVerifierError(err)
	require.True(t, ok)
	assert.Equal(t, core.KindParse, ve.Kind)
}
