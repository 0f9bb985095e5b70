package clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/prcheck/core"
)

func lits(vs ...int) []core.Lit {
	out := make([]core.Lit, len(vs))
	for i, v := range vs {
		out[i] = core.Lit(v)
	}
	return out
}

func TestArenaAddAndFetch(t *testing.T) {
	testCases := []struct {
		name  string
		id    int
		lits  []core.Lit
		want  []core.Lit
	}{
		{"unit clause", 1, lits(1), lits(1)},
		{"binary clause", 2, lits(1, 2), lits(1, 2)},
		{"negative literals", 3, lits(-1, -2, 3), lits(-1, -2, 3)},
	}

	a := NewArena(4)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, a.AddClause(tc.id, tc.lits))
			got, err := a.ClauseAt(tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Equal(t, 3, a.Last())
}

func TestArenaDeleteClauses(t *testing.T) {
	a := NewArena(4)
	require.NoError(t, a.AddClause(1, lits(1, 2)))
	require.NoError(t, a.AddClause(2, lits(-1, 2)))

	require.NoError(t, a.DeleteClauses([]int{1}))

	_, err := a.ClauseAt(1)
	require.Error(t, err)
	ve, ok := core.AsVerifierError(err)
	require.True(t, ok)
	assert.Equal(t, core.KindStructural, ve.Kind)

	got, err := a.ClauseAt(2)
	require.NoError(t, err)
	assert.Equal(t, lits(-1, 2), got)
}

func TestArenaDeleteAlreadyDeletedIsWarning(t *testing.T) {
	a := NewArena(4)
	require.NoError(t, a.AddClause(1, lits(1)))
	require.NoError(t, a.DeleteClauses([]int{1}))

	err := a.DeleteClauses([]int{1})
	require.Error(t, err)
	ve, ok := core.AsVerifierError(errorsUnwrapFirst(err))
	require.True(t, ok)
	assert.Equal(t, core.KindWarning, ve.Kind)
}

func TestArenaPeekNeverAdded(t *testing.T) {
	a := NewArena(4)
	_, ok := a.Peek(99)
	assert.False(t, ok)
}

func TestArenaPeekDeleted(t *testing.T) {
	a := NewArena(4)
	require.NoError(t, a.AddClause(1, lits(1)))
	require.NoError(t, a.DeleteClauses([]int{1}))
	_, ok := a.Peek(1)
	assert.False(t, ok)
}

// errorsUnwrapFirst pulls the first wrapped error out of a multierror so
// tests can assert on its Kind without depending on multierror's own type.
func errorsUnwrapFirst(err error) error {
	type unwrapper interface{ Unwrap() []error }
	if u, ok := err.(unwrapper); ok {
		errs := u.Unwrap()
		if len(errs) > 0 {
			return errs[0]
		}
	}
	return err
}
