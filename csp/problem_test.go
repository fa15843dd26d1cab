package csp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcsp/csp"
)

// notEqual rejects assignments where its two scope variables coincide.
var notEqual = csp.CheckerFunc(func(c *csp.Constraint, values csp.Assignment, _ any) bool {
	a, _ := c.Variable(0)
	b, _ := c.Variable(1)

	return values[a] != values[b]
})

func TestNewProblem_Validation(t *testing.T) {
	p, err := csp.NewProblem(0, 3)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, csp.ErrZeroVariables)

	p, err = csp.NewProblem(3, -1)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, csp.ErrConstraintCount)

	p, err = csp.NewProblem(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumVariables())
	assert.Equal(t, 0, p.NumConstraints())
}

func TestProblem_Domains(t *testing.T) {
	p, err := csp.NewProblem(2, 0)
	require.NoError(t, err)

	require.NoError(t, p.SetDomain(0, 4))
	require.NoError(t, p.SetDomain(1, 0), "an empty domain is legal")

	d0, err := p.Domain(0)
	require.NoError(t, err)
	assert.Equal(t, 4, d0)

	assert.ErrorIs(t, p.SetDomain(2, 1), csp.ErrIndexRange)
	assert.ErrorIs(t, p.SetDomain(0, -1), csp.ErrDomainSize)
	_, err = p.Domain(-1)
	assert.ErrorIs(t, err, csp.ErrIndexRange)
}

func TestProblem_SetConstraint(t *testing.T) {
	p, err := csp.NewProblem(2, 2)
	require.NoError(t, err)
	require.NoError(t, p.SetDomain(0, 2))
	require.NoError(t, p.SetDomain(1, 2))

	c, err := csp.NewBinary(0, 1, notEqual)
	require.NoError(t, err)

	require.NoError(t, p.SetConstraint(0, c))
	got, err := p.Constraint(0)
	require.NoError(t, err)
	assert.Same(t, c, got)

	// Slot 1 was never set.
	unset, err := p.Constraint(1)
	require.NoError(t, err)
	assert.Nil(t, unset)
	assert.ErrorIs(t, p.Validate(), csp.ErrConstraintUnset)

	assert.ErrorIs(t, p.SetConstraint(5, c), csp.ErrIndexRange)
	assert.ErrorIs(t, p.SetConstraint(1, nil), csp.ErrNilConstraint)
}

func TestProblem_SetConstraint_VariableRange(t *testing.T) {
	p, err := csp.NewProblem(2, 1)
	require.NoError(t, err)

	// Constraint references variable 5, which the problem does not have.
	c, err := csp.NewBinary(0, 5, notEqual)
	require.NoError(t, err)
	assert.ErrorIs(t, p.SetConstraint(0, c), csp.ErrVariableRange)
}

func TestProblem_Consistent_FrontierGating(t *testing.T) {
	p, err := csp.NewProblem(2, 1)
	require.NoError(t, err)
	require.NoError(t, p.SetDomain(0, 2))
	require.NoError(t, p.SetDomain(1, 2))

	c, err := csp.NewBinary(0, 1, notEqual)
	require.NoError(t, err)
	require.NoError(t, p.SetConstraint(0, c))

	values := csp.Assignment{1, 1}

	// Vacuously true while the constraint is not yet checkable.
	assert.True(t, p.Consistent(values, nil, 0))
	assert.True(t, p.Consistent(values, nil, 1))

	// Both variables below the frontier: the violation surfaces.
	assert.False(t, p.Consistent(values, nil, 2))

	values[1] = 0
	assert.True(t, p.Consistent(values, nil, 2))
}

func TestNewAssignment(t *testing.T) {
	a := csp.NewAssignment(3)
	require.Len(t, a, 3)
	for i, v := range a {
		assert.Equal(t, csp.Unassigned, v, "slot %d must start unassigned", i)
	}

	a[0], a[1], a[2] = 0, 1, 2
	a.Reset()
	assert.Equal(t, csp.Assignment{csp.Unassigned, csp.Unassigned, csp.Unassigned}, a)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "solved", csp.Solved.String())
	assert.Equal(t, "unsatisfiable", csp.Unsatisfiable.String())
	assert.Equal(t, "cancelled", csp.Cancelled.String())
	assert.Equal(t, "unknown", csp.Result(42).String())
}
