package csp

// Constraint is an immutable relation over an ordered tuple of variable
// indices (its scope) plus a checking predicate. Arity 1 expresses a
// unary filter (e.g. "this cell is pre-filled"), arity 2 the common
// binary case (e.g. "these two cells differ"). A constraint is created
// independently and attached to a Problem afterwards; once attached it
// must outlive every solve call that references the Problem.
type Constraint struct {
	scope   []int   // variable indices, one per scope position
	checker Checker // predicate evaluated against the full assignment
}

// NewConstraint creates a constraint of the given arity. Every scope
// position starts at variable 0 and must be overwritten with
// SetVariable before the constraint is attached: a position left at its
// default silently references variable 0. Prefer NewUnary or NewBinary,
// which take the scope explicitly.
//
// Errors: ErrZeroArity if arity < 1, ErrNilChecker if checker is nil.
func NewConstraint(arity int, checker Checker) (*Constraint, error) {
	if arity < 1 {
		return nil, ErrZeroArity
	}
	if checker == nil {
		return nil, ErrNilChecker
	}

	return &Constraint{
		scope:   make([]int, arity),
		checker: checker,
	}, nil
}

// NewUnary creates an arity-1 constraint over the given variable.
func NewUnary(variable int, checker Checker) (*Constraint, error) {
	c, err := NewConstraint(1, checker)
	if err != nil {
		return nil, err
	}
	if err = c.SetVariable(0, variable); err != nil {
		return nil, err
	}

	return c, nil
}

// NewBinary creates an arity-2 constraint over the ordered pair (a, b).
func NewBinary(a, b int, checker Checker) (*Constraint, error) {
	c, err := NewConstraint(2, checker)
	if err != nil {
		return nil, err
	}
	if err = c.SetVariable(0, a); err != nil {
		return nil, err
	}
	if err = c.SetVariable(1, b); err != nil {
		return nil, err
	}

	return c, nil
}

// Arity returns the number of scope positions.
func (c *Constraint) Arity() int {
	return len(c.scope)
}

// Checker returns the predicate supplied at construction.
func (c *Constraint) Checker() Checker {
	return c.checker
}

// SetVariable binds scope position pos to the given variable index.
// The index is validated against the owning Problem only when the
// constraint is attached (Problem.SetConstraint); here only pos and the
// sign of variable are checked.
//
// Errors: ErrPositionRange if pos is outside [0, arity),
// ErrVariableRange if variable is negative.
func (c *Constraint) SetVariable(pos, variable int) error {
	if pos < 0 || pos >= len(c.scope) {
		return ErrPositionRange
	}
	if variable < 0 {
		return ErrVariableRange
	}
	c.scope[pos] = variable

	return nil
}

// Variable returns the variable index bound to scope position pos.
//
// Errors: ErrPositionRange if pos is outside [0, arity).
func (c *Constraint) Variable(pos int) (int, error) {
	if pos < 0 || pos >= len(c.scope) {
		return 0, ErrPositionRange
	}

	return c.scope[pos], nil
}

// Scope returns a copy of the full variable tuple.
func (c *Constraint) Scope() []int {
	out := make([]int, len(c.scope))
	copy(out, c.scope)

	return out
}

// Checkable reports whether every variable in the scope is below the
// given frontier index. During index-ordered backtracking this is the
// rule that gates evaluation: a constraint becomes checkable exactly
// when its highest-indexed variable gets assigned.
func (c *Constraint) Checkable(frontier int) bool {
	for _, v := range c.scope {
		if v >= frontier {
			return false
		}
	}

	return true
}

// Check evaluates the constraint's predicate against the full
// assignment, forwarding the caller's opaque data untouched.
func (c *Constraint) Check(values Assignment, data any) bool {
	return c.checker.Check(c, values, data)
}
