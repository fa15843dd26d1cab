package csp

// Problem is the static description of a CSP instance: a fixed array of
// per-variable domain sizes and a fixed array of constraint slots.
// Variables are identified purely by index; the domain of variable i is
// the contiguous value range [0, Domain(i)).
//
// A Problem is meant to be built once and then treated as immutable:
// solvers never mutate it, so independent solves may share one Problem
// concurrently as long as each uses its own Assignment buffer (and, for
// forward checking, its own Context).
type Problem struct {
	domains     []int         // domain size per variable
	constraints []*Constraint // attached constraints; nil until set
}

// NewProblem creates a problem with the given number of variables
// (each with domain size 0 until SetDomain) and the given number of
// empty constraint slots. Zero constraints is a legal, trivially
// satisfiable problem.
//
// Errors: ErrZeroVariables if numVariables < 1, ErrConstraintCount if
// numConstraints < 0.
func NewProblem(numVariables, numConstraints int) (*Problem, error) {
	if numVariables < 1 {
		return nil, ErrZeroVariables
	}
	if numConstraints < 0 {
		return nil, ErrConstraintCount
	}

	return &Problem{
		domains:     make([]int, numVariables),
		constraints: make([]*Constraint, numConstraints),
	}, nil
}

// NumVariables returns the number of variables.
func (p *Problem) NumVariables() int {
	return len(p.domains)
}

// NumConstraints returns the number of constraint slots.
func (p *Problem) NumConstraints() int {
	return len(p.constraints)
}

// SetDomain declares the domain of variable i as [0, size). Domain
// sizes are set once during construction and must not change afterwards
// (forward checking copies them into its own mutable state). A size of
// zero is legal and makes the problem trivially unsatisfiable.
//
// Errors: ErrIndexRange if i is out of range, ErrDomainSize if size < 0.
func (p *Problem) SetDomain(i, size int) error {
	if i < 0 || i >= len(p.domains) {
		return ErrIndexRange
	}
	if size < 0 {
		return ErrDomainSize
	}
	p.domains[i] = size

	return nil
}

// Domain returns the domain size of variable i.
//
// Errors: ErrIndexRange if i is out of range.
func (p *Problem) Domain(i int) (int, error) {
	if i < 0 || i >= len(p.domains) {
		return 0, ErrIndexRange
	}

	return p.domains[i], nil
}

// SetConstraint attaches c to slot i, validating that every variable in
// c's scope exists in this problem. The problem stores the reference;
// it never copies the constraint.
//
// Errors: ErrIndexRange if i is out of range, ErrNilConstraint if c is
// nil, ErrVariableRange if any scope variable >= NumVariables().
func (p *Problem) SetConstraint(i int, c *Constraint) error {
	if i < 0 || i >= len(p.constraints) {
		return ErrIndexRange
	}
	if c == nil {
		return ErrNilConstraint
	}
	for _, v := range c.scope {
		if v >= len(p.domains) {
			return ErrVariableRange
		}
	}
	p.constraints[i] = c

	return nil
}

// Constraint returns the constraint in slot i, or nil if the slot has
// not been set yet.
//
// Errors: ErrIndexRange if i is out of range.
func (p *Problem) Constraint(i int) (*Constraint, error) {
	if i < 0 || i >= len(p.constraints) {
		return nil, ErrIndexRange
	}

	return p.constraints[i], nil
}

// Validate reports whether the problem is ready to solve: every
// constraint slot must be filled. Solvers call this up front so an
// unset slot surfaces as ErrConstraintUnset instead of a mid-search
// surprise.
func (p *Problem) Validate() error {
	for _, c := range p.constraints {
		if c == nil {
			return ErrConstraintUnset
		}
	}

	return nil
}

// Consistent reports whether the partial assignment satisfies every
// constraint that is checkable below the frontier: exactly those whose
// scope variables are all < frontier. It returns false on the first
// failing checkable constraint and is vacuously true when none are
// checkable (e.g. frontier 0).
func (p *Problem) Consistent(values Assignment, data any, frontier int) bool {
	for _, c := range p.constraints {
		if c.Checkable(frontier) && !c.Check(values, data) {
			return false
		}
	}

	return true
}
