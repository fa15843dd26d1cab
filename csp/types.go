// Package csp defines the core data model for finite-domain Constraint
// Satisfaction Problems: assignments with an explicit unassigned state,
// the Checker plugin contract, sentinel errors, and the three-way solve
// Result shared by every solver in lvlcsp.
package csp

import "errors"

// Sentinel errors for csp model construction and access.
var (
	// ErrZeroArity indicates a constraint was created with arity < 1.
	ErrZeroArity = errors.New("csp: constraint arity must be at least 1")
	// ErrNilChecker indicates a constraint was created without a checker.
	ErrNilChecker = errors.New("csp: checker must not be nil")
	// ErrPositionRange indicates a scope position outside [0, arity).
	ErrPositionRange = errors.New("csp: scope position out of range")
	// ErrVariableRange indicates a variable index outside the problem's range.
	ErrVariableRange = errors.New("csp: variable index out of range")
	// ErrZeroVariables indicates a problem was created with no variables.
	ErrZeroVariables = errors.New("csp: problem must have at least one variable")
	// ErrConstraintCount indicates a negative constraint count.
	ErrConstraintCount = errors.New("csp: number of constraints must be non-negative")
	// ErrIndexRange indicates a domain or constraint index outside the problem's range.
	ErrIndexRange = errors.New("csp: index out of range")
	// ErrDomainSize indicates a negative domain size.
	ErrDomainSize = errors.New("csp: domain size must be non-negative")
	// ErrNilConstraint indicates a nil constraint was attached to a problem.
	ErrNilConstraint = errors.New("csp: constraint must not be nil")
	// ErrConstraintUnset indicates a problem still has empty constraint slots.
	ErrConstraintUnset = errors.New("csp: problem has unset constraint slots")
	// ErrNilProblem is returned by solvers when the problem pointer is nil.
	ErrNilProblem = errors.New("csp: problem is nil")
	// ErrAssignmentSize is returned by solvers when the assignment buffer
	// does not hold exactly one entry per variable.
	ErrAssignmentSize = errors.New("csp: assignment length must equal the number of variables")
)

// Unassigned marks an Assignment slot that holds no value yet.
// Domain values are non-negative, so -1 can never collide with a
// legitimate assignment (value 0 is an ordinary domain value).
const Unassigned = -1

// Assignment is a caller-owned buffer of one value per variable.
// Slot i holds a value in [0, domain size of i) once assigned, or
// Unassigned. After a failed solve the contents are unspecified and
// must not be read as a partial solution.
type Assignment []int

// NewAssignment returns an Assignment of n slots, all Unassigned.
func NewAssignment(n int) Assignment {
	a := make(Assignment, n)
	for i := range a {
		a[i] = Unassigned
	}

	return a
}

// Reset marks every slot Unassigned, allowing the buffer to be reused
// across independent solve calls.
func (a Assignment) Reset() {
	for i := range a {
		a[i] = Unassigned
	}
}

// Checker is the single plugin contract of the engine: a predicate that
// judges a constraint against the full assignment. Implementations
// receive the constraint itself (for its scope), the entire assignment
// buffer, and the opaque data value passed to the solve entry point.
// Checkers must not mutate the assignment.
type Checker interface {
	Check(c *Constraint, values Assignment, data any) bool
}

// CheckerFunc adapts an ordinary function to the Checker interface,
// in the manner of http.HandlerFunc.
type CheckerFunc func(c *Constraint, values Assignment, data any) bool

// Check calls fn(c, values, data).
func (fn CheckerFunc) Check(c *Constraint, values Assignment, data any) bool {
	return fn(c, values, data)
}

// Result is the three-way outcome of a solve call. It keeps "no solution
// exists" distinguishable from "the search was cancelled", which a bare
// boolean cannot express.
type Result uint8

const (
	// Solved means a complete, consistent assignment was found and
	// written to the caller's buffer.
	Solved Result = iota
	// Unsatisfiable means the search space was exhausted without a
	// consistent complete assignment.
	Unsatisfiable
	// Cancelled means the solve context was done before the search
	// could finish; satisfiability remains unknown.
	Cancelled
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case Solved:
		return "solved"
	case Unsatisfiable:
		return "unsatisfiable"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
