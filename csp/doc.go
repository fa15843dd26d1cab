// Package csp defines the data model shared by every solver in lvlcsp:
// problems, constraints, assignments, the Checker plugin contract, and
// the three-way solve Result.
//
// What:
//
//   - Problem: a fixed set of variables (identified by index) with
//     contiguous integer domains [0, size), plus attached constraints.
//   - Constraint: an immutable arity-k relation over an ordered tuple of
//     variable indices, judged by a caller-supplied Checker predicate.
//   - Assignment: a caller-owned value buffer with an explicit
//     Unassigned (-1) state, so value 0 stays an ordinary domain value.
//   - Consistent: the incremental rule solvers use while extending a
//     partial assignment — evaluate exactly the constraints whose whole
//     scope lies below the current frontier.
//   - Result: Solved, Unsatisfiable or Cancelled, keeping "proven
//     unsatisfiable" apart from "ran out of time".
//
// Why:
//   - Model puzzles (N-Queens, Sudoku, scheduling) declaratively and let
//     a generic engine search for satisfying assignments
//   - Keep the model domain-agnostic: the engine only ever calls
//     Checker.Check with the full assignment and an opaque data value
//
// Key Types:
//
//   - Checker / CheckerFunc: the sole plugin contract
//   - Constraint: NewConstraint / NewUnary / NewBinary, Scope, Checkable
//   - Problem: NewProblem, SetDomain, SetConstraint, Consistent, Validate
//   - Assignment: NewAssignment, Reset
//   - Result: Solved, Unsatisfiable, Cancelled
//
// Concurrency:
//
//   - A Problem is immutable after construction; independent solves may
//     share it as long as each owns its Assignment buffer.
//
// Errors:
//
//   - Construction and access return sentinel errors (ErrZeroArity,
//     ErrNilChecker, ErrIndexRange, ErrVariableRange, ...) — nothing in
//     this package panics or aborts.
//
// See the backtrack and forwardcheck packages for the two solvers built
// on this model.
package csp
