// Package forwardcheck implements forward checking over a csp.Problem:
// depth-first search driven by Minimum-Remaining-Values variable
// selection and Least-Constraining-Value value ordering, pruning
// neighbor domains after each assignment and restoring them on
// backtrack through a scoped undo log.
//
// What:
//
//   - Context: the ephemeral per-solve state — availability mask and
//     remaining-value count per variable, assigned flags, and a trail of
//     prunings replayed backward on backtrack (Mark / RestoreTo).
//   - NewContext: builds the state and runs the unary pre-filter, so
//     "pre-filled cell" constraints shrink the search space before the
//     first branch; a variable narrowed to one value starts assigned.
//   - SelectVariable: MRV (fail-first) — fewest remaining values wins,
//     ties to the lowest index, deterministically.
//   - OrderValues: LCV — values sorted stably by how many neighbor
//     candidates they would eliminate across binary constraints.
//   - PruneNeighbors: removes neighbor values inconsistent with the
//     newest assignment, recording every removal on the trail.
//   - Solve: the entry point tying it all together.
//
// Why:
//   - Plain backtracking discovers conflicts late; forward checking
//     removes doomed values the moment they become impossible, and
//     MRV/LCV steer the search toward early failure and maximal
//     flexibility — often orders of magnitude fewer nodes.
//
// Complexity:
//
//   - Time:   worst case exponential in the number of variables; per
//     node MRV is O(n), LCV and pruning are O(constraints × domain).
//   - Memory: O(total domain size) masks + O(prunings) trail.
//
// Concurrency:
//
//   - A Context and its Assignment buffer belong to one in-flight solve;
//     the Problem itself is only read and may be shared.
//
// Errors:
//
//   - csp.ErrNilProblem        if p is nil.
//   - csp.ErrAssignmentSize    if len(values) != p.NumVariables().
//   - csp.ErrConstraintUnset   if a constraint slot was never set.
//   - context error            alongside csp.Cancelled when the context ends.
package forwardcheck
