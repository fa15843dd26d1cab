// Package lvlcsp is an in-memory engine for modeling and solving finite-domain
// Constraint Satisfaction Problems — from plain chronological backtracking to
// forward checking with MRV and LCV heuristics.
//
// 🚀 What is lvlcsp?
//
//	A small, focused library that brings together:
//		• Core model: variables with integer domains, constraints as pluggable predicates
//		• Chronological backtracking: index-ordered depth-first search
//		• Forward checking: live domain masks, pruning with a scoped undo log
//		• Heuristics: Minimum-Remaining-Values selection, Least-Constraining-Value ordering
//		• Ready-made models: N-Queens and 9×9 Sudoku builders, parsing & printing
//		• CLIs: csp-bench (solver comparison, CSV output) and solve-sudoku
//
// ✨ Why choose lvlcsp?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Domain-agnostic – model any puzzle with a Checker predicate
//   - Deterministic – stable heuristics, reproducible search order
//   - Cancellable – every solver honors context.Context
//
// Under the hood, everything is organized in small subpackages:
//
//	csp/          — Problem, Constraint, Assignment, Checker & Result types
//	backtrack/    — chronological backtracking solver
//	forwardcheck/ — forward-checking solver, Context, MRV/LCV heuristics
//	queens/       — N-Queens model builder & verification
//	sudoku/       — Sudoku model builder, puzzle parsing, grid rendering
//	cmd/          — csp-bench & solve-sudoku command-line tools
//
// Quick ASCII example (4-Queens, one solution):
//
//	    . ♛ . .
//	    . . . ♛
//	    ♛ . . .
//	    . . ♛ .
//
//	four variables (columns), domain {0..3} (rows), six no-attack constraints.
//
// Dive into the package docs for tutorials, the solver contracts, and the
// exact semantics of pruning and restoration.
//
//	go get github.com/katalvlaran/lvlcsp
package lvlcsp
