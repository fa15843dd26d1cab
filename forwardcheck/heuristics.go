package forwardcheck

import (
	"sort"

	"github.com/katalvlaran/lvlcsp/csp"
)

// SelectVariable implements the Minimum-Remaining-Values (fail-first)
// heuristic: among unassigned variables it returns the one with the
// fewest candidate values left, ties broken by the lowest index.
// ok is false when every variable is assigned; callers must not use the
// returned index in that case.
func SelectVariable(ctx *Context) (variable int, ok bool) {
	best := -1
	bestCount := 0
	for i := 0; i < ctx.NumVariables(); i++ {
		if ctx.Assigned(i) {
			continue
		}
		count := ctx.Remaining(i)
		if best == -1 || count < bestCount {
			best = i
			bestCount = count
		}
	}

	return best, best != -1
}

// OrderValues implements the Least-Constraining-Value heuristic for
// variable: each available value is scored by how many candidate values
// it would rule out across binary constraints linking variable to a
// still-unassigned neighbor, and the values are returned in ascending
// score order (ties keep domain order — the sort is stable).
//
// Only binary constraints influence the score; unary and higher-arity
// constraints have no single "other variable" to score against and are
// ignored. The assignment buffer is used as scratch space for the trial
// pairs and the touched slots are left Unassigned afterwards.
func OrderValues(p *csp.Problem, ctx *Context, values csp.Assignment, data any, variable int) []int {
	type scored struct {
		val       int
		conflicts int
	}

	pairs := make([]scored, 0, ctx.Remaining(variable))

	// 1. Score every available value of variable
	for val := 0; val < ctx.sizes[variable]; val++ {
		if !ctx.Available(variable, val) {
			continue
		}
		values[variable] = val
		conflicts := 0

		// 2. Sum rejected (val, other) pairs over binary constraints
		//    with an unassigned other endpoint
		for ci := 0; ci < p.NumConstraints(); ci++ {
			c, _ := p.Constraint(ci)
			other, involved := binaryOther(c, variable)
			if !involved || other == variable || ctx.Assigned(other) {
				continue
			}
			for oval := 0; oval < ctx.sizes[other]; oval++ {
				if !ctx.Available(other, oval) {
					continue
				}
				values[other] = oval
				if !c.Check(values, data) {
					conflicts++
				}
			}
			values[other] = csp.Unassigned
		}

		pairs = append(pairs, scored{val: val, conflicts: conflicts})
	}
	values[variable] = csp.Unassigned

	// 3. Least constraining first; stability preserves domain order on ties
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].conflicts < pairs[j].conflicts
	})

	ordered := make([]int, len(pairs))
	for i, s := range pairs {
		ordered[i] = s.val
	}

	return ordered
}

// PruneNeighbors is the forward-checking propagation step. With
// values[variable] freshly assigned (and already verified consistent),
// it walks every binary constraint linking variable to an unassigned
// neighbor and removes each of the neighbor's still-available values
// that now violates the constraint. Every removal lands on the
// context's trail, so the caller can undo the whole step with
// RestoreTo(mark) on backtrack.
func PruneNeighbors(p *csp.Problem, ctx *Context, values csp.Assignment, data any, variable int) {
	for ci := 0; ci < p.NumConstraints(); ci++ {
		c, _ := p.Constraint(ci)
		other, involved := binaryOther(c, variable)
		if !involved || ctx.Assigned(other) {
			continue
		}
		for oval := 0; oval < ctx.sizes[other]; oval++ {
			if !ctx.Available(other, oval) {
				continue
			}
			values[other] = oval
			if !c.Check(values, data) {
				ctx.prune(other, oval)
			}
		}
		values[other] = csp.Unassigned
	}
}

// binaryOther returns the opposite endpoint of a binary constraint
// involving variable. involved is false when c is not binary or does
// not reference variable. A degenerate binary constraint with both
// positions on variable reports the variable itself.
func binaryOther(c *csp.Constraint, variable int) (other int, involved bool) {
	if c.Arity() != 2 {
		return 0, false
	}
	a, _ := c.Variable(0)
	b, _ := c.Variable(1)
	switch variable {
	case a:
		return b, true
	case b:
		return a, true
	default:
		return 0, false
	}
}
