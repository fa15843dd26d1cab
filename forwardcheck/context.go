package forwardcheck

import (
	"github.com/katalvlaran/lvlcsp/csp"
)

// trailEntry records one reversible pruning: value was removed from the
// live domain of variable.
type trailEntry struct {
	variable int
	value    int
}

// Context is the ephemeral per-solve state of forward checking: one
// availability mask per variable (true = still a candidate), a cached
// remaining-value count, an assigned flag, and a trail of prunings that
// can be replayed backward on backtrack.
//
// A Context belongs to exactly one in-flight solve together with its
// Assignment buffer; it must never be shared across concurrent solves.
// The Problem it was built from is only read, never written.
type Context struct {
	sizes    []int        // original domain size per variable (copy)
	masks    [][]bool     // masks[i][v]: value v still available for variable i
	counts   []int        // cached number of true entries in masks[i]
	assigned []bool       // assigned[i]: variable i holds its final trial value
	trail    []trailEntry // undo log of prunings, oldest first
}

// NewContext builds a fresh Context for p: all values available, no
// variable assigned. It then runs the unary pre-filter: every arity-1
// constraint is tested against each candidate value of its variable (on
// a scratch assignment), and failing values are removed permanently —
// these prunings are never undone by backtracking, so they bypass the
// trail. A variable left with exactly one value is marked assigned and
// that value is written into values, so pre-filled cells survive into
// the final solution. A variable left with no values simply keeps an
// empty mask; the search will refute it immediately.
//
// Errors: csp.ErrNilProblem, csp.ErrAssignmentSize.
func NewContext(p *csp.Problem, values csp.Assignment, data any) (*Context, error) {
	// 1. Validate inputs
	if p == nil {
		return nil, csp.ErrNilProblem
	}
	n := p.NumVariables()
	if len(values) != n {
		return nil, csp.ErrAssignmentSize
	}

	// 2. Allocate masks sized to each variable's declared domain
	ctx := &Context{
		sizes:    make([]int, n),
		masks:    make([][]bool, n),
		counts:   make([]int, n),
		assigned: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		size, _ := p.Domain(i)
		ctx.sizes[i] = size
		ctx.masks[i] = make([]bool, size)
		for v := 0; v < size; v++ {
			ctx.masks[i][v] = true
		}
		ctx.counts[i] = size
	}

	// 3. Unary pre-filter: drop candidate values rejected by arity-1
	//    constraints before the search starts
	scratch := make(csp.Assignment, n)
	filtered := make([]bool, n)
	for ci := 0; ci < p.NumConstraints(); ci++ {
		c, _ := p.Constraint(ci)
		if c.Arity() != 1 {
			continue
		}
		v0, _ := c.Variable(0)
		filtered[v0] = true
		for val := 0; val < ctx.sizes[v0]; val++ {
			if !ctx.masks[v0][val] {
				continue
			}
			scratch[v0] = val
			if !c.Check(scratch, data) {
				ctx.masks[v0][val] = false
				ctx.counts[v0]--
			}
		}
	}

	// 4. A filtered variable narrowed to a single value is effectively
	//    bound: record the value and exclude it from selection. Untouched
	//    variables stay unassigned even with a size-1 domain, so their
	//    constraints are still checked during search.
	for i := 0; i < n; i++ {
		if filtered[i] && ctx.counts[i] == 1 {
			ctx.assigned[i] = true
			values[i] = ctx.singleValue(i)
		}
	}

	return ctx, nil
}

// singleValue returns the sole available value of variable i.
// Meaningful only when Remaining(i) == 1.
func (ctx *Context) singleValue(i int) int {
	for v, ok := range ctx.masks[i] {
		if ok {
			return v
		}
	}

	return csp.Unassigned
}

// NumVariables returns the number of variables tracked by the context.
func (ctx *Context) NumVariables() int {
	return len(ctx.sizes)
}

// Assigned reports whether variable i currently holds a trial value.
func (ctx *Context) Assigned(i int) bool {
	return ctx.assigned[i]
}

// Assign marks variable i as holding its current trial value. The value
// itself lives in the caller's Assignment buffer.
func (ctx *Context) Assign(i int) {
	ctx.assigned[i] = true
}

// Unassign clears the assigned flag of variable i when its trial value
// is abandoned.
func (ctx *Context) Unassign(i int) {
	ctx.assigned[i] = false
}

// Available reports whether value v is still a candidate for variable i.
func (ctx *Context) Available(i, v int) bool {
	if v < 0 || v >= ctx.sizes[i] {
		return false
	}

	return ctx.masks[i][v]
}

// Remaining returns the number of candidate values left for variable i.
func (ctx *Context) Remaining(i int) int {
	return ctx.counts[i]
}

// Mark returns the current trail depth. Pair it with RestoreTo to scope
// all prunings performed by one search frame.
func (ctx *Context) Mark() int {
	return len(ctx.trail)
}

// prune removes value v from the live domain of variable i and records
// the removal on the trail. The caller guarantees v is available.
func (ctx *Context) prune(i, v int) {
	ctx.masks[i][v] = false
	ctx.counts[i]--
	ctx.trail = append(ctx.trail, trailEntry{variable: i, value: v})
}

// RestoreTo replays the trail backward down to the given mark, making
// every value pruned since available again. It must run exactly once
// per abandoned search frame; a frame that succeeds keeps its prunings
// (the assignment stands) and the trail is dropped with the context.
func (ctx *Context) RestoreTo(mark int) {
	for i := len(ctx.trail) - 1; i >= mark; i-- {
		e := ctx.trail[i]
		ctx.masks[e.variable][e.value] = true
		ctx.counts[e.variable]++
	}
	ctx.trail = ctx.trail[:mark]
}

// TrailLen returns the number of outstanding pruning records. After a
// fully unwound (failed) search it is zero: every abandoned branch has
// restored its prunings.
func (ctx *Context) TrailLen() int {
	return len(ctx.trail)
}
