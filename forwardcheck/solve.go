package forwardcheck

import (
	"github.com/katalvlaran/lvlcsp/csp"
)

// searcher encapsulates state during the heuristic-driven search.
type searcher struct {
	problem *csp.Problem   // immutable problem description
	ctx     *Context       // live domain state for this solve
	values  csp.Assignment // caller-owned assignment buffer
	data    any            // opaque payload forwarded to every checker
	opts    Options        // search options
}

// Solve runs forward checking with MRV variable selection and LCV value
// ordering. It builds a fresh Context (running the unary pre-filter),
// searches, and returns csp.Solved with the buffer filled, or
// csp.Unsatisfiable / csp.Cancelled with the buffer unspecified.
func Solve(p *csp.Problem, values csp.Assignment, data any, opts ...Option) (csp.Result, error) {
	// 1. Validate input problem and buffer
	if p == nil {
		return csp.Unsatisfiable, csp.ErrNilProblem
	}
	if len(values) != p.NumVariables() {
		return csp.Unsatisfiable, csp.ErrAssignmentSize
	}
	if err := p.Validate(); err != nil {
		return csp.Unsatisfiable, err
	}

	// 2. Apply options
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	// 3. Build the per-solve context; the unary pre-filter may already
	//    bind pre-filled variables
	ctx, err := NewContext(p, values, data)
	if err != nil {
		return csp.Unsatisfiable, err
	}

	s := &searcher{problem: p, ctx: ctx, values: values, data: data, opts: sopts}

	// 4. Pre-filter bindings can conflict with each other (e.g. two
	//    pre-filled cells in the same row); refute before searching
	if !s.consistentAssigned() {
		return csp.Unsatisfiable, nil
	}

	// 5. Search
	return s.search()
}

// search is the recursive forward-checking procedure. Completion is
// "no unassigned variable remains"; there is no frontier index.
func (s *searcher) search() (csp.Result, error) {
	// 1. Cancellation check
	select {
	case <-s.opts.Ctx.Done():
		return csp.Cancelled, s.opts.Ctx.Err()
	default:
	}

	// 2. Base case: every variable assigned and checked incrementally
	variable, ok := SelectVariable(s.ctx)
	if !ok {
		return csp.Solved, nil
	}

	// 3. Least constraining values first
	ordered := OrderValues(s.problem, s.ctx, s.values, s.data, variable)

	// 4. Trial loop
	for _, val := range ordered {
		s.values[variable] = val
		s.ctx.Assign(variable)

		// 4a. Local check over constraints whose scope is now fully
		//     assigned; an inconsistent value is skipped without pruning
		if !s.consistentAssigned() {
			s.ctx.Unassign(variable)
			continue
		}

		// 4b. Propagate: prune neighbor values that can no longer work,
		//     scoped by a trail mark
		mark := s.ctx.Mark()
		PruneNeighbors(s.problem, s.ctx, s.values, s.data, variable)

		// 4c. Recurse
		res, err := s.search()
		if res == csp.Solved || res == csp.Cancelled {
			// Success keeps the assignment and its prunings;
			// cancellation propagates immediately.
			return res, err
		}

		// 4d. Dead end: undo this frame's prunings and abandon the value
		s.ctx.RestoreTo(mark)
		s.ctx.Unassign(variable)
	}

	// 5. Exhaustion
	return csp.Unsatisfiable, nil
}

// consistentAssigned reports whether every constraint whose whole scope
// is assigned holds. Constraints touching an unassigned variable are
// excluded, which makes the rule order-independent — the MRV ordering
// assigns variables out of index order.
func (s *searcher) consistentAssigned() bool {
	for ci := 0; ci < s.problem.NumConstraints(); ci++ {
		c, _ := s.problem.Constraint(ci)
		if s.scopeAssigned(c) && !c.Check(s.values, s.data) {
			return false
		}
	}

	return true
}

// scopeAssigned reports whether every variable in c's scope is assigned.
func (s *searcher) scopeAssigned(c *csp.Constraint) bool {
	for pos := 0; pos < c.Arity(); pos++ {
		v, _ := c.Variable(pos)
		if !s.ctx.Assigned(v) {
			return false
		}
	}

	return true
}
