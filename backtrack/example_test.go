package backtrack_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcsp/backtrack"
	"github.com/katalvlaran/lvlcsp/csp"
)

// ExampleSolve models a tiny scheduling question: two tasks pick a slot
// in {0,1,2}, they may not share a slot, and task 0 must run strictly
// before task 1. Chronological backtracking finds the first solution in
// ascending value order.
func ExampleSolve() {
	differ := csp.CheckerFunc(func(c *csp.Constraint, values csp.Assignment, _ any) bool {
		a, _ := c.Variable(0)
		b, _ := c.Variable(1)

		return values[a] != values[b]
	})
	before := csp.CheckerFunc(func(c *csp.Constraint, values csp.Assignment, _ any) bool {
		a, _ := c.Variable(0)
		b, _ := c.Variable(1)

		return values[a] < values[b]
	})

	p, _ := csp.NewProblem(2, 2)
	_ = p.SetDomain(0, 3)
	_ = p.SetDomain(1, 3)

	c0, _ := csp.NewBinary(0, 1, differ)
	c1, _ := csp.NewBinary(0, 1, before)
	_ = p.SetConstraint(0, c0)
	_ = p.SetConstraint(1, c1)

	values := csp.NewAssignment(2)
	res, err := backtrack.Solve(p, values, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res)
	fmt.Println(values)

	// Output:
	// solved
	// [0 1]
}
