package forwardcheck_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcsp/csp"
	"github.com/katalvlaran/lvlcsp/forwardcheck"
)

// ExampleSolve colors a triangle of three regions with three colors so
// that neighbouring regions never share a color.
func ExampleSolve() {
	p, _ := csp.NewProblem(3, 3)
	for i := 0; i < 3; i++ {
		_ = p.SetDomain(i, 3)
	}

	differ := csp.CheckerFunc(func(c *csp.Constraint, values csp.Assignment, _ any) bool {
		s := c.Scope()

		return values[s[0]] != values[s[1]]
	})
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}}
	for i, e := range edges {
		c, _ := csp.NewBinary(e[0], e[1], differ)
		_ = p.SetConstraint(i, c)
	}

	values := csp.NewAssignment(3)
	res, _ := forwardcheck.Solve(p, values, nil)

	fmt.Println(res)
	fmt.Println(values)
	// Output:
	// solved
	// [0 1 2]
}
