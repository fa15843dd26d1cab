package csp_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcsp/csp"
)

// ExampleProblem_Consistent models two variables that must differ and
// shows how the frontier gates constraint evaluation: the violation is
// invisible until both variables lie below the frontier.
func ExampleProblem_Consistent() {
	mustDiffer := csp.CheckerFunc(func(c *csp.Constraint, values csp.Assignment, _ any) bool {
		a, _ := c.Variable(0)
		b, _ := c.Variable(1)

		return values[a] != values[b]
	})

	p, _ := csp.NewProblem(2, 1)
	_ = p.SetDomain(0, 2)
	_ = p.SetDomain(1, 2)

	c, _ := csp.NewBinary(0, 1, mustDiffer)
	_ = p.SetConstraint(0, c)

	values := csp.Assignment{1, 1} // both variables hold the same value

	fmt.Println(p.Consistent(values, nil, 1)) // constraint not checkable yet
	fmt.Println(p.Consistent(values, nil, 2)) // now it is, and it fails

	values[1] = 0
	fmt.Println(p.Consistent(values, nil, 2))

	// Output:
	// true
	// false
	// true
}
