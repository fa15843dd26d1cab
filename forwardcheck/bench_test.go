package forwardcheck_test

import (
	"testing"

	"github.com/katalvlaran/lvlcsp/csp"
	"github.com/katalvlaran/lvlcsp/forwardcheck"
	"github.com/katalvlaran/lvlcsp/queens"
)

// benchQueens measures forward checking on an n-queens instance. The
// problem is built once; each iteration reuses the assignment buffer
// after a Reset.
func benchQueens(b *testing.B, n int) {
	b.Helper()

	p, err := queens.NewProblem(n)
	if err != nil {
		b.Fatal(err)
	}
	values := csp.NewAssignment(n)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		values.Reset()
		if res, _ := forwardcheck.Solve(p, values, nil); res != csp.Solved {
			b.Fatalf("unexpected result %v", res)
		}
	}
}

func BenchmarkSolve_Queens8(b *testing.B)  { benchQueens(b, 8) }
func BenchmarkSolve_Queens12(b *testing.B) { benchQueens(b, 12) }
