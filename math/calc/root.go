package calc

import (
	"fmt"
	"math"
)

// ConvergenceError is returned by FindRoot when the iteration fails to meet
// its tolerance within the iteration budget, or when the function or its
// derivative stops being usable (NaN, Inf, or a zero derivative).
type ConvergenceError struct {
	X0, X  float64 // starting point and last iterate
	Iters  int
	Reason string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf(
		"Root finder failed after %d iterations (x0 = %g, x = %g): %s",
		e.Iters, e.X0, e.X, e.Reason,
	)
}

const findRootMaxIters = 100

// FindRoot finds a root of f near x0 by Newton-Raphson iteration, using the
// analytic derivative df. The iteration stops once the relative step size
// drops below rtol. Steps that would push the iterate non-positive are
// halved, since every caller in this repository works with radii.
func FindRoot(f, df func(float64) float64, x0, rtol float64) (float64, error) {
	x := x0
	for i := 0; i < findRootMaxIters; i++ {
		fx, dfx := f(x), df(x)
		if math.IsNaN(fx) || math.IsInf(fx, 0) ||
			math.IsNaN(dfx) || math.IsInf(dfx, 0) {
			return x, &ConvergenceError{x0, x, i, "f or f' is not finite"}
		}
		if dfx == 0 {
			return x, &ConvergenceError{x0, x, i, "f' is zero"}
		}

		step := fx / dfx
		next := x - step
		for j := 0; next <= 0 && j < 60; j++ {
			step /= 2
			next = x - step
		}
		x = next

		if math.Abs(step) <= rtol*math.Abs(x) {
			return x, nil
		}
	}
	return x, &ConvergenceError{x0, x, findRootMaxIters, "too many iterations"}
}
