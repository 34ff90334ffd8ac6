package profile

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchingRadius(t *testing.T) {
	nfw := &NFW{Rs: 21.1, Rhos: 5.6e6}
	sol := &Soliton{Rsol: 0.53, Rhosol: 3.1e10}

	r, err := MatchingRadius(nfw, sol, nil)
	if err != nil {
		t.Fatal(err.Error())
	}

	assert.InDelta(t, 0.4869202, r, 1e-4, "matching radius")
	relDiff := math.Abs(nfw.Density(r)-sol.Density(r)) / sol.Density(r)
	if relDiff > 1e-6 {
		t.Errorf("Densities differ by %g at the matching radius.", relDiff)
	}
}

// Different starting radii should land on the same crossing.
func TestMatchingRadiusStart(t *testing.T) {
	nfw := &NFW{Rs: 21.1, Rhos: 5.6e6}
	sol := &Soliton{Rsol: 0.53, Rhosol: 3.1e10}

	for _, xstart := range []float64{1.0, 2.0, 3.0} {
		r, err := MatchingRadius(nfw, sol, &MatchOptions{XStart: xstart})
		if err != nil {
			t.Fatalf("xstart = %g: %s", xstart, err.Error())
		}
		assert.InEpsilon(t, 0.48692016, r, 1e-6, "xstart = %g", xstart)
	}
}

// If the NFW density exceeds the soliton density at every radius there is no
// crossing, and the solver has to say so instead of returning a radius.
func TestMatchingRadiusNoCrossing(t *testing.T) {
	nfw := &NFW{Rs: 20, Rhos: 5.6e6}
	sol := &Soliton{Rsol: 0.5, Rhosol: 1e6}

	_, err := MatchingRadius(nfw, sol, nil)
	if err == nil {
		t.Fatal("Expected a convergence failure, got none.")
	}

	convErr := &ConvergenceError{}
	if !errors.As(err, &convErr) {
		t.Fatalf("Expected a *ConvergenceError, got %T.", err)
	}
	assert.Equal(t, 20.0, convErr.Rs)
	assert.Equal(t, 5.6e6, convErr.Rhos)
	assert.Equal(t, 0.5, convErr.Rsol)
	assert.Equal(t, 1e6, convErr.Rhosol)
}
