package calc

import (
	"math"
	"testing"
)

func TestFindRoot(t *testing.T) {
	table := []struct {
		f, df func(float64) float64
		x0    float64
		root  float64
	}{
		{
			func(x float64) float64 { return x*x - 2 },
			func(x float64) float64 { return 2 * x },
			2.0, math.Sqrt2,
		},
		{
			func(x float64) float64 { return x*x*x - 8 },
			func(x float64) float64 { return 3 * x * x },
			1.0, 2.0,
		},
		{
			func(x float64) float64 { return math.Log(x) },
			func(x float64) float64 { return 1 / x },
			3.0, 1.0,
		},
	}

	for i, test := range table {
		x, err := FindRoot(test.f, test.df, test.x0, 1e-12)
		if err != nil {
			t.Errorf("%d) FindRoot failed: %s", i+1, err.Error())
		} else if math.Abs(x-test.root) > 1e-9*test.root {
			t.Errorf("%d) FindRoot returned %g, not %g", i+1, x, test.root)
		}
	}
}

func TestFindRootNoRoot(t *testing.T) {
	// x^2 + 1 has no real root: the iteration has to give up rather than
	// return something.
	f := func(x float64) float64 { return x*x + 1 }
	df := func(x float64) float64 { return 2 * x }

	_, err := FindRoot(f, df, 1.0, 1e-9)
	if err == nil {
		t.Fatal("Expected a convergence failure, got none.")
	}
	if _, ok := err.(*ConvergenceError); !ok {
		t.Fatalf("Expected a *ConvergenceError, got %T.", err)
	}
}

func TestFindRootZeroDeriv(t *testing.T) {
	f := func(x float64) float64 { return 1.0 }
	df := func(x float64) float64 { return 0.0 }

	_, err := FindRoot(f, df, 1.0, 1e-9)
	if err == nil {
		t.Fatal("Expected an error for a zero derivative.")
	}
}
