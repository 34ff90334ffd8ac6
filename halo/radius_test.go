package halo

import (
	"math"
	"testing"

	"github.com/phil-mansfield/wdmhalo/cosmo"
)

func TestRadiusFromString(t *testing.T) {
	table := []struct {
		s  string
		r  Radius
		ok bool
	}{
		{"200c", R200c, true},
		{"R200c", R200c, true},
		{"r200m", R200m, true},
		{"vir", RVir, true},
		{"RVir", RVir, true},
		{"500c", R500c, true},
		{"2500c", R2500c, true},
		{"", -1, false},
		{"banana", -1, false},
	}

	for i, test := range table {
		r, ok := RadiusFromString(test.s)
		if ok != test.ok || (ok && r != test.r) {
			t.Errorf(
				"%d) RadiusFromString(%q) = %v, %v", i+1, test.s, r, ok,
			)
		}
	}
}

func TestMassRadiusRoundTrip(t *testing.T) {
	c := &cosmo.Planck
	defs := []Radius{R200c, R200m, RVir, R500c, R2500c}
	masses := []float64{1e9, 1e10, 1e12, 1e15}

	for _, def := range defs {
		for _, m := range masses {
			for _, z := range []float64{0, 0.5, 2} {
				r := def.FromMass(c, z, m)
				m2 := def.Mass(c, z, r)
				if math.Abs(m2-m) > 1e-10*m {
					t.Errorf(
						"%s: Mass(FromMass(%g)) = %g at z = %g",
						def, m, m2, z,
					)
				}
			}
		}
	}
}

func TestBufferFormsMatchScalar(t *testing.T) {
	c := &cosmo.Planck
	ms := []float64{1e9, 1e11, 1e13}
	out := make([]float64, len(ms))

	R200c.FromMasses(c, 0, ms, out)
	for i, m := range ms {
		if out[i] != R200c.FromMass(c, 0, m) {
			t.Errorf("FromMasses disagrees with FromMass for m = %g", m)
		}
	}

	radii := []float64{10, 100, 1000}
	R200c.Masses(c, 0, radii, out)
	for i, r := range radii {
		if out[i] != R200c.Mass(c, 0, r) {
			t.Errorf("Masses disagrees with Mass for r = %g", r)
		}
	}
}

// Denser definitions give smaller radii at fixed mass.
func TestDefinitionOrdering(t *testing.T) {
	c := &cosmo.Planck
	m := 1e12

	r200c := R200c.FromMass(c, 0, m)
	r500c := R500c.FromMass(c, 0, m)
	r2500c := R2500c.FromMass(c, 0, m)
	rvir := RVir.FromMass(c, 0, m)

	if !(r2500c < r500c && r500c < r200c && r200c < rvir) {
		t.Errorf(
			"Radius ordering is wrong: r2500c = %g, r500c = %g, "+
				"r200c = %g, rvir = %g", r2500c, r500c, r200c, rvir,
		)
	}
}
