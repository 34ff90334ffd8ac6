/*package halo converts between halo masses and halo radii under different
overdensity definitions.
*/
package halo

import (
	"math"
	"strings"

	"github.com/phil-mansfield/wdmhalo/cosmo"
)

type Radius int

const (
	R200c Radius = iota
	R200m
	RVir
	R500c
	R2500c
)

func RadiusFromString(s string) (r Radius, ok bool) {
	s = strings.ToLower(s)
	switch s {
	case "200m", "r200m":
		return R200m, true
	case "200c", "r200c":
		return R200c, true
	case "vir", "rvir":
		return RVir, true
	case "500c", "r500c":
		return R500c, true
	case "2500c", "r2500c":
		return R2500c, true
	}
	return -1, false
}

func (r Radius) String() string {
	switch r {
	case R200m:
		return "R200m"
	case R200c:
		return "R200c"
	case RVir:
		return "RVir"
	case R500c:
		return "R500c"
	case R2500c:
		return "R2500c"
	}
	panic(":3")
}

func (r Radius) MassString() string {
	switch r {
	case R200m:
		return "M200m"
	case R200c:
		return "M200c"
	case RVir:
		return "MVir"
	case R500c:
		return "M500c"
	case R2500c:
		return "M2500c"
	}
	panic(":3")
}

func (r Radius) rhoRef(c *cosmo.Params, z float64) float64 {
	switch r {
	case R200c:
		return 200 * cosmo.RhoCritical(c, z)
	case R200m:
		return 200 * cosmo.RhoAverage(c, z)
	case RVir:
		return 177.653 * cosmo.RhoCritical(c, z)
	case R500c:
		return 500 * cosmo.RhoCritical(c, z)
	case R2500c:
		return 2500 * cosmo.RhoCritical(c, z)
	}
	panic(":3")
}

// FromMass returns the radius in physical kpc enclosing the mass m (Msun) at
// the definition's overdensity.
func (r Radius) FromMass(c *cosmo.Params, z, m float64) float64 {
	factor := r.rhoRef(c, z) * 4 * math.Pi / 3
	return math.Pow(m/factor, 1.0/3)
}

// Mass returns the mass in Msun enclosed by the given radius (physical kpc)
// at the definition's overdensity.
func (r Radius) Mass(c *cosmo.Params, z, radius float64) float64 {
	factor := r.rhoRef(c, z) * 4 * math.Pi / 3
	return factor * (radius * radius * radius)
}

// FromMasses is the buffer form of FromMass.
func (r Radius) FromMasses(c *cosmo.Params, z float64, ms, out []float64) {
	factor := r.rhoRef(c, z) * 4 * math.Pi / 3
	for i, m := range ms {
		out[i] = math.Pow(m/factor, 1.0/3)
	}
}

// Masses is the buffer form of Mass.
func (r Radius) Masses(c *cosmo.Params, z float64, radii, out []float64) {
	factor := r.rhoRef(c, z) * 4 * math.Pi / 3
	for i, rad := range radii {
		out[i] = factor * (rad * rad * rad)
	}
}
