package profile

import (
	"math"
)

// NFW is the standard Navarro-Frenk-White halo profile,
// rho(r) = Rhos / ((r/Rs) (1 + r/Rs)^2).
type NFW struct {
	Rs   float64 // scale radius, kpc
	Rhos float64 // scale density, Msun / kpc^3
}

func (p *NFW) Density(r float64) float64 {
	x := r / p.Rs
	return p.Rhos / (x * (1 + x) * (1 + x))
}

// DensityDeriv returns the radial derivative of Density.
func (p *NFW) DensityDeriv(r float64) float64 {
	x := r / p.Rs
	onePlusX := 1 + x
	return -p.Rhos * (1 + 3*x) /
		(x * x * onePlusX * onePlusX * onePlusX) / p.Rs
}

// Mass returns the enclosed mass,
// M(r) = 4 pi Rhos Rs^3 (ln(1 + x) - x/(1 + x)). Note that Mass is linear
// in Rhos, which the virial factory in solnfw.go relies on.
func (p *NFW) Mass(r float64) float64 {
	x := r / p.Rs
	return 4 * math.Pi * p.Rhos * p.Rs * p.Rs * p.Rs *
		(math.Log(1+x) - x/(1+x))
}

func (p *NFW) ScaleRadius() float64 { return p.Rs }

// typechecking
var _ Profile = &NFW{}
