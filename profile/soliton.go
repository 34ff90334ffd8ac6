package profile

import (
	"math"
)

// Soliton is the flat-cored ground state profile of a wave dark matter halo,
// rho(r) = Rhosol (1 + (r/Rsol)^2)^-8.
type Soliton struct {
	Rsol   float64 // scale radius, kpc
	Rhosol float64 // central density, Msun / kpc^3
}

func (p *Soliton) Density(r float64) float64 {
	x := r / p.Rsol
	u := 1 + x*x
	u2 := u * u
	u4 := u2 * u2
	return p.Rhosol / (u4 * u4)
}

// DensityDeriv returns the radial derivative of Density,
// -16 Rhosol (r/Rsol) (1 + (r/Rsol)^2)^-9 / Rsol.
func (p *Soliton) DensityDeriv(r float64) float64 {
	x := r / p.Rsol
	u := 1 + x*x
	u2 := u * u
	u4 := u2 * u2
	u8 := u4 * u4
	return -16 * p.Rhosol * x / (u8 * u) / p.Rsol
}

// Mass returns the enclosed mass. Integrating 4 pi r^2 rho(r) with the
// substitution r = Rsol tan(t) gives a closed form: everything up to the
// prefactor is
//     27720 t + 17325 sin(2t) - 1155 sin(4t) - 4235 sin(6t)
//     - 2625 sin(8t) - 903 sin(10t) - 175 sin(12t) - 15 sin(14t)
// over 1720320. These coefficients are exact, not a truncated series.
func (p *Soliton) Mass(r float64) float64 {
	t := math.Atan(r / p.Rsol)
	sum := 27720*t +
		17325*math.Sin(2*t) -
		1155*math.Sin(4*t) -
		4235*math.Sin(6*t) -
		2625*math.Sin(8*t) -
		903*math.Sin(10*t) -
		175*math.Sin(12*t) -
		15*math.Sin(14*t)
	return 4 * math.Pi * p.Rhosol * p.Rsol * p.Rsol * p.Rsol * sum / 1720320
}

func (p *Soliton) ScaleRadius() float64 { return p.Rsol }

// typechecking
var _ Profile = &Soliton{}
