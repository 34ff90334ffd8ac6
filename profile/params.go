package profile

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/wdmhalo/cosmo"
)

// AlphaMP is the core-halo mass-profile shape parameter entering the
// soliton scaling relations.
const AlphaMP = 0.23

// solitonOverdensity is the central soliton overdensity,
// rhosol / rhoCritical, as a function of boson mass and soliton radius:
// Delta = (5e4 / alpha^4) (h/0.7)^-2 m22^-2 rsol^-4.
func solitonOverdensity(m22, rsol, h, alphaMP float64) float64 {
	a2 := alphaMP * alphaMP
	r2 := rsol * rsol
	hFrac := h / 0.7
	return 5e4 / (a2 * a2) / (hFrac * hFrac) / (m22 * m22) / (r2 * r2)
}

// M22FromSoliton inverts the soliton overdensity relation: given a core with
// radius rsol (kpc) and central density rhosol (Msun/kpc^3), it returns the
// boson mass in units of 1e-22 eV. c may be nil for the default cosmology
// and alphaMP may be zero for the default shape parameter.
func M22FromSoliton(
	rsol, rhosol float64, c *cosmo.Params, z, alphaMP float64,
) (float64, error) {
	if c == nil {
		c = &cosmo.Planck
	}
	if alphaMP == 0 {
		alphaMP = AlphaMP
	}
	if rsol <= 0 || rhosol <= 0 {
		return 0, fmt.Errorf(
			"Soliton parameters must be positive: rsol = %g, rhosol = %g",
			rsol, rhosol,
		)
	}
	rhoCrit := cosmo.RhoCritical(c, z)
	if rhoCrit <= 0 {
		return 0, fmt.Errorf(
			"Critical density is non-positive (%g) for h = %g, z = %g",
			rhoCrit, c.H100, z,
		)
	}

	dSol := rhosol / rhoCrit
	// solitonOverdensity with m22 = 1 is Delta * m22^2.
	m22Sq := solitonOverdensity(1, rsol, c.H100, alphaMP) / dSol
	return math.Sqrt(m22Sq), nil
}

// RhosolFromRsol returns the central soliton density (Msun/kpc^3) of a core
// with radius rsol (kpc) for a boson of mass m22. Exact algebraic inverse of
// M22FromSoliton. c may be nil for the default cosmology and alphaMP may be
// zero for the default shape parameter.
func RhosolFromRsol(
	m22, rsol float64, c *cosmo.Params, z, alphaMP float64,
) (float64, error) {
	if c == nil {
		c = &cosmo.Planck
	}
	if alphaMP == 0 {
		alphaMP = AlphaMP
	}
	if m22 <= 0 || rsol <= 0 {
		return 0, fmt.Errorf(
			"Soliton parameters must be positive: m22 = %g, rsol = %g",
			m22, rsol,
		)
	}
	rhoCrit := cosmo.RhoCritical(c, z)
	if rhoCrit <= 0 {
		return 0, fmt.Errorf(
			"Critical density is non-positive (%g) for h = %g, z = %g",
			rhoCrit, c.H100, z,
		)
	}

	return solitonOverdensity(m22, rsol, c.H100, alphaMP) * rhoCrit, nil
}

// RsolFromMvir returns the soliton radius (kpc) of a halo of virial mass
// mvir (Msun) for a boson of mass m22, from the empirical core-halo relation
// rsol = 3.315 * 1.6 * (Mvir/1e9)^(-1/3) / m22. The relation's scatter is
// not modeled.
func RsolFromMvir(m22, mvir float64) float64 {
	return 3.315 * 1.6 * math.Pow(mvir/1e9, -1.0/3) / m22
}
