/*package cosmo provides background cosmology routines. Unlike the
simulation-facing code this package descends from, everything here works in
physical units: densities are Msun / kpc^3 and radii are kpc, with no factors
of h or the scale factor floating around.
*/
package cosmo

import (
	"math"
)

// Params holds the background cosmology parameters needed by the halo and
// profile packages. H100 is the dimensionless Hubble parameter,
// H0 / (100 km/s/Mpc).
type Params struct {
	H100, OmegaM, OmegaL float64
}

// Planck is the default cosmology, Planck 2015 TT+lowP+lensing+ext.
var Planck = Params{H100: 0.6774, OmegaM: 0.3089, OmegaL: 0.6911}

// HubbleFrac calculates h(z) = H(z)/H0. Here H(z) is from Hubble's Law,
// H(z)**2 + k (c/a)**2 = H0**2 h100**2 (OmegaR a**-4 + OmegaM a**-3 + OmegaL).
// Assumes k, r = 0.
func HubbleFrac(omegaM, omegaL, z float64) float64 {
	return math.Sqrt(omegaM*math.Pow(1.0+z, 3.0) + omegaL)
}

func rhoCriticalMks(c *Params, z float64) float64 {
	H0Mks := (c.H100 * 100 * 1000) / MpcMks
	H := HubbleFrac(c.OmegaM, c.OmegaL, z) * H0Mks
	return 3.0 * H * H / (8.0 * math.Pi * GMks)
}

// RhoCritical calculates the critical density of the universe at redshift z.
// This shows up (among other places) in halo definitions and in the
// definitions of the omegas (OmegaFoo = pFoo / pCritical). The returned value
// is in physical Msun / kpc^3.
func RhoCritical(c *Params, z float64) float64 {
	return rhoCriticalMks(c, z) * math.Pow(KpcMks, 3) / MSunMks
}

// RhoAverage calculates the average density of matter in the universe at
// redshift z. The returned value is in physical Msun / kpc^3.
func RhoAverage(c *Params, z float64) float64 {
	return RhoCritical(c, 0) * c.OmegaM * math.Pow(1+z, 3.0)
}
