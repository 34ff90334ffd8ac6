/*package profile implements analytic radial profiles for dark matter halos:
the standard NFW profile, the soliton core predicted by wave-like ("fuzzy")
dark matter, and the composite soliton + NFW halo built by joining the two at
the radius where their densities agree.

Radii are physical kpc, densities Msun / kpc^3, and masses Msun throughout.
*/
package profile

// Profile is any spherically symmetric halo profile.
type Profile interface {
	// Density returns the local density at radius r.
	Density(r float64) float64
	// Mass returns the mass enclosed within radius r.
	Mass(r float64) float64
	// ScaleRadius returns the profile's characteristic radius.
	ScaleRadius() float64
}

// Densities evaluates p.Density at every radius in rs. The values are written
// to out, which is allocated if nil.
func Densities(p Profile, rs, out []float64) []float64 {
	if out == nil {
		out = make([]float64, len(rs))
	}
	if len(out) != len(rs) {
		panic("Length of out and rs are not the same.")
	}
	for i, r := range rs {
		out[i] = p.Density(r)
	}
	return out
}

// Masses evaluates p.Mass at every radius in rs. The values are written to
// out, which is allocated if nil.
func Masses(p Profile, rs, out []float64) []float64 {
	if out == nil {
		out = make([]float64, len(rs))
	}
	if len(out) != len(rs) {
		panic("Length of out and rs are not the same.")
	}
	for i, r := range rs {
		out[i] = p.Mass(r)
	}
	return out
}
