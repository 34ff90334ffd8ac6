package profile

import (
	"fmt"

	"github.com/phil-mansfield/wdmhalo/math/calc"
)

// ConvergenceError is returned when the matching radius solver fails. It
// carries the four profile parameters so failing halos can be identified in
// batch runs.
type ConvergenceError struct {
	Rs, Rhos, Rsol, Rhosol float64
	err                    error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf(
		"No matching radius found for rs = %g, rhos = %g, "+
			"rsol = %g, rhosol = %g: %s",
		e.Rs, e.Rhos, e.Rsol, e.Rhosol, e.err.Error(),
	)
}

func (e *ConvergenceError) Unwrap() error { return e.err }

// MatchOptions controls the matching radius solver. The zero value of any
// field means its default.
type MatchOptions struct {
	XStart float64 // starting radius in units of Rsol. Default: 2.
	RTol   float64 // relative tolerance on the radius. Default: 1e-9.
}

var defaultMatchOptions = MatchOptions{XStart: 2.0, RTol: 1e-9}

// MatchingRadius finds the radius at which the NFW and soliton densities are
// equal. The crossing is found as a root of f(r) = (1 - rhoNFW/rhoSol)^2,
// which is non-negative and zero exactly at the crossing, so Newton iteration
// can approach it from either side. opt may be nil.
func MatchingRadius(nfw *NFW, sol *Soliton, opt *MatchOptions) (float64, error) {
	if opt == nil {
		opt = &defaultMatchOptions
	}
	xstart, rtol := opt.XStart, opt.RTol
	if xstart == 0 {
		xstart = defaultMatchOptions.XStart
	}
	if rtol == 0 {
		rtol = defaultMatchOptions.RTol
	}

	f := func(r float64) float64 {
		d := 1 - nfw.Density(r)/sol.Density(r)
		return d * d
	}
	fp := func(r float64) float64 {
		rhoSol := sol.Density(r)
		rhoNFW := nfw.Density(r)
		return -2 * (1 - rhoNFW/rhoSol) *
			(nfw.DensityDeriv(r)/rhoSol -
				rhoNFW*sol.DensityDeriv(r)/(rhoSol*rhoSol))
	}

	r, err := calc.FindRoot(f, fp, xstart*sol.Rsol, rtol)
	if err != nil {
		return 0, &ConvergenceError{nfw.Rs, nfw.Rhos, sol.Rsol, sol.Rhosol, err}
	}
	return r, nil
}
