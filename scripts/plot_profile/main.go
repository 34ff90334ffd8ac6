/*plot_profile plots the density profile of the default soliton + NFW halo,
along with the bare soliton and NFW profiles it is stitched from. The plot is
in log10(r) - log10(rho) space.
*/
package main

import (
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/wdmhalo/profile"
)

const bins = 200

func main() {
	plt.Reset()

	h := profile.DefaultSolNFW()

	lrs := make([]float64, bins)
	comp := make([]float64, bins)
	sol := make([]float64, bins)
	nfw := make([]float64, bins)

	low, high := h.REps/20, 20*h.NFW.Rs
	dlr := (math.Log10(high) - math.Log10(low)) / float64(bins-1)
	for i := range lrs {
		lrs[i] = math.Log10(low) + float64(i)*dlr
		r := math.Pow(10, lrs[i])
		comp[i] = math.Log10(h.Density(r))
		sol[i] = math.Log10(h.Sol.Density(r))
		nfw[i] = math.Log10(h.NFW.Density(r))
	}

	plt.Plot(lrs, sol, "b")
	plt.Plot(lrs, nfw, "g")
	plt.Plot(lrs, comp, "r", plt.LW(3))

	plt.Show()
}
