/*halo_profiles prints composite soliton + NFW profiles for every halo in a
catalog. The catalog is a text table whose first three columns are the virial
mass in Msun, the NFW concentration, and the boson mass in units of 1e-22 eV.
Halos with no matching radius are skipped with a warning.
*/
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/wdmhalo/cosmo"
	"github.com/phil-mansfield/wdmhalo/halo"
	"github.com/phil-mansfield/wdmhalo/profile"
)

const profileBins = 50

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Required file use: $ %s catalog_file", os.Args[0])
	}

	cols := table.TextFile(os.Args[1]).ReadFloat64s([]int{0, 1, 2})
	mvirs, cvirs, m22s := cols[0], cols[1], cols[2]

	rs := make([]float64, profileBins)
	rhos := make([]float64, profileBins)
	ms := make([]float64, profileBins)

	for i := range mvirs {
		h, err := profile.SolNFWFromVirial(mvirs[i], cvirs[i], m22s[i], nil)
		if err != nil {
			log.Printf("Skipping halo %d: %s", i, err.Error())
			continue
		}

		rvir := halo.R200c.FromMass(&cosmo.Planck, 0, mvirs[i])
		logRadii(h.REps/10, rvir, rs)
		profile.Densities(h, rs, rhos)
		profile.Masses(h, rs, ms)

		fmt.Printf("# Halo %d: Mvir = %.4g, cvir = %.4g, m22 = %.4g, "+
			"repsilon = %.4g kpc\n",
			i, mvirs[i], cvirs[i], m22s[i], h.REps,
		)
		for j := range rs {
			fmt.Printf("%9.4g %9.4g %9.4g\n", rs[j], rhos[j], ms[j])
		}
	}
}

func logRadii(low, high float64, out []float64) {
	dlr := (math.Log(high) - math.Log(low)) / float64(len(out)-1)
	for i := range out {
		out[i] = low * math.Exp(float64(i)*dlr)
	}
}
