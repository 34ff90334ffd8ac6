package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/phil-mansfield/wdmhalo/halo"
	"github.com/phil-mansfield/wdmhalo/io"
	"github.com/phil-mansfield/wdmhalo/profile"
)

const profileBins = 50

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Required file use: $ %s config_file", os.Args[0])
	}

	cfg, err := io.ReadConfig(os.Args[1])
	if err != nil { log.Fatal(err.Error()) }

	c := cfg.Cosmology.Params()
	mdef, _ := halo.RadiusFromString(cfg.Halo.MDef)

	h, err := profile.SolNFWFromVirial(
		cfg.Halo.MVir, cfg.Halo.CVir, cfg.Halo.M22,
		&profile.VirialOptions{
			Rsol: cfg.Halo.RSol, MDef: mdef, Cosmo: c, Z: cfg.Halo.Z,
		},
	)
	if err != nil { log.Fatal(err.Error()) }

	rvir := mdef.FromMass(c, cfg.Halo.Z, cfg.Halo.MVir)

	fmt.Printf(
		"# %s = %.4g Msun, cvir = %.4g, m22 = %.4g\n",
		mdef.MassString(), cfg.Halo.MVir, cfg.Halo.CVir, cfg.Halo.M22,
	)
	fmt.Printf(
		"# rs = %.4g kpc, rhos = %.4g Msun/kpc^3, rsol = %.4g kpc, "+
			"rhosol = %.4g Msun/kpc^3, repsilon = %.4g kpc\n",
		h.NFW.Rs, h.NFW.Rhos, h.Sol.Rsol, h.Sol.Rhosol, h.REps,
	)
	fmt.Println("# Columns: r [kpc], rho [Msun/kpc^3], M [Msun]")

	rs := logRadii(h.REps/10, rvir, profileBins)
	rhos := profile.Densities(h, rs, nil)
	ms := profile.Masses(h, rs, nil)
	for i := range rs {
		fmt.Printf("%9.4g %9.4g %9.4g\n", rs[i], rhos[i], ms[i])
	}
}

func logRadii(low, high float64, n int) []float64 {
	rs := make([]float64, n)
	dlr := (math.Log(high) - math.Log(low)) / float64(n-1)
	for i := range rs {
		rs[i] = low * math.Exp(float64(i)*dlr)
	}
	return rs
}
