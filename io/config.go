/*package io reads the config files which drive the wdmhalo tools.
*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/wdmhalo/cosmo"
	"github.com/phil-mansfield/wdmhalo/halo"
)

type HaloConfig struct {
	// Required
	MVir, CVir, M22 float64

	// Optional
	RSol float64 // soliton radius override; derived from MVir if zero
	MDef string  // overdensity definition, default "200c"
	Z    float64
}

func (hc *HaloConfig) CheckInit() error {
	if hc.MVir <= 0 {
		return fmt.Errorf(
			"Need to specify a positive MVir in the [halo] section, not %g.",
			hc.MVir,
		)
	} else if hc.CVir <= 0 {
		return fmt.Errorf(
			"Need to specify a positive CVir in the [halo] section, not %g.",
			hc.CVir,
		)
	} else if hc.M22 <= 0 {
		return fmt.Errorf(
			"Need to specify a positive M22 in the [halo] section, not %g.",
			hc.M22,
		)
	}

	if hc.RSol < 0 {
		return fmt.Errorf("RSol in the [halo] section must not be negative.")
	}
	if hc.Z < 0 {
		return fmt.Errorf("Z in the [halo] section must not be negative.")
	}

	if hc.MDef == "" {
		hc.MDef = "200c"
	}
	if _, ok := halo.RadiusFromString(hc.MDef); !ok {
		return fmt.Errorf(
			"MDef '%s' in the [halo] section is not a recognized "+
				"overdensity definition.", hc.MDef,
		)
	}
	return nil
}

type CosmoConfig struct {
	H100, OmegaM, OmegaL float64
}

func (cc *CosmoConfig) CheckInit() error {
	// An absent [cosmology] section means Planck.
	if cc.H100 == 0 && cc.OmegaM == 0 && cc.OmegaL == 0 {
		cc.H100 = cosmo.Planck.H100
		cc.OmegaM = cosmo.Planck.OmegaM
		cc.OmegaL = cosmo.Planck.OmegaL
		return nil
	}
	if cc.H100 <= 0 {
		return fmt.Errorf(
			"Need to specify a positive H100 in the [cosmology] section, "+
				"not %g.", cc.H100,
		)
	} else if cc.OmegaM <= 0 {
		return fmt.Errorf(
			"Need to specify a positive OmegaM in the [cosmology] section, "+
				"not %g.", cc.OmegaM,
		)
	} else if cc.OmegaL < 0 {
		return fmt.Errorf(
			"OmegaL in the [cosmology] section must not be negative.",
		)
	}
	return nil
}

// Params returns the cosmology the config describes.
func (cc *CosmoConfig) Params() *cosmo.Params {
	return &cosmo.Params{H100: cc.H100, OmegaM: cc.OmegaM, OmegaL: cc.OmegaL}
}

type Config struct {
	Halo      HaloConfig
	Cosmology CosmoConfig
}

// ReadConfig reads and validates a wdmhalo config file.
func ReadConfig(fname string) (*Config, error) {
	c := &Config{}
	if err := gcfg.ReadFileInto(c, fname); err != nil {
		return nil, err
	}
	if err := c.Halo.CheckInit(); err != nil {
		return nil, err
	}
	if err := c.Cosmology.CheckInit(); err != nil {
		return nil, err
	}
	return c, nil
}
