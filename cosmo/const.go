package cosmo

const (
	GMks    = 6.67408e-11   // m^3 / (kg s^2)
	MSunMks = 1.98892e30    // kg
	KpcMks  = 3.08567758e19 // m
	MpcMks  = 3.08567758e22 // m
)
