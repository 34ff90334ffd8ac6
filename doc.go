/*package wdmhalo models the radial structure of wave ("fuzzy") dark matter
halos: a soliton core joined onto an NFW envelope at the radius where the two
density profiles cross.

The profile package holds the profiles themselves and the matching radius
solver, the cosmo and halo packages supply critical densities and overdensity
definitions, and the io package reads the config files driving the tools in
main/ and scripts/.
*/
package wdmhalo
