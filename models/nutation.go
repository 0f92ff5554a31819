// ./models/nutation.go
package models

/*
Package models provides the nutation models and the nutation matrix.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code. The file format and the reduction
algorithms follow the Swiss Ephemeris by Dieter Koch and Alois Treindl,
Astrodienst AG.
*/

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/nutation"
)

// NutationModel returns the nutation in longitude and in obliquity, in radians.
type NutationModel interface {
	Nutation(tjd float64) (dpsi, deps float64)
}

// NutationSeries selects a nutation series.
type NutationSeries int

const (
	// NutIAU1980 is the IAU 1980 theory abridged to the 63 terms of Meeus table
	// 22.A, good to about 0.0005" in longitude.
	NutIAU1980 NutationSeries = iota + 1
	// NutApproximate is the four-term series of Meeus chapter 22, good to 0.5".
	NutApproximate
	// NutIAU2000B is the 77-term luni-solar series of IAU 2000B, within 1 mas of
	// IAU 2000A between 1995 and 2050.
	NutIAU2000B
	// NutIAU2000BP03 is NutIAU2000B adjusted to the P03 precession of IAU 2006.
	NutIAU2000BP03
)

// DefaultNutation is the nutation model used when none is configured.
const DefaultNutation = NutIAU2000BP03

// Nutation returns dpsi and deps at the Julian Ephemeris Date tjd.
func (n NutationSeries) Nutation(tjd float64) (dpsi, deps float64) {
	switch n {
	case NutApproximate:
		ψ, ε := nutation.ApproxNutation(tjd)
		return ψ.Rad(), ε.Rad()
	case NutIAU1980:
		ψ, ε := nutation.Nutation(tjd)
		return ψ.Rad(), ε.Rad()
	case NutIAU2000B:
		return nutation2000B(tjd)
	}
	dpsi, deps = nutation2000B(tjd)
	cpsi, ceps := p03Correction(tjd)
	return dpsi + cpsi, deps + ceps
}

func (n NutationSeries) String() string {
	switch n {
	case NutIAU1980:
		return "iau1980"
	case NutApproximate:
		return "approximate"
	case NutIAU2000B:
		return "iau2000b"
	case NutIAU2000BP03:
		return "iau2000bp03"
	}
	return fmt.Sprintf("NutationSeries(%d)", int(n))
}

// ParseNutation returns the nutation model of the given name. An empty name selects
// DefaultNutation.
func ParseNutation(name string) (NutationSeries, error) {
	if name == "" {
		return DefaultNutation, nil
	}
	for n := NutIAU1980; n <= NutIAU2000BP03; n++ {
		if normalize(name) == n.String() {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown nutation model %q", name)
}

// NutationMatrix builds the rotation from the mean equator to the true equator of
// date for nutation dpsi, deps and mean obliquity eps0. A vector x referred to the
// mean equator becomes transpose(M)*x on the true equator, see Nutate.
func NutationMatrix(dpsi, deps, eps0 float64) Matrix3 {
	eps := eps0 + deps
	sinpsi, cospsi := math.Sin(dpsi), math.Cos(dpsi)
	sineps0, coseps0 := math.Sin(eps0), math.Cos(eps0)
	sineps, coseps := math.Sin(eps), math.Cos(eps)
	return Matrix3{
		{
			cospsi,
			sinpsi * coseps,
			sinpsi * sineps,
		},
		{
			-sinpsi * coseps0,
			cospsi*coseps*coseps0 + sineps*sineps0,
			cospsi*sineps*coseps0 - coseps*sineps0,
		},
		{
			-sinpsi * sineps0,
			cospsi*coseps*sineps0 - sineps*coseps0,
			cospsi*sineps*sineps0 + coseps*coseps0,
		},
	}
}

// Nutate rotates x with the nutation matrix m: mean to true equator, or true to
// mean when backward is set.
func Nutate(m Matrix3, x [3]float64, backward bool) [3]float64 {
	if backward {
		return m.MulVec(x)
	}
	return m.TMulVec(x)
}
