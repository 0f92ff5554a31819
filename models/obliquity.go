// ./models/obliquity.go
package models

/*
Package models provides the mean obliquity of the ecliptic.

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
)

// ObliquityModel returns the mean obliquity of the ecliptic in radians.
type ObliquityModel interface {
	MeanObliquity(tjd float64) float64
}

// Obliquity selects one of the published obliquity formulae.
type Obliquity int

const (
	OblVondrak2011   Obliquity = iota + 1 // long-term model, Vondrak, Capitaine, Wallace 2011
	OblIAU1976                            // Lieske et al. 1977
	OblIAU2000                            // IAU 1976 with the IAU 2000 correction
	OblIAU2006                            // Capitaine et al. 2003 (P03)
	OblBretagnon2003                      // Bretagnon, Fienga, Simon 2003
	OblSimon1994                          // Simon et al. 1994
	OblWilliams1994                       // Williams 1994
	OblLaskar1986                         // Laskar 1986
	OblNewcomb                            // Newcomb, referred to B1850
)

// DefaultObliquity is the obliquity model used when none is configured.
const DefaultObliquity = OblVondrak2011

// Polynomial part of the Vondrak 2011 precession of the ecliptic, arcseconds.
// Columns: p_A, epsilon_A.
var pepol = [4][2]float64{
	{+8134.017132, +84028.206305},
	{+5043.0520035, +0.3624445},
	{-0.00710733, -0.00004039},
	{+0.000000271, -0.000000110},
}

// Periodic part of the Vondrak 2011 precession of the ecliptic, arcseconds.
// Rows: period in centuries, p_A cosine, epsilon_A cosine, p_A sine, epsilon_A sine.
var peper = [5][10]float64{
	{409.90, 396.15, 537.22, 402.90, 417.15, 288.92, 4043.00, 306.00, 277.00, 203.00},
	{-6908.287473, -3198.706291, 1453.674527, -857.748557, 1173.231614, -156.981465, 371.836550, -216.619040, 193.691479, 11.891524},
	{753.872780, -247.805823, 379.471484, -53.880558, -90.109153, -353.600190, -63.115353, -28.248187, 17.703387, 38.911307},
	{-2845.175469, 449.844989, -1255.915323, 886.736783, 418.887514, 997.912441, -240.979710, 76.541307, -36.788069, -170.964086},
	{-1704.720302, -862.308358, 447.832178, -889.571909, 190.402846, -56.564991, -296.222622, -75.859952, 67.473503, 3.014055},
}

// VondrakPrecessionEcliptic returns the general precession in longitude p_A and the
// obliquity epsilon_A of the Vondrak 2011 long-term model, in radians.
func VondrakPrecessionEcliptic(tjd float64) (dpre, deps float64) {
	t := (tjd - J2000) / 36525.0
	var p, q float64
	for i := 0; i < len(peper[0]); i++ {
		w := 2 * math.Pi * t
		a := w / peper[0][i]
		s := math.Sin(a)
		c := math.Cos(a)
		p += c*peper[1][i] + s*peper[3][i]
		q += c*peper[2][i] + s*peper[4][i]
	}
	w := 1.0
	for i := 0; i < len(pepol); i++ {
		p += pepol[i][0] * w
		q += pepol[i][1] * w
		w *= t
	}
	return p * as2r, q * as2r
}

// MeanObliquity returns the mean obliquity of the ecliptic of date.
func (o Obliquity) MeanObliquity(tjd float64) float64 {
	T := (tjd - J2000) / 36525.0
	var eps float64
	switch o {
	case OblIAU1976:
		eps = (((1.813e-3*T-5.9e-4)*T-46.8150)*T + 84381.448)
	case OblIAU2000:
		eps = (((1.813e-3*T-5.9e-4)*T-46.84024)*T + 84381.406)
	case OblIAU2006:
		eps = (((((-4.34e-8*T-5.76e-7)*T+2.0034e-3)*T-1.831e-4)*T-46.836769)*T + 84381.406)
	case OblBretagnon2003:
		eps = ((((((-3e-11*T-2.48e-8)*T-5.23e-7)*T+1.99911e-3)*T-1.667e-4)*T-46.836051)*T + 84381.40880)
	case OblSimon1994:
		eps = (((((2.5e-8*T-5.1e-7)*T+1.9989e-3)*T-1.52e-4)*T-46.80927)*T + 84381.412)
	case OblWilliams1994:
		eps = ((((-1.0e-6*T+2.0e-3)*T-1.74e-4)*T-46.833960)*T + 84381.409)
	case OblLaskar1986:
		T /= 10.0
		eps = (2.45e-10*T+5.79e-9)*T + 2.787e-7
		eps = (eps*T+7.12e-7)*T - 3.905e-5
		eps = (eps*T-2.4967e-3)*T - 5.138e-3
		eps = (eps*T+1.99925)*T - 0.0155
		eps = (eps*T-468.093)*T + 84381.448
	case OblNewcomb:
		Tn := (tjd - 2396758.0) / 36525.0
		eps = 0.0017*Tn*Tn*Tn - 0.0085*Tn*Tn - 46.837*Tn + 84451.68
	default: // OblVondrak2011
		_, deps := VondrakPrecessionEcliptic(tjd)
		return deps
	}
	return eps * as2r
}

func (o Obliquity) String() string {
	switch o {
	case OblVondrak2011:
		return "vondrak2011"
	case OblIAU1976:
		return "iau1976"
	case OblIAU2000:
		return "iau2000"
	case OblIAU2006:
		return "iau2006"
	case OblBretagnon2003:
		return "bretagnon2003"
	case OblSimon1994:
		return "simon1994"
	case OblWilliams1994:
		return "williams1994"
	case OblLaskar1986:
		return "laskar1986"
	case OblNewcomb:
		return "newcomb"
	}
	return fmt.Sprintf("Obliquity(%d)", int(o))
}

// ParseObliquity returns the obliquity model of the given name. An empty name
// selects DefaultObliquity.
func ParseObliquity(name string) (Obliquity, error) {
	if name == "" {
		return DefaultObliquity, nil
	}
	for o := OblVondrak2011; o <= OblNewcomb; o++ {
		if normalize(name) == o.String() {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown obliquity model %q", name)
}
