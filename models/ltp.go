// ./models/ltp.go
package models

/*
Package models provides the long-term precession of Vondrak, Capitaine and Wallace 2011.

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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Polynomial and periodic parts of the ecliptic pole, arcseconds. Periodic rows:
// period in centuries, P cosine, Q cosine, P sine, Q sine.
var (
	pqPol = [4][2]float64{
		{+5851.607687, -1600.886300},
		{-0.1189000, +1.1689818},
		{-0.00028913, -0.00000020},
		{+0.000000101, -0.000000437},
	}
	pqPer = [8][5]float64{
		{708.15, -5486.751211, -684.661560, 667.666730, -5523.863691},
		{2309.00, -17.127623, 2446.283880, -2354.886252, -549.747450},
		{1620.00, -617.517403, 399.671049, -428.152441, -310.998056},
		{492.20, 413.442940, -356.652376, 376.202861, 421.535876},
		{1183.00, 78.614193, -186.387003, 184.778874, -36.776172},
		{622.00, -180.732815, -316.800070, 335.321713, -145.278396},
		{882.00, -87.676083, 198.296701, -185.138669, -34.744450},
		{547.00, 46.140315, 101.135679, -120.972830, 22.885731},
	}
)

// Polynomial and periodic parts of the equator pole, arcseconds. Periodic rows:
// period in centuries, X cosine, Y cosine, X sine, Y sine.
var (
	xyPol = [4][2]float64{
		{+5453.282155, -73750.930350},
		{+0.4252841, -0.7675452},
		{-0.00037173, -0.00018725},
		{-0.000000152, +0.000000231},
	}
	xyPer = [14][5]float64{
		{256.75, -819.940624, 75004.344875, 81491.287984, 1558.515853},
		{708.15, -8444.676815, 624.033993, 787.163481, 7774.939698},
		{274.20, 2600.009459, 1251.136893, 1251.296102, -2219.534038},
		{241.45, 2755.175630, -1102.212834, -1257.950837, -2523.969396},
		{2309.00, -167.659835, -2660.664980, -2966.799730, 247.850422},
		{492.20, 871.855056, 699.291817, 639.744522, -846.485643},
		{396.10, 44.769698, 153.167220, 131.600209, -1393.124055},
		{288.90, -512.313065, -950.865637, -445.040117, 368.526116},
		{231.10, -819.415595, 499.754645, 584.522874, 749.045012},
		{1610.00, -538.071099, -145.188210, -89.756563, 444.704518},
		{620.00, -189.793622, 558.116553, 524.429630, 235.934465},
		{157.87, -402.922932, -23.923029, -13.549067, 374.049623},
		{220.30, 179.516345, -165.405086, -210.157124, -171.330180},
		{1200.00, -9.814756, 9.344131, -44.919798, -22.899655},
	}
)

// obliquity of J2000 used to refer the ecliptic pole to the equator
const eps2000 = 84381.406 * as2r

// poleSeries evaluates the polynomial and periodic parts of a pole for t
// centuries from J2000, in radians.
func poleSeries(t float64, pol [4][2]float64, per [][5]float64) (a, b float64) {
	w := 2 * math.Pi * t
	for _, p := range per {
		s, c := math.Sincos(w / p[0])
		a += c*p[1] + s*p[3]
		b += c*p[2] + s*p[4]
	}
	w = 1
	for _, p := range pol {
		a += p[0] * w
		b += p[1] * w
		w *= t
	}
	return a * as2r, b * as2r
}

// EclipticPole returns the unit vector of the ecliptic pole of date, referred to
// the mean equator and equinox of J2000.
func EclipticPole(tjd float64) r3.Vec {
	p, q := poleSeries((tjd-J2000)/36525.0, pqPol, pqPer[:])
	w := 1 - p*p - q*q
	if w < 0 {
		w = 0
	}
	w = math.Sqrt(w)
	s, c := math.Sincos(eps2000)
	return r3.Vec{X: p, Y: -q*c - w*s, Z: -q*s + w*c}
}

// EquatorPole returns the unit vector of the mean equator pole of date, referred to
// the mean equator and equinox of J2000.
func EquatorPole(tjd float64) r3.Vec {
	x, y := poleSeries((tjd-J2000)/36525.0, xyPol, xyPer[:])
	w := 1 - x*x - y*y
	if w < 0 {
		w = 0
	}
	return r3.Vec{X: x, Y: y, Z: math.Sqrt(w)}
}

// LongTermPrecessionMatrix returns the rotation from the mean equator and equinox
// of J2000 to that of tjd. The model is valid for 200000 years around J2000.
func LongTermPrecessionMatrix(tjd float64) Matrix3 {
	peq := EquatorPole(tjd)
	eqx := r3.Unit(r3.Cross(peq, EclipticPole(tjd)))
	v := r3.Cross(peq, eqx)
	return Matrix3{
		{eqx.X, eqx.Y, eqx.Z},
		{v.X, v.Y, v.Z},
		{peq.X, peq.Y, peq.Z},
	}
}
