// ./models/nutation2000.go
package models

/*
Package models provides the IAU 2000B nutation series and the P03 adjustment.

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

import "math"

// IAU 2000B luni-solar series, McCarthy and Luzum 2003. Columns: multipliers of
// l, l', F, D, Om; longitude sin, t*sin, cos; obliquity cos, t*cos, sin. The
// amplitudes are in units of 0.1 microarcsecond.
var nut2000B = [77][11]float64{
	{ 0,  0,  0,  0,  1, -172064161, -174666, 33386, 92052331, 9086, 15377},
	{ 0,  0,  2, -2,  2, -13170906, -1675, -13696, 5730336, -3015, -4587},
	{ 0,  0,  2,  0,  2, -2276413, -234, 2796, 978459, -485, 1374},
	{ 0,  0,  0,  0,  2, 2074554, 207, -698, -897492, 470, -291},
	{ 0,  1,  0,  0,  0, 1475877, -3633, 11817, 73871, -184, -1924},
	{ 0,  1,  2, -2,  2, -516821, 1226, -524, 224386, -677, -174},
	{ 1,  0,  0,  0,  0, 711159, 73, -872, -6750, 0, 358},
	{ 0,  0,  2,  0,  1, -387298, -367, 380, 200728, 18, 318},
	{ 1,  0,  2,  0,  2, -301461, -36, 816, 129025, -63, 367},
	{ 0, -1,  2, -2,  2, 215829, -494, 111, -95929, 299, 132},
	{ 0,  0,  2, -2,  1, 128227, 137, 181, -68982, -9, 39},
	{-1,  0,  2,  0,  2, 123457, 11, 19, -53311, 32, -4},
	{-1,  0,  0,  2,  0, 156994, 10, -168, -1235, 0, 82},
	{ 1,  0,  0,  0,  1, 63110, 63, 27, -33228, 0, -9},
	{-1,  0,  0,  0,  1, -57976, -63, -189, 31429, 0, -75},
	{-1,  0,  2,  2,  2, -59641, -11, 149, 25543, -11, 66},
	{ 1,  0,  2,  0,  1, -51613, -42, 129, 26366, 0, 78},
	{-2,  0,  2,  0,  1, 45893, 50, 31, -24236, -10, 20},
	{ 0,  0,  0,  2,  0, 63384, 11, -150, -1220, 0, 29},
	{ 0,  0,  2,  2,  2, -38571, -1, 158, 16452, -11, 68},
	{ 0, -2,  2, -2,  2, 32481, 0, 0, -13870, 0, 0},
	{-2,  0,  0,  2,  0, -47722, 0, -18, 477, 0, -25},
	{ 2,  0,  2,  0,  2, -31046, -1, 131, 13238, -11, 59},
	{ 1,  0,  2, -2,  2, 28593, 0, -1, -12338, 10, -3},
	{-1,  0,  2,  0,  1, 20441, 21, 10, -10758, 0, -3},
	{ 2,  0,  0,  0,  0, 29243, 0, -74, -609, 0, 13},
	{ 0,  0,  2,  0,  0, 25887, 0, -66, -550, 0, 11},
	{ 0,  1,  0,  0,  1, -14053, -25, 79, 8551, -2, -45},
	{-1,  0,  0,  2,  1, 15164, 10, 11, -8001, 0, -1},
	{ 0,  2,  2, -2,  2, -15794, 72, -16, 6850, -42, -5},
	{ 0,  0, -2,  2,  0, 21783, 0, 13, -167, 0, 13},
	{ 1,  0,  0, -2,  1, -12873, -10, -37, 6953, 0, -14},
	{ 0, -1,  0,  0,  1, -12654, 11, 63, 6415, 0, 26},
	{-1,  0,  2,  2,  1, -10204, 0, 25, 5222, 0, 15},
	{ 0,  2,  0,  0,  0, 16707, -85, -10, 168, -1, 10},
	{ 1,  0,  2,  2,  2, -7691, 0, 44, 3268, 0, 19},
	{-2,  0,  2,  0,  0, -11024, 0, -14, 104, 0, 2},
	{ 0,  1,  2,  0,  2, 7566, -21, -11, -3250, 0, -5},
	{ 0,  0,  2,  2,  1, -6637, -11, 25, 3353, 0, 14},
	{ 0, -1,  2,  0,  2, -7141, 21, 8, 3070, 0, 4},
	{ 0,  0,  0,  2,  1, -6302, -11, 2, 3272, 0, 4},
	{ 1,  0,  2, -2,  1, 5800, 10, 2, -3045, 0, -1},
	{ 2,  0,  2, -2,  2, 6443, 0, -7, -2768, 0, -4},
	{-2,  0,  0,  2,  1, -5774, -11, -15, 3041, 0, -5},
	{ 2,  0,  2,  0,  1, -5350, 0, 21, 2695, 0, 12},
	{ 0, -1,  2, -2,  1, -4752, -11, -3, 2719, 0, -3},
	{ 0,  0,  0, -2,  1, -4940, -11, -21, 2720, 0, -9},
	{-1, -1,  0,  2,  0, 7350, 0, -8, -51, 0, 4},
	{ 2,  0,  0, -2,  1, 4065, 0, 6, -2206, 0, 1},
	{ 1,  0,  0,  2,  0, 6579, 0, -24, -199, 0, 2},
	{ 0,  1,  2, -2,  1, 3579, 0, 5, -1900, 0, 1},
	{ 1, -1,  0,  0,  0, 4725, 0, -6, -41, 0, 3},
	{-2,  0,  2,  0,  2, -3075, 0, -2, 1313, 0, -1},
	{ 3,  0,  2,  0,  2, -2904, 0, 15, 1233, 0, 7},
	{ 0, -1,  0,  2,  0, 4348, 0, -10, -81, 0, 2},
	{ 1, -1,  2,  0,  2, -2878, 0, 8, 1232, 0, 4},
	{ 0,  0,  0,  1,  0, -4230, 0, 5, -20, 0, -2},
	{-1, -1,  2,  2,  2, -2819, 0, 7, 1207, 0, 3},
	{-1,  0,  2,  0,  0, -4056, 0, 5, 40, 0, -2},
	{ 0, -1,  2,  2,  2, -2647, 0, 11, 1129, 0, 5},
	{-2,  0,  0,  0,  1, -2294, 0, -10, 1266, 0, -4},
	{ 1,  1,  2,  0,  2, 2481, 0, -7, -1062, 0, -3},
	{ 2,  0,  0,  0,  1, 2179, 0, -2, -1129, 0, -2},
	{-1,  1,  0,  1,  0, 3276, 0, 1, -9, 0, 0},
	{ 1,  1,  0,  0,  0, -3389, 0, 5, 35, 0, -2},
	{ 1,  0,  2,  0,  0, 3339, 0, -13, -107, 0, 1},
	{-1,  0,  2, -2,  1, -1987, 0, -6, 1073, 0, -2},
	{ 1,  0,  0,  0,  2, -1981, 0, 0, 854, 0, 0},
	{-1,  0,  0,  1,  0, 4026, 0, -353, -553, 0, -139},
	{ 0,  0,  2,  1,  2, 1660, 0, -5, -710, 0, -2},
	{-1,  0,  2,  4,  2, -1521, 0, 9, 647, 0, 4},
	{-1,  1,  0,  1,  1, 1314, 0, 0, -700, 0, 0},
	{ 0, -2,  2, -2,  1, -1283, 0, 0, 672, 0, 0},
	{ 1,  0,  2,  2,  1, -1331, 0, 8, 663, 0, 4},
	{-2,  0,  2,  2,  2, 1383, 0, -2, -594, 0, -2},
	{-1,  0,  0,  0,  2, 1405, 0, 4, -610, 0, 2},
	{ 1,  1,  2, -2,  2, 1290, 0, 0, -556, 0, 0},
}

const (
	u2r = as2r / 1e7 // 0.1 microarcsecond

	// fixed offsets replacing the planetary terms of IAU 2000A, milliarcseconds
	dpPlan = -0.135
	dePlan = 0.388
)

// fundamentalArgs returns the Delaunay arguments l, l', F, D and Om of Simon et
// al. 1994, in radians, for t Julian centuries from J2000.
func fundamentalArgs(t float64) (l, lp, f, d, om float64) {
	arg := func(c0, c1, c2, c3, c4 float64) float64 {
		a := c0 + t*(c1+t*(c2+t*(c3+t*c4)))
		return math.Mod(a, 1296000) * as2r
	}
	l = arg(485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470)
	lp = arg(1287104.79305, 129596581.0481, -0.5532, 0.000136, -0.00001149)
	f = arg(335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417)
	d = arg(1072260.70369, 1602961601.2090, -6.3706, 0.006593, -0.00003169)
	om = arg(450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939)
	return
}

// nutation2000B sums the series from the smallest term up.
func nutation2000B(tjd float64) (dpsi, deps float64) {
	t := (tjd - J2000) / 36525.0
	l, lp, f, d, om := fundamentalArgs(t)
	for i := len(nut2000B) - 1; i >= 0; i-- {
		c := &nut2000B[i]
		arg := math.Mod(c[0]*l+c[1]*lp+c[2]*f+c[3]*d+c[4]*om, 2*math.Pi)
		s, co := math.Sincos(arg)
		dpsi += (c[5]+c[6]*t)*s + c[7]*co
		deps += (c[8]+c[9]*t)*co + c[10]*s
	}
	dpsi = dpsi*u2r + dpPlan*as2r/1000
	deps = deps*u2r + dePlan*as2r/1000
	return dpsi, deps
}

// p03Correction adjusts IAU 2000 nutation to the P03 precession, Capitaine et al.
// 2005 (IAU 2006 resolution B1).
func p03Correction(tjd float64) (dpsi, deps float64) {
	t := (tjd - J2000) / 36525.0
	_, _, f, d, om := fundamentalArgs(t)
	a := 2*f - 2*d + 2*om
	dpsi = -8.1*math.Sin(om) - 0.6*math.Sin(a) +
		t*(47.8*math.Sin(om)+3.7*math.Sin(a)+0.6*math.Sin(2*f+2*om)-0.6*math.Sin(2*om))
	deps = t * (-25.6*math.Cos(om) - 1.6*math.Cos(a))
	// microarcseconds
	return dpsi * as2r / 1e6, deps * as2r / 1e6
}
