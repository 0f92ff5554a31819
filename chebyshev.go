// ./chebyshev.go
package sweph

/*
Package sweph provides the evaluation of Chebyshev series.

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

// Evaluate returns the value of the Chebyshev series coef at the normalized time t
// (-1 <= t <= 1), using the Clenshaw recurrence. The leading coefficient carries half
// weight: the series is coef[0]/2 + coef[1]*T1(t) + coef[2]*T2(t) + ...
// The summation order is fixed; do not reorder it.
func Evaluate(t float64, coef []float64) float64 {
	var br, brpp, brp2 float64
	x2 := t * 2
	for j := len(coef) - 1; j >= 0; j-- {
		brp2 = brpp
		brpp = br
		br = x2*brpp - brp2 + coef[j]
	}
	return (br - brp2) * 0.5
}

// EvaluateDerivative returns the derivative of the series with respect to t.
// The derivative with respect to time is EvaluateDerivative(t, coef) / (dseg/2).
func EvaluateDerivative(t float64, coef []float64) float64 {
	var bj, bf, bjpl, bjp2, xjpl, xjp2 float64
	x2 := t * 2
	for j := len(coef) - 1; j >= 1; j-- {
		dj := float64(j + j)
		xj := coef[j]*dj + xjp2
		bj = x2*bjpl - bjp2 + xj
		bf = bjp2
		bjp2 = bjpl
		bjpl = bj
		xjp2 = xjpl
		xjpl = xj
	}
	return (bj - bf) * 0.5
}

// evaluateSegment fills pos (and vel if not nil) with the state of seg at t.
// Velocities are in AU per day.
func evaluateSegment(seg *Segment, t float64, pos, vel *[3]float64) {
	tn := (t-seg.TSeg0)/seg.DSeg*2 - 1
	for i := 0; i < 3; i++ {
		coef := seg.Coef[i*seg.NCoe : i*seg.NCoe+seg.NEval]
		pos[i] = Evaluate(tn, coef)
		if vel != nil {
			vel[i] = EvaluateDerivative(tn, coef) / seg.DSeg * 2
		}
	}
}
