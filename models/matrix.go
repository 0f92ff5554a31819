// ./models/matrix.go
package models

/*
Package models provides the frame bias, precession, obliquity and nutation models used by the sweph reduction pipeline.

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

	"gonum.org/v1/gonum/mat"
)

// Matrix3 is a 3x3 rotation matrix in row-major order.
type Matrix3 [3][3]float64

// Identity returns the unit matrix.
func Identity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// R1 is a rotation of the coordinate frame about the first axis.
func R1(x float64) Matrix3 {
	s, c := math.Sincos(x)
	return Matrix3{{1, 0, 0}, {0, c, s}, {0, -s, c}}
}

// R3 is a rotation of the coordinate frame about the third axis.
func R3(x float64) Matrix3 {
	s, c := math.Sincos(x)
	return Matrix3{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
}

// MulVec returns m*v.
func (m Matrix3) MulVec(v [3]float64) [3]float64 {
	var o [3]float64
	for i := 0; i < 3; i++ {
		o[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return o
}

// TMulVec returns transpose(m)*v.
func (m Matrix3) TMulVec(v [3]float64) [3]float64 {
	var o [3]float64
	for i := 0; i < 3; i++ {
		o[i] = v[0]*m[0][i] + v[1]*m[1][i] + v[2]*m[2][i]
	}
	return o
}

// T returns the transpose of m.
func (m Matrix3) T() Matrix3 {
	var t Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// Mul returns m*n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var p mat.Dense
	p.Mul(m.Dense(), n.Dense())
	return fromDense(&p)
}

// Dense returns m as a gonum matrix.
func (m Matrix3) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

func fromDense(d mat.Matrix) Matrix3 {
	var m Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = d.At(i, j)
		}
	}
	return m
}

// Det returns the determinant of m.
func (m Matrix3) Det() float64 {
	return mat.Det(m.Dense())
}

// IsOrthonormal reports whether the rows of m are orthonormal within tol,
// i.e. m*transpose(m) is the unit matrix.
func (m Matrix3) IsOrthonormal(tol float64) bool {
	d := m.Dense()
	var p mat.Dense
	p.Mul(d, d.T())
	return mat.EqualApprox(&p, mat.NewDiagDense(3, []float64{1, 1, 1}), tol)
}
