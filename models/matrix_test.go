// ./models/matrix_test.go
package models

/*
Package models provides tests of the rotation matrices.

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertMatrixInDelta(t *testing.T, want, got Matrix3, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDeltaSlice(t, want[i][:], got[i][:], tol, "row %d", i)
	}
}

func TestRotations(t *testing.T) {
	for _, a := range []float64{0, 0.3, -1.2, math.Pi} {
		for _, m := range []Matrix3{R1(a), R3(a)} {
			assert.True(t, m.IsOrthonormal(1e-15))
			assert.InDelta(t, 1.0, m.Det(), 1e-15)
			assertMatrixInDelta(t, Identity(), m.Mul(m.T()), 1e-15)
		}
	}
	assertMatrixInDelta(t, R3(0.5), R3(0.2).Mul(R3(0.3)), 1e-15)

	// a frame rotation turns the x axis of the old frame backwards
	v := R3(math.Pi / 2).MulVec([3]float64{1, 0, 0})
	assert.InDeltaSlice(t, []float64{0, -1, 0}, v[:], 1e-15)
	w := R3(math.Pi / 2).TMulVec(v)
	assert.InDeltaSlice(t, []float64{1, 0, 0}, w[:], 1e-15)
}

func TestIsOrthonormal(t *testing.T) {
	m := Identity()
	assert.True(t, m.IsOrthonormal(0))
	m[0][1] = 1e-6
	assert.False(t, m.IsOrthonormal(1e-9))
	assert.True(t, m.IsOrthonormal(1e-5))
}
