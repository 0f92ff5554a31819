// ./models/bias.go
package models

/*
Package models provides the frame bias between the ICRS and the dynamical J2000 frame.

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

import "fmt"

// FrameBiasModel rotates a state between the ICRS and the mean J2000 equator.
// Forward is ICRS to J2000, backward J2000 to ICRS.
type FrameBiasModel interface {
	ApplyBias(x [6]float64, backward bool) [6]float64
}

// Bias selects one of the published frame bias matrices.
type Bias int

const (
	BiasNone    Bias = iota + 1 // no frame bias
	BiasIAU2000                 // IERS Conventions 2003
	BiasIAU2006                 // IERS Conventions 2010
)

// DefaultBias is the bias model used when none is configured.
const DefaultBias = BiasIAU2006

var biasIAU2006 = Matrix3{
	{+0.99999999999999412, +0.00000007078368695, -0.00000008056214212},
	{-0.00000007078368961, +0.99999999999999700, -0.00000003306427981},
	{+0.00000008056213978, +0.00000003306428553, +0.99999999999999634},
}

var biasIAU2000 = Matrix3{
	{+0.9999999999999942, +0.0000000707827948, -0.0000000805621738},
	{-0.0000000707827974, +0.9999999999999969, -0.0000000330604088},
	{+0.0000000805621715, +0.0000000330604145, +0.9999999999999962},
}

// Matrix returns the bias matrix; BiasNone yields the unit matrix.
func (b Bias) Matrix() Matrix3 {
	switch b {
	case BiasIAU2000:
		return biasIAU2000
	case BiasIAU2006:
		return biasIAU2006
	}
	return Identity()
}

// ApplyBias rotates position and speed. The forward direction multiplies with the
// transposed matrix, the backward direction with the matrix itself.
func (b Bias) ApplyBias(x [6]float64, backward bool) [6]float64 {
	if b == BiasNone {
		return x
	}
	rb := b.Matrix()
	p := [3]float64{x[0], x[1], x[2]}
	v := [3]float64{x[3], x[4], x[5]}
	if backward {
		p, v = rb.MulVec(p), rb.MulVec(v)
	} else {
		p, v = rb.TMulVec(p), rb.TMulVec(v)
	}
	return [6]float64{p[0], p[1], p[2], v[0], v[1], v[2]}
}

func (b Bias) String() string {
	switch b {
	case BiasNone:
		return "none"
	case BiasIAU2000:
		return "iau2000"
	case BiasIAU2006:
		return "iau2006"
	}
	return fmt.Sprintf("Bias(%d)", int(b))
}

// ParseBias returns the bias model of the given name ("none", "iau2000", "iau2006").
// An empty name selects DefaultBias.
func ParseBias(name string) (Bias, error) {
	if name == "" {
		return DefaultBias, nil
	}
	for _, b := range []Bias{BiasNone, BiasIAU2000, BiasIAU2006} {
		if normalize(name) == b.String() {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown frame bias model %q", name)
}
