// ./state.go
package sweph

/*
Package sweph provides the state vector type.

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

// Frame is the fundamental plane of a state vector.
type Frame int

const (
	FrameEquatorial Frame = iota
	FrameEcliptic
)

// Epoch is the equinox a state vector refers to.
type Epoch int

const (
	EpochJ2000 Epoch = iota
	EpochOfDate
)

// Center is the origin of a state vector.
type Center int

const (
	CenterBarycentric Center = iota
	CenterHeliocentric
	CenterGeocentric
	CenterTopocentric
)

// StateVector is a position [x, y, z] in AU and a velocity [vx, vy, vz] in AU/day,
// tagged with its frame, equinox and origin. It is a value type; operations return
// new vectors.
type StateVector struct {
	X      [6]float64
	Frame  Frame
	Epoch  Epoch
	Center Center
}

// Position returns the position part.
func (s StateVector) Position() [3]float64 {
	return [3]float64{s.X[0], s.X[1], s.X[2]}
}

// Velocity returns the velocity part.
func (s StateVector) Velocity() [3]float64 {
	return [3]float64{s.X[3], s.X[4], s.X[5]}
}

// Distance returns the length of the position.
func (s StateVector) Distance() float64 {
	return norm(s.X[:3])
}

// Sub returns s minus o, keeping the tags of s.
func (s StateVector) Sub(o StateVector) StateVector {
	for i := range s.X {
		s.X[i] -= o.X[i]
	}
	return s
}

func (c Center) String() string {
	switch c {
	case CenterBarycentric:
		return "barycentric"
	case CenterHeliocentric:
		return "heliocentric"
	case CenterGeocentric:
		return "geocentric"
	case CenterTopocentric:
		return "topocentric"
	}
	return "unknown"
}
