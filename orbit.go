// ./orbit.go
package sweph

/*
Package sweph provides osculating orbital quantities of a state vector.

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

// AscendingNode returns the longitude of the ascending node in degrees of the
// osculating orbit through state, which should be heliocentric. An equatorial
// state is first rotated to the ecliptic with the obliquity of J2000, so it must
// refer to the J2000 equinox.
func AscendingNode(state StateVector) (float64, error) {
	x := state.X
	if state.Frame == FrameEquatorial {
		x = coortrf2Sp(x, seps2000, ceps2000)
	}
	// angular momentum r x v
	hx := x[1]*x[5] - x[2]*x[4]
	hy := x[2]*x[3] - x[0]*x[5]
	if hx == 0 && hy == 0 {
		return 0, fmt.Errorf("%w: orbit in the ecliptic plane has no node", ErrNumericDomain)
	}
	return degNorm(math.Atan2(hx, -hy) * radToDeg), nil
}
