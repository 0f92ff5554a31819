// ./coordinates.go
package sweph

/*
Package sweph provides coordinate conversions between cartesian and polar vectors.

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

// coortrf2 rotates a vector about the x axis by the angle whose sine and cosine are
// given. With the obliquity it turns equatorial into ecliptic coordinates; with the
// negated sine it turns them back.
func coortrf2(x [3]float64, sineps, coseps float64) [3]float64 {
	return [3]float64{
		x[0],
		x[1]*coseps + x[2]*sineps,
		-x[1]*sineps + x[2]*coseps,
	}
}

// coortrf2Sp applies coortrf2 to the position and the speed of a state.
func coortrf2Sp(x [6]float64, sineps, coseps float64) [6]float64 {
	p := coortrf2([3]float64{x[0], x[1], x[2]}, sineps, coseps)
	v := coortrf2([3]float64{x[3], x[4], x[5]}, sineps, coseps)
	return [6]float64{p[0], p[1], p[2], v[0], v[1], v[2]}
}

// cartPol converts a cartesian vector into longitude, latitude (radians) and radius.
// The longitude is in [0, 2*pi).
func cartPol(x [3]float64) [3]float64 {
	if x[0] == 0 && x[1] == 0 && x[2] == 0 {
		return [3]float64{}
	}
	var l [3]float64
	rxy := x[0]*x[0] + x[1]*x[1]
	l[2] = math.Sqrt(rxy + x[2]*x[2])
	rxy = math.Sqrt(rxy)
	if rxy == 0 {
		// on the pole the longitude follows the direction of motion
		l[0] = math.Atan2(x[4], x[3])
		if l[0] < 0 {
			l[0] += twoPi
		}
		vh := math.Hypot(x[3], x[4])
		if x[2] > 0 {
			l[1], l[4], l[5] = math.Pi/2, -vh/l[2], x[5]
		} else {
			l[1], l[4], l[5] = -math.Pi/2, vh/l[2], -x[5]
		}
		return l
	}
	l[0] = math.Atan2(x[1], x[0])
	if l[0] < 0 {
		l[0] += twoPi
	}
	switch {
	case rxy != 0:
		l[1] = math.Atan(x[2] / rxy)
	case x[2] >= 0:
		l[1] = math.Pi / 2
	default:
		l[1] = -(math.Pi / 2)
	}
	return l
}

// polCart converts longitude, latitude and radius into a cartesian vector.
func polCart(l [3]float64) [3]float64 {
	cosl1 := math.Cos(l[1])
	return [3]float64{
		l[2] * cosl1 * math.Cos(l[0]),
		l[2] * cosl1 * math.Sin(l[0]),
		l[2] * math.Sin(l[1]),
	}
}

// cartPolSp converts a cartesian state into polar coordinates with speeds. The speeds
// are obtained by rotating the velocity into the frame of the position: first about z
// by the longitude, where vy/rxy is the speed in longitude, then about the new y axis
// by the latitude, where vz/r is the speed in latitude and vx the radial speed.
func cartPolSp(x [6]float64) [6]float64 {
	var l [6]float64
	// zero position: direction of motion, radial speed only
	if x[0] == 0 && x[1] == 0 && x[2] == 0 {
		v := cartPol([3]float64{x[3], x[4], x[5]})
		l[0], l[1] = v[0], v[1]
		l[5] = math.Sqrt(x[3]*x[3] + x[4]*x[4] + x[5]*x[5])
		return l
	}
	if x[3] == 0 && x[4] == 0 && x[5] == 0 {
		p := cartPol([3]float64{x[0], x[1], x[2]})
		l[0], l[1], l[2] = p[0], p[1], p[2]
		return l
	}

	rxy := x[0]*x[0] + x[1]*x[1]
	l[2] = math.Sqrt(rxy + x[2]*x[2])
	rxy = math.Sqrt(rxy)
	if rxy == 0 {
		// on the pole the longitude follows the direction of motion
		l[0] = math.Atan2(x[4], x[3])
		if l[0] < 0 {
			l[0] += twoPi
		}
		vh := math.Hypot(x[3], x[4])
		if x[2] > 0 {
			l[1], l[4], l[5] = math.Pi/2, -vh/l[2], x[5]
		} else {
			l[1], l[4], l[5] = -math.Pi/2, vh/l[2], -x[5]
		}
		return l
	}
	l[0] = math.Atan2(x[1], x[0])
	if l[0] < 0 {
		l[0] += twoPi
	}
	l[1] = math.Atan(x[2] / rxy)

	coslon := x[0] / rxy
	sinlon := x[1] / rxy
	coslat := rxy / l[2]
	sinlat := x[2] / l[2]
	vx := x[3]*coslon + x[4]*sinlon
	vy := -x[3]*sinlon + x[4]*coslon
	l[3] = vy / rxy
	vz := -sinlat*vx + coslat*x[5]
	l[4] = vz / l[2]
	l[5] = coslat*vx + sinlat*x[5]
	return l
}

// polCartSp converts a polar state with speeds back into cartesian coordinates.
func polCartSp(l [6]float64) [6]float64 {
	if l[3] == 0 && l[4] == 0 && l[5] == 0 {
		p := polCart([3]float64{l[0], l[1], l[2]})
		return [6]float64{p[0], p[1], p[2]}
	}
	coslon := math.Cos(l[0])
	sinlon := math.Sin(l[0])
	coslat := math.Cos(l[1])
	sinlat := math.Sin(l[1])

	var x [6]float64
	x[0] = l[2] * coslat * coslon
	x[1] = l[2] * coslat * sinlon
	x[2] = l[2] * sinlat

	rxyz := l[2]
	rxy := math.Sqrt(x[0]*x[0] + x[1]*x[1])
	vr := l[5]
	vlat := l[4] * rxyz
	x[5] = sinlat*vr + coslat*vlat
	vxy := coslat*vr - sinlat*vlat
	vlon := l[3] * rxy
	x[3] = coslon*vxy - sinlon*vlon
	x[4] = sinlon*vxy + coslon*vlon
	return x
}

// norm returns the length of the position part of v.
func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// dot returns the scalar product of the position parts of a and b.
func dot(a, b []float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// degNorm reduces an angle in degrees to [0, 360).
func degNorm(x float64) float64 {
	y := math.Mod(x, 360.0)
	if math.Abs(y) < 1e-13 {
		y = 0
	}
	if y < 0 {
		y += 360
	}
	return y
}

// radNorm reduces an angle in radians to [0, 2*pi).
func radNorm(x float64) float64 {
	y := math.Mod(x, twoPi)
	if math.Abs(y) < 1e-13 {
		y = 0
	}
	if y < 0 {
		y += twoPi
	}
	return y
}
