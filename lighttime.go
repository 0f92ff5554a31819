// ./lighttime.go
package sweph

/*
Package sweph provides the light-time, light deflection and aberration corrections.

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

// effArr is the fraction of the solar mass that acts on a light ray passing the Sun
// at a distance r, in units of the solar radius, from the Sun's center. It follows
// from the mass distribution of the Sun and lets the deflection vanish smoothly for
// bodies behind the solar disk.
var effArr = [...]struct{ r, m float64 }{
	{1.000, 1.000000}, {0.990, 0.999979}, {0.980, 0.999940}, {0.970, 0.999881},
	{0.960, 0.999811}, {0.950, 0.999724}, {0.940, 0.999622}, {0.930, 0.999497},
	{0.920, 0.999354}, {0.910, 0.999192}, {0.900, 0.999000}, {0.890, 0.998786},
	{0.880, 0.998535}, {0.870, 0.998242}, {0.860, 0.997919}, {0.850, 0.997571},
	{0.840, 0.997198}, {0.830, 0.996792}, {0.820, 0.996316}, {0.810, 0.995791},
	{0.800, 0.995226}, {0.790, 0.994625}, {0.780, 0.993991}, {0.770, 0.993326},
	{0.760, 0.992598}, {0.750, 0.991770}, {0.740, 0.990873}, {0.730, 0.989919},
	{0.720, 0.988912}, {0.710, 0.987856}, {0.700, 0.986755}, {0.690, 0.985610},
	{0.680, 0.984398}, {0.670, 0.982986}, {0.660, 0.981437}, {0.650, 0.979779},
	{0.640, 0.978024}, {0.630, 0.976182}, {0.620, 0.974256}, {0.610, 0.972253},
	{0.600, 0.970174}, {0.590, 0.968024}, {0.580, 0.965594}, {0.570, 0.962797},
	{0.560, 0.959758}, {0.550, 0.956515}, {0.540, 0.953088}, {0.530, 0.949495},
	{0.520, 0.945741}, {0.510, 0.941838}, {0.500, 0.937790}, {0.490, 0.933563},
	{0.480, 0.928668}, {0.470, 0.923288}, {0.460, 0.917527}, {0.450, 0.911432},
	{0.440, 0.905035}, {0.430, 0.898353}, {0.420, 0.891022}, {0.410, 0.882940},
	{0.400, 0.874312}, {0.390, 0.865206}, {0.380, 0.855423}, {0.370, 0.844619},
	{0.360, 0.833074}, {0.350, 0.820876}, {0.340, 0.808031}, {0.330, 0.793962},
	{0.320, 0.778931}, {0.310, 0.763021}, {0.300, 0.745815}, {0.290, 0.727557},
	{0.280, 0.708234}, {0.270, 0.687583}, {0.260, 0.665741}, {0.250, 0.642597},
	{0.240, 0.618252}, {0.230, 0.592586}, {0.220, 0.565747}, {0.210, 0.537697},
	{0.200, 0.508554}, {0.190, 0.478420}, {0.180, 0.447322}, {0.170, 0.415454},
	{0.160, 0.382892}, {0.150, 0.349955}, {0.140, 0.316691}, {0.130, 0.283565},
	{0.120, 0.250431}, {0.110, 0.218327}, {0.100, 0.186794}, {0.090, 0.156287},
	{0.080, 0.128421}, {0.070, 0.102237}, {0.060, 0.077393}, {0.050, 0.054833},
	{0.040, 0.036361}, {0.030, 0.020953}, {0.020, 0.009645}, {0.010, 0.002767},
	{0.000, 0.000000},
}

// meff returns the effective mass factor for impact parameter r (solar radii).
func meff(r float64) float64 {
	if r <= 0 {
		return 0
	}
	if r >= 1 {
		return 1
	}
	i := 0
	for effArr[i].r > r {
		i++
	}
	f := (r - effArr[i-1].r) / (effArr[i].r - effArr[i-1].r)
	return effArr[i-1].m + f*(effArr[i].m-effArr[i-1].m)
}

// lightTime returns the light-time in days for a distance in AU.
func lightTime(dist float64) float64 {
	return dist * AUnit / CLight / 86400.0
}

// deflectionGeometry holds the unit vectors of the deflection formula: u from the
// observer to the body, q from the Sun to the body and e from the Sun to the observer.
type deflectionGeometry struct {
	u, q, e    [3]float64
	ru, rq, re float64
}

func newDeflectionGeometry(u, q, e [3]float64) (deflectionGeometry, error) {
	g := deflectionGeometry{
		ru: norm(u[:]),
		rq: norm(q[:]),
		re: norm(e[:]),
	}
	if g.ru == 0 || g.rq == 0 || g.re == 0 {
		return g, fmt.Errorf("%w: zero distance in light deflection", ErrNumericDomain)
	}
	for i := 0; i < 3; i++ {
		g.u[i] = u[i] / g.ru
		g.q[i] = q[i] / g.rq
		g.e[i] = e[i] / g.re
	}
	return g, nil
}

// deflect returns the deflected, non-normalized vector from the observer to the body.
// Inside the solar disk the Sun acts with an effective mass, see meff.
func (g deflectionGeometry) deflect() ([3]float64, error) {
	uq := dot(g.u[:], g.q[:])
	ue := dot(g.u[:], g.e[:])
	qe := dot(g.q[:], g.e[:])
	sina := math.Sqrt(1 - ue*ue)
	sinSunR := sunRadius / g.re
	meffFact := 1.0
	if sina < sinSunR {
		meffFact = meff(sina / sinSunR)
	}
	g1 := 2.0 * HelGravConst * meffFact / CLight / CLight / AUnit / g.re
	g2 := 1.0 + qe
	if math.Abs(g2) < 1e-15 {
		return [3]float64{}, fmt.Errorf("%w: body and observer on opposite sides of the Sun", ErrNumericDomain)
	}
	var x [3]float64
	for i := 0; i < 3; i++ {
		x[i] = g.ru * (g.u[i] + g1/g2*(uq*g.e[i]-ue*g.q[i]))
	}
	return x, nil
}

// deflectLight applies the relativistic deflection of light by the Sun to xx, the
// position of a body relative to the observer. xobs is the barycentric observer and
// xsun the barycentric Sun, both at the time of observation; dt is the light-time.
// The speed gets the change of the deflection over deflSpeedIntv.
func deflectLight(xx, xobs, xsun [6]float64, dt float64, speed bool) ([6]float64, error) {
	// Sun at the time the light left the body
	var xsunLT [6]float64
	for i := 0; i <= 2; i++ {
		xsunLT[i] = xsun[i] - dt*xsun[i+3]
		xsunLT[i+3] = xsun[i+3]
	}

	var u, q, e [3]float64
	for i := 0; i <= 2; i++ {
		u[i] = xx[i]
		e[i] = xobs[i] - xsun[i]
		q[i] = xx[i] + xobs[i] - xsunLT[i]
	}
	g, err := newDeflectionGeometry(u, q, e)
	if err != nil {
		return xx, err
	}
	xx2, err := g.deflect()
	if err != nil {
		return xx, err
	}

	out := xx
	if speed {
		dtsp := -deflSpeedIntv
		for i := 0; i <= 2; i++ {
			u[i] = xx[i] - dtsp*xx[i+3]
			e[i] = xobs[i] - dtsp*xobs[i+3] - (xsun[i] - dtsp*xsun[i+3])
			q[i] = u[i] + xobs[i] - dtsp*xobs[i+3] - xsunLT[i] + dtsp*xsunLT[i+3]
		}
		g3, err := newDeflectionGeometry(u, q, e)
		if err != nil {
			return xx, err
		}
		xx3, err := g3.deflect()
		if err != nil {
			return xx, err
		}
		for i := 0; i <= 2; i++ {
			dx1 := xx2[i] - xx[i]
			dx2 := xx3[i] - g3.u[i]*g3.ru
			dx1 -= dx2
			out[i+3] += dx1 / dtsp
		}
	}
	out[0], out[1], out[2] = xx2[0], xx2[1], xx2[2]
	return out, nil
}

// aberrLight applies the relativistic annual aberration to xx, the position of a body
// relative to the observer, with xobs the barycentric observer. The speed gets the
// change of the aberration over planSpeedIntv.
func aberrLight(xx, xobs [6]float64, speed bool) ([6]float64, error) {
	xxs := xx
	ru := norm(xx[:3])
	if ru == 0 {
		return xx, fmt.Errorf("%w: zero distance in aberration", ErrNumericDomain)
	}
	var v [3]float64
	for i := 0; i <= 2; i++ {
		v[i] = xobs[i+3] / 24.0 / 3600.0 / CLight * AUnit
	}
	v2 := dot(v[:], v[:])
	b1 := math.Sqrt(1 - v2)
	f1 := dot(xx[:3], v[:]) / ru
	f2 := 1.0 + f1/(1.0+b1)

	out := xx
	for i := 0; i <= 2; i++ {
		out[i] = (b1*xx[i] + f2*ru*v[i]) / (1.0 + f1)
	}
	if speed {
		intv := planSpeedIntv
		var u, xx2 [3]float64
		for i := 0; i <= 2; i++ {
			u[i] = xxs[i] - intv*xxs[i+3]
		}
		ru = norm(u[:])
		f1 = dot(u[:], v[:]) / ru
		f2 = 1.0 + f1/(1.0+b1)
		for i := 0; i <= 2; i++ {
			xx2[i] = (b1*u[i] + f2*ru*v[i]) / (1.0 + f1)
		}
		for i := 0; i <= 2; i++ {
			dx1 := out[i] - xxs[i]
			dx2 := xx2[i] - u[i]
			dx1 -= dx2
			out[i+3] += dx1 / intv
		}
	}
	return out, nil
}
