// ./rotation.go
package sweph

/*
Package sweph provides the reconstruction of segment coefficients from the orbital plane.

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

// neglectCoef is the summed magnitude below which trailing coefficients are not evaluated.
const neglectCoef = 1e-14

// OrbitalRotation is the orthonormal frame of a segment's mean orbital plane: UIX points
// to the origin of longitudes, UIZ along the angular momentum and UIY completes the
// right-handed system. The frame is built from the equinoctial variables q and p.
type OrbitalRotation struct {
	UIX [3]float64
	UIY [3]float64
	UIZ [3]float64
}

// newOrbitalRotation builds the frame for the equinoctial variables qav, pav.
func newOrbitalRotation(qav, pav float64) OrbitalRotation {
	cosih2 := 1.0 / (1.0 + qav*qav + pav*pav)
	var r OrbitalRotation
	// orbit pole
	r.UIZ[0] = 2.0 * pav * cosih2
	r.UIZ[1] = -2.0 * qav * cosih2
	r.UIZ[2] = (1.0 - qav*qav - pav*pav) * cosih2
	// origin of longitudes
	r.UIX[0] = (1.0 + qav*qav - pav*pav) * cosih2
	r.UIX[1] = 2.0 * qav * pav * cosih2
	r.UIX[2] = -2.0 * pav * cosih2
	// in the orbital plane, orthogonal to the origin of longitudes
	r.UIY[0] = 2.0 * qav * pav * cosih2
	r.UIY[1] = (1.0 - qav*qav + pav*pav) * cosih2
	r.UIY[2] = 2.0 * qav * cosih2
	return r
}

// Apply rotates a vector given in the orbital frame to the reference frame.
func (r OrbitalRotation) Apply(x [3]float64) [3]float64 {
	return [3]float64{
		x[0]*r.UIX[0] + x[1]*r.UIY[0] + x[2]*r.UIZ[0],
		x[0]*r.UIX[1] + x[1]*r.UIY[1] + x[2]*r.UIZ[1],
		x[0]*r.UIX[2] + x[1]*r.UIY[2] + x[2]*r.UIZ[2],
	}
}

// reduceTurns removes whole turns from an angle, truncating toward zero.
func reduceTurns(a float64) float64 {
	i := int(a / twoPi)
	return a - float64(i)*twoPi
}

// segmentRotation returns the orbital frame of seg, evaluated at the middle of the
// segment, and tdiff, the time from the element epoch in millennia.
func segmentRotation(pi *PlanetInfo, seg *Segment) (OrbitalRotation, float64) {
	t := seg.TSeg0 + seg.DSeg/2
	tdiff := (t - pi.TElem) / 365250.0
	var qav, pav float64
	if pi.Body == seiMoon {
		dn := reduceTurns(pi.Prot + tdiff*pi.DProt)
		qav = (pi.Qrot + tdiff*pi.DQrot) * math.Cos(dn)
		pav = (pi.Qrot + tdiff*pi.DQrot) * math.Sin(dn)
	} else {
		qav = pi.Qrot + tdiff*pi.DQrot
		pav = pi.Prot + tdiff*pi.DProt
	}
	return newOrbitalRotation(qav, pav), tdiff
}

// RotateBack turns the coefficients of a segment read from a body flagged "rotate"
// into J2000 equatorial coefficients. If the body is stored relative to a reference
// ellipse, the ellipse (rotated to the mean perihelion of the segment) is added first.
// The Moon is stored relative to the J2000 ecliptic and gets tilted to the equator.
// The result is a new segment with NEval set to the index of the highest coefficient
// whose summed magnitude reaches 1e-14; the input is not modified.
func RotateBack(pi *PlanetInfo, seg *Segment) *Segment {
	out := *seg
	out.Coef = append([]float64(nil), seg.Coef...)
	rotateBack(pi, &out)
	return &out
}

// rotateBack does the work of RotateBack in place.
func rotateBack(pi *PlanetInfo, seg *Segment) {
	nco := seg.NCoe
	chcfx := seg.Coef[:nco]
	chcfy := seg.Coef[nco : 2*nco]
	chcfz := seg.Coef[2*nco : 3*nco]

	rot, tdiff := segmentRotation(pi, seg)

	x := make([][3]float64, nco)
	for i := 0; i < nco; i++ {
		x[i] = [3]float64{chcfx[i], chcfy[i], chcfz[i]}
	}
	if pi.Flags&flgEllipse != 0 && len(pi.RefEp) >= 2*nco {
		refepx := pi.RefEp[:nco]
		refepy := pi.RefEp[nco : 2*nco]
		omtild := reduceTurns(pi.Peri + tdiff*pi.DPeri)
		com := math.Cos(omtild)
		som := math.Sin(omtild)
		for i := 0; i < nco; i++ {
			x[i][0] = chcfx[i] + com*refepx[i] - som*refepy[i]
			x[i][1] = chcfy[i] + com*refepy[i] + som*refepx[i]
		}
	}

	seg.NEval = 0
	for i := 0; i < nco; i++ {
		r := rot.Apply(x[i])
		if math.Abs(r[0])+math.Abs(r[1])+math.Abs(r[2]) >= neglectCoef {
			seg.NEval = i
		}
		if pi.Body == seiMoon {
			// J2000 ecliptic to J2000 equator
			r[1], r[2] = ceps2000*r[1]-seps2000*r[2], seps2000*r[1]+ceps2000*r[2]
		}
		chcfx[i], chcfy[i], chcfz[i] = r[0], r[1], r[2]
	}
}
