// ./observer.go
package sweph

/*
Package sweph provides the geographic observer and the time scale providers.

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

	"github.com/mshafiee/sweph/models"
	"github.com/soniakeys/meeus/v3/deltat"
	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/meeus/v3/interp"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// DeltaTProvider returns TT - UT in days for a Julian day in TT.
type DeltaTProvider interface {
	DeltaT(tjd float64) float64
}

// SiderealProvider returns the mean sidereal time at Greenwich in radians for a
// Julian day in UT.
type SiderealProvider interface {
	SiderealTime(tjdUT float64) float64
}

// FixedDeltaT is a constant TT - UT in seconds.
type FixedDeltaT float64

// DeltaT returns the constant in days.
func (d FixedDeltaT) DeltaT(float64) float64 {
	return float64(d) / 86400
}

// MeeusDeltaT follows chapter 10 of Meeus, Astronomical Algorithms, for the
// polynomials before 1620 and the table 10.A interpolation up to 2010. Yearly
// observed values carry it to 2028, and the parabola of Morrison and Stephenson
// 2004, joined to the last of them, extrapolates beyond.
type MeeusDeltaT struct{}

// Yearly TT - UT in seconds for 2010.0 to 2028.0, the last five extrapolated.
var deltaTRecent = []float64{
	66.0699, 66.3246, 66.6030, 66.9069, 67.2810, 67.6439, 68.1024, 68.5927, 68.9676, 69.2202,
	69.3612, 69.3593, 69.2945, 69.1833, 69.10, 69.00, 68.90, 68.80, 68.80,
}

const (
	deltaTRecentStart = 2010.0
	deltaTRecentEnd   = 2028.0
)

// morrisonStephenson is the long-term parabola in seconds.
func morrisonStephenson(year float64) float64 {
	t := (year - 2000) / 100
	return 64 + 59*t*t
}

// DeltaT returns TT - UT in days.
func (MeeusDeltaT) DeltaT(tjd float64) float64 {
	year := 2000 + (tjd-J2000)/365.25
	var dt unit.Time
	switch {
	case year < 948:
		dt = deltat.PolyBefore948(year)
	case year < 1620:
		dt = deltat.Poly948to1600(year)
	case year < deltaTRecentStart:
		dt = deltat.Interp10A(tjd)
	case year <= deltaTRecentEnd:
		d3, err := interp.Len3ForInterpolateX(year, deltaTRecentStart, deltaTRecentEnd, deltaTRecent)
		if err != nil {
			panic(err) // the table is longer than three entries
		}
		dt = unit.Time(d3.InterpolateX(year))
	default:
		last := deltaTRecent[len(deltaTRecent)-1]
		dt = unit.Time(morrisonStephenson(year) - morrisonStephenson(deltaTRecentEnd) + last)
	}
	return dt.Sec() / 86400
}

// MeeusSidereal uses the IAU 1982 expression of chapter 12 of Meeus.
type MeeusSidereal struct{}

// SiderealTime returns the mean sidereal time at Greenwich in radians.
func (MeeusSidereal) SiderealTime(tjdUT float64) float64 {
	return sidereal.Mean(tjdUT).Angle().Rad()
}

// GeoPosition is a place on the Earth: longitude east and latitude in degrees,
// height above the ellipsoid in meters.
type GeoPosition struct {
	Longitude float64
	Latitude  float64
	Height    float64
}

// earthEllipsoid is the AA 2006 reference ellipsoid, radius in km.
var earthEllipsoid = globe.Ellipsoid{Er: EarthRadius / 1000, Fl: EarthOblateness}

// stateJ2000 returns the geocentric state of the observer at t, referred to the
// mean equator of J2000, in AU and AU/day. The sidereal time is apparent unless
// nutation is switched off.
func (g *GeoPosition) stateJ2000(ctx *EphemerisContext, t float64) [6]float64 {
	d := ctx.epoch(t)
	ut := t - ctx.models.deltaT.DeltaT(t)
	lst := ctx.models.sidereal.SiderealTime(ut) + g.Longitude*degToRad
	if d.nutationComputed {
		lst += d.dpsi * math.Cos(d.eps+d.deps)
	}

	s, c := earthEllipsoid.ParallaxConstants(unit.AngleFromDeg(g.Latitude), g.Height)
	re := EarthRadius / AUnit
	site := [3]float64{c * re, 0, s * re}
	tod := models.R3(-lst).MulVec(site)
	vel := [3]float64{-EarthRotSpeed * tod[1], EarthRotSpeed * tod[0], 0}

	// terrestrial to true equator of date to J2000 in one rotation
	pos := d.toJ2000.Mul(models.R3(-lst)).MulVec(site)
	vel = d.toJ2000.MulVec(vel)
	return [6]float64{pos[0], pos[1], pos[2], vel[0], vel[1], vel[2]}
}
