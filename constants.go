// ./constants.go
package sweph

/*
Package sweph provides constants for accessing Swiss Ephemeris data.

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

// Constants for the sweph package.
//
// Body numbers and calculation flags keep the values used by the Swiss
// Ephemeris C library so that callers can exchange them with other tools.

// Body identifies a solar-system body using the external Swiss Ephemeris numbering.
type Body int

const (
	// Sun represents the Sun.
	Sun Body = 0
	// Moon represents the Earth's Moon.
	Moon Body = 1
	// Mercury represents the planet Mercury.
	Mercury Body = 2
	// Venus represents the planet Venus.
	Venus Body = 3
	// Mars represents the planet Mars.
	Mars Body = 4
	// Jupiter represents the planet Jupiter.
	Jupiter Body = 5
	// Saturn represents the planet Saturn.
	Saturn Body = 6
	// Uranus represents the planet Uranus.
	Uranus Body = 7
	// Neptune represents the planet Neptune.
	Neptune Body = 8
	// Pluto represents the dwarf planet Pluto.
	Pluto Body = 9
	// Earth represents the Earth (only meaningful for heliocentric or barycentric positions).
	Earth Body = 14
	// Chiron represents the centaur 2060 Chiron.
	Chiron Body = 15
	// Pholus represents the centaur 5145 Pholus.
	Pholus Body = 16
	// Ceres represents the dwarf planet 1 Ceres.
	Ceres Body = 17
	// Pallas represents the asteroid 2 Pallas.
	Pallas Body = 18
	// Juno represents the asteroid 3 Juno.
	Juno Body = 19
	// Vesta represents the asteroid 4 Vesta.
	Vesta Body = 20
	// AsteroidOffset is added to a minor planet number to address its own ephemeris file,
	// e.g. AsteroidOffset+433 for Eros.
	AsteroidOffset Body = 10000
)

// Flag is the calculation bitmask accepted by ComputePosition.
type Flag int32

const (
	FlagJPLEph     Flag = 1      // use a JPL ephemeris file (not served by this package)
	FlagSwiEph     Flag = 2      // use Swiss Ephemeris .se1 files (default)
	FlagMosEph     Flag = 4      // use the Moshier analytical ephemeris (not served by this package)
	FlagHelCtr     Flag = 8      // heliocentric position
	FlagTruePos    Flag = 16     // geometric position, no light-time, deflection or aberration
	FlagJ2000      Flag = 32     // no precession, J2000 equinox
	FlagNoNut      Flag = 64     // no nutation, mean equinox of date
	FlagSpeed      Flag = 256    // compute speed
	FlagNoGDefl    Flag = 512    // no gravitational deflection
	FlagNoAberr    Flag = 1024   // no annual aberration
	FlagEquatorial Flag = 2048   // equatorial instead of ecliptic coordinates
	FlagXYZ        Flag = 4096   // cartesian instead of polar coordinates
	FlagRadians    Flag = 8192   // angles in radians instead of degrees
	FlagBaryCtr    Flag = 16384  // barycentric position
	FlagTopoCtr    Flag = 32768  // topocentric position
	FlagICRS       Flag = 131072 // ICRS frame, no frame bias

	// FlagAstrometric switches off deflection and aberration but keeps light-time.
	FlagAstrometric = FlagNoAberr | FlagNoGDefl
)

// Has reports whether all bits of x are set in f.
func (f Flag) Has(x Flag) bool {
	return f&x == x
}

// Internal body slots. The numbers double as the body identifiers stored
// in the .se1 file headers.
const (
	seiEMB      = 0
	seiEarth    = 0
	seiSun      = 0
	seiMoon     = 1
	seiMercury  = 2
	seiPluto    = 9
	seiSunBary  = 10
	seiAnyBody  = 11
	seiChiron   = 12
	seiPholus   = 13
	seiCeres    = 14
	seiPallas   = 15
	seiJuno     = 16
	seiVesta    = 17
	seiNPlanets = 18
)

// File kinds.
const (
	fileKindPlanet = iota
	fileKindMoon
	fileKindMainAst
	fileKindAnyAst
)

// Per body flags stored in the file header.
const (
	flgHelio   = 1 // coefficients are heliocentric
	flgRotate  = 2 // coefficients refer to the orbital plane
	flgEllipse = 4 // coefficients are stored relative to a reference ellipse
	flgEmbHel  = 8 // the Sun slot holds the heliocentric EMB
)

// Physical and astronomical constants.
const (
	J2000           = 2451545.0                // J2000 epoch, Julian Ephemeris Date
	AUnit           = 1.49597870700e+11        // astronomical unit in meters (IAU 2012)
	CLight          = 2.99792458e+8            // speed of light in m/s
	HelGravConst    = 1.32712440017987e+20     // heliocentric gravitational constant G*M(sun), m^3/s^2
	GeoGravConst    = 3.98600448e+14           // geocentric gravitational constant G*M(earth), m^3/s^2
	EarthMoonMRat   = 1 / 0.0123000383         // Earth/Moon mass ratio (AA 2006, K7)
	EarthRadius     = 6378136.6                // equatorial Earth radius in meters (AA 2006)
	EarthOblateness = 1.0 / 298.25642          // Earth flattening (AA 2006)
	EarthRotSpeed   = 7.2921151467e-5 * 86400 // Earth rotation in rad/day

	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
	twoPi    = 2 * math.Pi

	sunRadius = 959.63 / 3600 * degToRad // apparent solar radius at 1 AU, radians

	// Intervals (days) used for finite-difference speeds.
	planSpeedIntv = 0.0001
	nutSpeedIntv  = 0.0001
	deflSpeedIntv = 0.0000005

	// sin and cos of the J2000 obliquity, used to rotate the lunar series.
	seps2000 = 0.39777715572793088
	ceps2000 = 0.91748206215761929
)
