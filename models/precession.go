// ./models/precession.go
package models

/*
Package models provides the precession models.

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
	"strings"
)

// J2000 is the epoch J2000.0 as a Julian Ephemeris Date.
const J2000 = 2451545.0

// b1850 is the Besselian epoch 1850.0.
const b1850 = 2396758.203

// Precession directions.
const (
	J2000ToDate = -1
	DateToJ2000 = 1
)

const (
	degToRad = math.Pi / 180
	as2r     = degToRad / 3600
)

// PrecessionModel rotates an equatorial vector between the mean equator of J2000 and
// the mean equator of date.
type PrecessionModel interface {
	// Precess rotates x; direction is J2000ToDate or DateToJ2000.
	Precess(x [3]float64, tjd float64, direction int) [3]float64
	// LongitudeRate is the general precession in longitude in radians per day.
	LongitudeRate(tjd float64) float64
}

// Precession selects one of the precession angle polynomials Z, z, theta.
type Precession int

const (
	PrecIAU1976       Precession = iota + 1 // Lieske et al. 1977
	PrecIAU2000                             // Capitaine, Chapront, Lambert, Wallace 2003
	PrecIAU2006                             // Capitaine, Wallace, Chapront 2003 (P03)
	PrecBretagnon2003                       // Bretagnon, Fienga, Simon 2003
	PrecNewcomb                             // Newcomb, referred to B1850
	PrecVondrak2011                         // Vondrak, Capitaine, Wallace 2011
)

// DefaultPrecession is the precession model used when none is configured.
const DefaultPrecession = PrecVondrak2011

// PrecVondrak2011 uses the IAU 2006 polynomials within this many centuries of J2000.
const vondrakShortCenturies = 5.0

// Angles returns the equatorial precession angles Z, z and theta in radians for
// the interval from J2000 to tjd. PrecVondrak2011 has no angles and returns those
// of IAU 2006.
func (p Precession) Angles(tjd float64) (Z, z, th float64) {
	if p == PrecNewcomb {
		mills := 365242.198782 // tropical millennium
		t1 := (J2000 - b1850) / mills
		t2 := (tjd - b1850) / mills
		T := t2 - t1
		T2 := T * T
		T3 := T2 * T
		Z1 := 23035.5548 + 139.720*t1 + 0.069*t1*t1
		Z = Z1*T + (30.242-0.269*t1)*T2 + 17.996*T3
		z = Z1*T + (109.478-0.387*t1)*T2 + 18.324*T3
		th = (20051.125-85.294*t1-0.365*t1*t1)*T + (-42.647-0.365*t1)*T2 - 41.802*T3
		return Z * as2r, z * as2r, th * as2r
	}

	T := (tjd - J2000) / 36525.0
	switch p {
	case PrecIAU1976:
		Z = ((0.017998*T+0.30188)*T + 2306.2181) * T
		z = ((0.018203*T+1.09468)*T + 2306.2181) * T
		th = ((-0.041833*T-0.42665)*T + 2004.3109) * T
	case PrecIAU2000:
		Z = (((((-0.0000002*T-0.0000327)*T+0.0179663)*T+0.3019015)*T+2306.0809506)*T + 2.5976176)
		z = (((((-0.0000003*T-0.000047)*T+0.0182237)*T+1.0947790)*T+2306.0803226)*T - 2.5976176)
		th = ((((-0.0000001*T-0.0000601)*T-0.0418251)*T-0.4269353)*T + 2004.1917476) * T
	case PrecBretagnon2003:
		Z = ((((((-0.00000000013*T-0.0000003040)*T-0.000005708)*T+0.01801752)*T+0.3023262)*T+2306.080472)*T + 2.72767)
		z = ((((((-0.00000000005*T-0.0000002486)*T-0.000028276)*T+0.01826676)*T+1.0956768)*T+2306.076070)*T - 2.72767)
		th = ((((((0.000000000009*T+0.00000000036)*T-0.0000001127)*T-0.000007291)*T-0.04182364)*T-0.4266980)*T + 2004.190936) * T
	default: // PrecIAU2006
		Z = (((((-0.0000003173*T-0.000005971)*T+0.01801828)*T+0.2988499)*T+2306.083227)*T + 2.650545)
		z = (((((-0.0000002904*T-0.000028596)*T+0.01826837)*T+1.0927348)*T+2306.077181)*T - 2.650545)
		th = ((((-0.00000011274*T-0.000007089)*T-0.04182264)*T-0.4294934)*T + 2004.191903) * T
	}
	return Z * degToRad / 3600, z * degToRad / 3600, th * degToRad / 3600
}

// Precess rotates x between J2000 and the equinox of tjd. At tjd == J2000 the
// vector is returned unchanged.
func (p Precession) Precess(x [3]float64, tjd float64, direction int) [3]float64 {
	if tjd == J2000 {
		return x
	}
	if p == PrecVondrak2011 {
		if math.Abs(tjd-J2000)/36525.0 > vondrakShortCenturies {
			m := LongTermPrecessionMatrix(tjd)
			if direction < 0 {
				return m.MulVec(x)
			}
			return m.TMulVec(x)
		}
		p = PrecIAU2006
	}
	Z, z, th := p.Angles(tjd)
	sinth, costh := math.Sin(th), math.Cos(th)
	sinZ, cosZ := math.Sin(Z), math.Cos(Z)
	sinz, cosz := math.Sin(z), math.Cos(z)
	A := cosZ * costh
	B := sinZ * costh

	var r [3]float64
	if direction < 0 {
		r[0] = (A*cosz-sinZ*sinz)*x[0] - (B*cosz+cosZ*sinz)*x[1] - sinth*cosz*x[2]
		r[1] = (A*sinz+sinZ*cosz)*x[0] - (B*sinz-cosZ*cosz)*x[1] - sinth*sinz*x[2]
		r[2] = cosZ*sinth*x[0] - sinZ*sinth*x[1] + costh*x[2]
	} else {
		r[0] = (A*cosz-sinZ*sinz)*x[0] + (A*sinz+sinZ*cosz)*x[1] + cosZ*sinth*x[2]
		r[1] = -(B*cosz+cosZ*sinz)*x[0] - (B*sinz-cosZ*cosz)*x[1] - sinZ*sinth*x[2]
		r[2] = -sinth*cosz*x[0] - sinth*sinz*x[1] + costh*x[2]
	}
	return r
}

// Matrix returns the rotation from the mean equator of J2000 to that of tjd.
func (p Precession) Matrix(tjd float64) Matrix3 {
	return PrecessionMatrix(p, tjd)
}

// PrecessionMatrix builds the rotation from the mean equator of J2000 to that of
// tjd by precessing the unit vectors with any PrecessionModel.
func PrecessionMatrix(p PrecessionModel, tjd float64) Matrix3 {
	var m Matrix3
	for j := 0; j < 3; j++ {
		var e [3]float64
		e[j] = 1
		col := p.Precess(e, tjd, J2000ToDate)
		for i := 0; i < 3; i++ {
			m[i][j] = col[i]
		}
	}
	return m
}

// LongitudeRate returns 50.290966" + 0.0222226"*T per Julian year, in radians per day.
func (p Precession) LongitudeRate(tjd float64) float64 {
	T := (tjd - J2000) / 36525.0
	return (50.290966 + 0.0222226*T) / 3600 / 365.25 * degToRad
}

func (p Precession) String() string {
	switch p {
	case PrecIAU1976:
		return "iau1976"
	case PrecIAU2000:
		return "iau2000"
	case PrecIAU2006:
		return "iau2006"
	case PrecBretagnon2003:
		return "bretagnon2003"
	case PrecNewcomb:
		return "newcomb"
	case PrecVondrak2011:
		return "vondrak2011"
	}
	return fmt.Sprintf("Precession(%d)", int(p))
}

// ParsePrecession returns the precession model of the given name. An empty name
// selects DefaultPrecession.
func ParsePrecession(name string) (Precession, error) {
	if name == "" {
		return DefaultPrecession, nil
	}
	for p := PrecIAU1976; p <= PrecVondrak2011; p++ {
		if normalize(name) == p.String() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown precession model %q", name)
}

// normalize folds a model name for comparison: "IAU-2006", "iau_2006" and "iau2006" match.
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
}
