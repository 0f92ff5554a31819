// ./internal_types.go
package sweph

/*
Package sweph provides the data structures shared by the file reader and the resolver.

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

import "encoding/binary"

// File structure notes.
//
// A Swiss Ephemeris file (sepl_18.se1, semo_18.se1, seas_18.se1, ast0/se00433.se1, ...)
// covers 600 years of one group of bodies. All numbers are stored in the byte order
// of the machine that wrote the file; readers detect it from the sentinel below.
//
// Text header:
//
//	"SWISSEPH VERSION <n>\r\n"     version line, the first integer is the format version
//	"<file name>\r\n"              name of the file, without path
//	"<copyright>\r\n"              copyright notice
//	"<orbital elements>\r\n"       single asteroid files only
//
// Binary header (offsets are relative to the end of the text header):
//
//	+0   int32      0x616263 byte order sentinel
//	+4   int32      total file length in bytes
//	+8   int32      number of the JPL ephemeris the file was built from (DE number)
//	+12  float64    start epoch (JD)
//	+20  float64    end epoch (JD)
//	+28  int16      number of bodies; a value above 256 means 4-byte body numbers
//	+30  n*int16    body numbers (or n*int32)
//	     [30]byte   asteroid name, single asteroid files only
//	     int32      header CRC
//	     5*float64  speed of light, AU, heliocentric gravitational constant,
//	                Earth/Moon mass ratio, solar radius
//
// Per body, in the order of the body numbers:
//
//	int32          file offset of the segment index
//	uint8          flags (helio, rotate, ellipse, embhel)
//	uint8          ncoe, number of Chebyshev coefficients per coordinate
//	int32          rmax*1000, normalisation factor of the packed coefficients
//	10*float64     tfstart, tfend, dseg, telem, prot, dprot, qrot, dqrot, peri, dperi
//	2*ncoe*float64 reference ellipse, X block followed by Y block (ellipse flag only)
//
// Segment index: nndx entries of 3 bytes each, every entry is the file offset of a
// packed segment. A packed segment holds, for each of the three coordinates, a size
// header of 2 or 4 bytes and then groups of 4-, 3-, 2- and 1-byte integers followed
// by half-byte and quarter-byte packed coefficients.

// maxOrder bounds the number of coefficients per coordinate.
const maxOrder = 40

// PlanetInfo holds the constants the file header stores for one body.
type PlanetInfo struct {
	Body    int       // body number as stored in the file
	Lndx0   int64     // file offset of the segment index
	Flags   uint8     // flgHelio, flgRotate, flgEllipse, flgEmbHel
	NCoe    int       // coefficients per coordinate
	RMax    float64   // normalisation factor of the packed coefficients
	TFStart float64   // first date covered
	TFEnd   float64   // last date covered
	DSeg    float64   // segment length in days
	NNdx    int       // number of index entries
	TElem   float64   // epoch of the orbital elements
	Prot    float64   // node term of the orbital plane (Moon: rotation angle)
	DProt   float64   // rate of Prot per 1000 years
	Qrot    float64   // inclination term of the orbital plane
	DQrot   float64   // rate of Qrot per 1000 years
	Peri    float64   // longitude of perihelion of the reference ellipse
	DPeri   float64   // rate of Peri per 1000 years
	RefEp   []float64 // reference ellipse, 2*NCoe values
}

// Header is the parsed header of one ephemeris file.
type Header struct {
	Version      int
	FileName     string
	Copyright    string
	AsteroidName string
	ByteOrder    binary.ByteOrder
	Length       int64
	DENumber     int
	TFStart      float64
	TFEnd        float64
	Bodies       []int
	CLight       float64
	AUnit        float64
	HelGravConst float64
	RatME        float64
	SunRadius    float64
	Planets      map[int]*PlanetInfo
}

// Segment is one decoded time window of one body: Chebyshev coefficients already
// rotated back to the J2000 equator. Segments are immutable once built and may be
// shared between goroutines through the segment cache.
type Segment struct {
	Body  int       // body number as stored in the file
	Index int       // segment number within the file
	Flags uint8     // body flags copied from the header
	TSeg0 float64   // start of the validity window
	TSeg1 float64   // end of the validity window
	DSeg  float64   // segment length in days
	NCoe  int       // coefficients per coordinate
	NEval int       // number of coefficients worth evaluating
	Coef  []float64 // 3*NCoe coefficients, X block, Y block, Z block
}

// Contains reports whether t falls within the segment window.
func (s *Segment) Contains(t float64) bool {
	return t >= s.TSeg0 && t <= s.TSeg1
}
