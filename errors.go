// ./errors.go
package sweph

/*
Package sweph provides the error values returned by the ephemeris reader and the reduction pipeline.

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

import "errors"

// ErrFileNotFound is returned when no ephemeris file covering the request can be opened.
var ErrFileNotFound = errors.New("ephemeris file not found")

// ErrOutOfRange is returned when the requested date is outside the time range of the ephemeris file.
var ErrOutOfRange = errors.New("date outside ephemeris time range")

// ErrCorruptData is returned when an ephemeris file fails a consistency check
// (byte order sentinel, file length, body count, coefficient sizes).
var ErrCorruptData = errors.New("corrupt ephemeris data")

// ErrUnsupportedBody is returned for bodies or ephemeris sources this package cannot compute.
var ErrUnsupportedBody = errors.New("unsupported body")

// ErrConflictingFlags is returned when the calculation flags ask for mutually exclusive options.
var ErrConflictingFlags = errors.New("conflicting calculation flags")

// ErrMissingDependency is returned when a reduction stage runs before the bodies it
// depends on (Earth, Sun, observer) have been resolved for the same instant.
var ErrMissingDependency = errors.New("missing dependency")

// ErrNumericDomain is returned when a correction would divide by a vanishing quantity.
var ErrNumericDomain = errors.New("numeric domain error")

// ErrNotAvailable is returned when a body is not contained in any loaded ephemeris
// and no fallback provider can supply it.
var ErrNotAvailable = errors.New("body not available")
