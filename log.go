// ./log.go
package sweph

/*
Package sweph provides the log entries of the ephemeris components.

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

import "github.com/sirupsen/logrus"

// newLogEntry returns the entry a component logs through. Every Ephemeris carries
// its own; a nil logger selects the logrus standard logger.
func newLogEntry(l *logrus.Logger) *logrus.Entry {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return logrus.NewEntry(l)
}

// SetDebug switches debug logging of file opens, segment loads and cache misses on
// or off. It changes the level of the logger the ephemeris was created with.
func (e *Ephemeris) SetDebug(debug bool) {
	if debug {
		e.log.Logger.SetLevel(logrus.DebugLevel)
		return
	}
	e.log.Logger.SetLevel(logrus.InfoLevel)
}
