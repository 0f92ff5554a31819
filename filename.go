// ./filename.go
package sweph

/*
Package sweph provides the ephemeris file names and the pool of open files.

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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/soniakeys/meeus/v3/julian"
)

// Every planet, Moon and main asteroid file covers this many centuries.
const nCenturies = 6

// DefaultEphePath is searched when no ephemeris path is configured.
const DefaultEphePath = "./ephe"

// fileKindForSlot returns the kind of file holding an internal body slot.
func fileKindForSlot(slot int) int {
	switch {
	case slot == seiMoon:
		return fileKindMoon
	case slot >= seiChiron && slot <= seiVesta:
		return fileKindMainAst
	}
	return fileKindPlanet
}

// fileName returns the name of the planet, Moon or main asteroid file covering tjd.
// Files start at a century divisible by six; dates before year 0 use an "m" prefix,
// e.g. sepl_18.se1 for 1800-2399 and seplm06.se1 for 600-1 BC.
// The calendar year switches to Gregorian in October 1582; the century number of
// any date from 1582 to 1599 is the same in both calendars.
func fileName(kind int, tjd float64) (string, error) {
	var prefix string
	switch kind {
	case fileKindPlanet:
		prefix = "sepl"
	case fileKindMoon:
		prefix = "semo"
	case fileKindMainAst:
		prefix = "seas"
	default:
		return "", fmt.Errorf("%w: no dated file for kind %d", ErrUnsupportedBody, kind)
	}

	year, _, _ := julian.JDToCalendar(tjd)
	icty := year / 100
	if year < 0 && year%100 != 0 {
		icty--
	}
	for icty%nCenturies != 0 {
		icty--
	}
	if icty < 0 {
		return fmt.Sprintf("%sm%02d.se1", prefix, -icty), nil
	}
	return fmt.Sprintf("%s_%02d.se1", prefix, icty), nil
}

// asteroidFileName returns the name of the file of minor planet number n, relative to
// the ephemeris path, and the short variant searched when the long file is missing.
func asteroidFileName(n int) (long, short string) {
	form := "se%05d"
	if n > 99999 {
		form = "s%06d"
	}
	base := fmt.Sprintf(form, n)
	dir := fmt.Sprintf("ast%d", n/1000)
	return filepath.Join(dir, base+".se1"), filepath.Join(dir, base+"s.se1")
}

// splitPath splits a search path at ':' and ';'.
func splitPath(path string) []string {
	if path == "" {
		path = DefaultEphePath
	}
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == ':' || r == ';'
	})
}

// fileSet is the pool of open ephemeris files. Files stay open until close.
type fileSet struct {
	mu    sync.Mutex
	dirs  []string
	files map[string]*File
	cache *segmentCache
	log   *logrus.Entry
}

func newFileSet(path string, cache *segmentCache, log *logrus.Entry) *fileSet {
	if log == nil {
		log = newLogEntry(nil)
	}
	return &fileSet{
		dirs:  splitPath(path),
		files: make(map[string]*File),
		cache: cache,
		log:   log,
	}
}

// open returns the pooled file of the given name, opening it on first use. The
// directories of the search path are tried in order.
func (fs *fileSet) open(name string, kind int) (*File, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if f, ok := fs.files[name]; ok {
		return f, nil
	}
	var lastErr error
	for _, dir := range fs.dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f, err := openFile(path, name, kind, fs.cache, fs.log)
		if err != nil {
			// A damaged file is reported, a missing one is not.
			if !errors.Is(err, ErrFileNotFound) {
				return nil, err
			}
			lastErr = err
			continue
		}
		fs.files[name] = f
		return f, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	fs.log.WithFields(logrus.Fields{"file": name, "path": fs.dirs}).Debug("ephemeris file not found")
	return nil, fmt.Errorf("%w: %s in %s", ErrFileNotFound, name, strings.Join(fs.dirs, ":"))
}

// openAsteroid opens the file of minor planet number n, trying the short variant too.
func (fs *fileSet) openAsteroid(n int) (*File, error) {
	long, short := asteroidFileName(n)
	f, err := fs.open(long, fileKindAnyAst)
	if err == nil || !errors.Is(err, ErrFileNotFound) {
		return f, err
	}
	return fs.open(short, fileKindAnyAst)
}

// close closes every pooled file and returns the first error.
func (fs *fileSet) close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var first error
	for name, f := range fs.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(fs.files, name)
	}
	return first
}
