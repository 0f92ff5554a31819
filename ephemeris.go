// ./ephemeris.go
package sweph

/*
Package sweph provides functions for reading Swiss Ephemeris .se1 files.

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
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

// File is one open Swiss Ephemeris file. All reads go through io.ReaderAt, so a File
// can be shared by concurrent callers; only Close must not race with reads.
type File struct {
	name   string      // file name relative to the search path
	path   string      // full path of the opened file
	kind   int         // fileKindPlanet, fileKindMoon, fileKindMainAst or fileKindAnyAst
	header *Header     // parsed header
	r      io.ReaderAt // the opened file
	closer io.Closer
	cache  *segmentCache // optional cache of decoded segments
	log    *logrus.Entry
}

// OpenFile opens an ephemeris file and parses its header. The file kind (planets,
// Moon, main asteroids or a single asteroid) is derived from the file name.
//
// Parameters:
//   - path: path of the .se1 file.
//
// Returns:
//   - The open file, ready for GetSegment.
//   - ErrFileNotFound if the file cannot be opened.
//   - ErrCorruptData if the header fails a consistency check.
func OpenFile(path string) (*File, error) {
	return openFile(path, filepath.Base(path), fileKindFromName(path), nil, newLogEntry(nil))
}

// openFile opens path and parses its header. name is the name the file was
// requested under and keys the segment cache.
func openFile(path, name string, kind int, cache *segmentCache, log *logrus.Entry) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	st, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	h, err := readHeader(fp, st.Size(), kind)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"file":   path,
		"denum":  h.DENumber,
		"bodies": h.Bodies,
		"start":  h.TFStart,
		"end":    h.TFEnd,
		"order":  h.ByteOrder.String(),
	}).Debug("ephemeris file opened")

	return &File{
		name:   name,
		path:   path,
		kind:   kind,
		header: h,
		r:      fp,
		closer: fp,
		cache:  cache,
		log:    log,
	}, nil
}

// fileKindFromName maps a file name to its kind: sepl* planets, semo* Moon,
// seas* main asteroids and anything else a single numbered asteroid.
func fileKindFromName(path string) int {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasPrefix(base, "sepl"):
		return fileKindPlanet
	case strings.HasPrefix(base, "semo"):
		return fileKindMoon
	case strings.HasPrefix(base, "seas"):
		return fileKindMainAst
	}
	return fileKindAnyAst
}

// Header returns the parsed file header. The returned value must not be modified.
func (f *File) Header() *Header {
	return f.header
}

// Name returns the file name the file was opened under.
func (f *File) Name() string {
	return f.name
}

// Path returns the full path of the file.
func (f *File) Path() string {
	return f.path
}

// Close releases the file handle.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	err := f.closer.Close()
	f.closer = nil
	return err
}

// HasBody reports whether the file contains coefficients for the body number.
func (f *File) HasBody(body int) bool {
	_, ok := f.header.Planets[body]
	return ok
}

// Covers reports whether t lies inside the time range of the file.
func (f *File) Covers(t float64) bool {
	return t >= f.header.TFStart && t <= f.header.TFEnd
}

// GetSegment returns the decoded segment of body covering t. The coefficients are
// rotated back to the J2000 equator and ready for Chebyshev evaluation.
//
// Parameters:
//   - body: body number as stored in the file (see Header.Bodies).
//   - t: Julian Ephemeris Date.
//
// Returns:
//   - The segment; it is shared and must not be modified.
//   - ErrNotAvailable if the body is not in the file.
//   - ErrOutOfRange if t lies outside the time range of the body.
//   - ErrCorruptData if the packed coefficients are inconsistent.
func (f *File) GetSegment(body int, t float64) (*Segment, error) {
	pi, ok := f.header.Planets[body]
	if !ok {
		return nil, fmt.Errorf("%w: body %d not in %s", ErrNotAvailable, body, f.name)
	}
	iseg, err := segmentIndex(pi, t)
	if err != nil {
		return nil, fmt.Errorf("%s body %d: %w", f.name, body, err)
	}
	if seg, ok := f.cache.get(f.name, body, iseg); ok {
		return seg, nil
	}

	seg, err := f.readSegment(pi, iseg)
	if err != nil {
		return nil, fmt.Errorf("%s body %d segment %d: %w", f.name, body, iseg, err)
	}
	if pi.Flags&flgRotate != 0 {
		rotateBack(pi, seg)
	} else {
		seg.NEval = seg.NCoe
	}

	f.log.WithFields(logrus.Fields{
		"file":    f.name,
		"body":    body,
		"segment": iseg,
		"neval":   seg.NEval,
	}).Debug("segment loaded")

	f.cache.put(f.name, seg)
	return seg, nil
}

// segmentIndex returns the number of the segment covering t.
func segmentIndex(pi *PlanetInfo, t float64) (int, error) {
	if t < pi.TFStart || t > pi.TFEnd {
		return 0, fmt.Errorf("%w: jd %.6f not in [%.6f, %.6f]", ErrOutOfRange, t, pi.TFStart, pi.TFEnd)
	}
	iseg := int((t - pi.TFStart) / pi.DSeg)
	// The last instant of the file belongs to the last segment.
	if iseg >= pi.NNdx && pi.NNdx > 0 {
		iseg = pi.NNdx - 1
	}
	return iseg, nil
}

// readSegment reads and unpacks segment iseg of one body. The coefficients are
// returned as stored, relative to the orbital plane if the body is rotated.
func (f *File) readSegment(pi *PlanetInfo, iseg int) (*Segment, error) {
	br := newByteReader(f.r, f.header.ByteOrder, pi.Lndx0+3*int64(iseg))
	fpos, err := br.getUint(3)
	if err != nil {
		return nil, err
	}
	br.seek(int64(fpos))

	seg := &Segment{
		Body:  pi.Body,
		Index: iseg,
		Flags: pi.Flags,
		TSeg0: pi.TFStart + float64(iseg)*pi.DSeg,
		DSeg:  pi.DSeg,
		NCoe:  pi.NCoe,
		Coef:  make([]float64, 3*pi.NCoe),
	}
	seg.TSeg1 = seg.TSeg0 + pi.DSeg

	for icoord := 0; icoord < 3; icoord++ {
		out := seg.Coef[icoord*pi.NCoe : (icoord+1)*pi.NCoe]
		if err := unpackCoordinate(br, out, pi.RMax); err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", icoord, err)
		}
	}
	return seg, nil
}

// unpackCoordinate reads the packed coefficients of one coordinate into out.
//
// The coordinate starts with a size header. If the top bit of the first byte is set,
// four header bytes follow and the last three carry six group sizes (high and low
// nibble each); otherwise the two header bytes carry four group sizes. Groups 0..3
// hold 4-, 3-, 2- and 1-byte integers, group 4 half-byte and group 5 quarter-byte
// integers. The lowest bit of each integer is the sign, the rest is the magnitude in
// units of rmax/2*1e-9. Missing trailing coefficients stay zero.
func unpackCoordinate(br *byteReader, out []float64, rmax float64) error {
	var c [4]byte
	if err := br.read(c[:2]); err != nil {
		return err
	}
	var nsize []int
	if c[0]&128 != 0 {
		if err := br.read(c[2:4]); err != nil {
			return err
		}
		nsize = []int{
			int(c[1] / 16), int(c[1] % 16),
			int(c[2] / 16), int(c[2] % 16),
			int(c[3] / 16), int(c[3] % 16),
		}
	} else {
		nsize = []int{
			int(c[0] / 16), int(c[0] % 16),
			int(c[1] / 16), int(c[1] % 16),
		}
	}
	nco := 0
	for _, n := range nsize {
		nco += n
	}
	if nco > len(out) {
		return fmt.Errorf("%w: %d packed coefficients, at most %d allowed", ErrCorruptData, nco, len(out))
	}

	idbl := 0
	for i, n := range nsize {
		if n == 0 {
			continue
		}
		var err error
		switch i {
		case 0, 1, 2, 3:
			idbl, err = unpackWords(br, out, idbl, n, 4-i, rmax)
		case 4:
			idbl, err = unpackSubBytes(br, out, idbl, n, 2, 16, 16, rmax)
		case 5:
			idbl, err = unpackSubBytes(br, out, idbl, n, 4, 64, 4, rmax)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// unpackWords reads n integers of size bytes each.
func unpackWords(br *byteReader, out []float64, idbl, n, size int, rmax float64) (int, error) {
	for m := 0; m < n; m++ {
		l, err := br.getUint(size)
		if err != nil {
			return idbl, err
		}
		if l&1 != 0 {
			out[idbl] = -(float64((l+1)/2) / 1e+9 * rmax / 2)
		} else {
			out[idbl] = float64(l/2) / 1e+9 * rmax / 2
		}
		idbl++
	}
	return idbl, nil
}

// unpackSubBytes reads n integers packed perByte to a byte. o0 is the weight of the
// first value in a byte and div the ratio between consecutive weights.
func unpackSubBytes(br *byteReader, out []float64, idbl, n, perByte int, o0, div uint32, rmax float64) (int, error) {
	k := (n + perByte - 1) / perByte
	buf := make([]byte, k)
	if err := br.read(buf); err != nil {
		return idbl, err
	}
	j := 0
	for m := 0; m < k && j < n; m++ {
		l := uint32(buf[m])
		for p, o := 0, o0; p < perByte && j < n; p, j, idbl, o = p+1, j+1, idbl+1, o/div {
			if l&o != 0 {
				out[idbl] = -(float64((l+o)/o/2) * rmax / 2 / 1e+9)
			} else {
				out[idbl] = float64(l/o/2) * rmax / 2 / 1e+9
			}
			l %= o
		}
	}
	return idbl, nil
}

// readHeader parses the text and binary header of an ephemeris file of the given size.
func readHeader(r io.ReaderAt, size int64, kind int) (*Header, error) {
	h := &Header{Planets: make(map[int]*PlanetInfo)}
	br := newByteReader(r, binary.LittleEndian, 0)

	line, err := br.getLine()
	if err != nil {
		return nil, err
	}
	h.Version = firstInt(line)
	if line, err = br.getLine(); err != nil {
		return nil, err
	}
	h.FileName = strings.TrimSpace(line)
	if line, err = br.getLine(); err != nil {
		return nil, err
	}
	h.Copyright = strings.TrimSpace(line)
	if kind == fileKindAnyAst {
		// Orbital elements of the asteroid, not needed here.
		if _, err = br.getLine(); err != nil {
			return nil, err
		}
	}

	var sentinel [4]byte
	if err := br.read(sentinel[:]); err != nil {
		return nil, err
	}
	if br.order, err = detectByteOrder(sentinel[:]); err != nil {
		return nil, err
	}
	h.ByteOrder = br.order

	length, err := br.getInt32()
	if err != nil {
		return nil, err
	}
	h.Length = int64(length)
	if h.Length != size {
		return nil, fmt.Errorf("%w: header file length %d, actual %d", ErrCorruptData, h.Length, size)
	}
	denum, err := br.getInt32()
	if err != nil {
		return nil, err
	}
	h.DENumber = int(denum)
	if h.TFStart, err = br.getFloat64(); err != nil {
		return nil, err
	}
	if h.TFEnd, err = br.getFloat64(); err != nil {
		return nil, err
	}

	nplan16, err := br.getInt16()
	if err != nil {
		return nil, err
	}
	nplan := int(nplan16)
	bodySize := 2
	if nplan > 256 {
		bodySize = 4
		nplan %= 256
	}
	if nplan < 1 || nplan > 20 {
		return nil, fmt.Errorf("%w: %d bodies in file", ErrCorruptData, nplan)
	}
	h.Bodies = make([]int, nplan)
	for i := range h.Bodies {
		v, err := br.getUint(bodySize)
		if err != nil {
			return nil, err
		}
		h.Bodies[i] = int(int32(v))
	}
	if kind == fileKindAnyAst {
		name := make([]byte, 30)
		if err := br.read(name); err != nil {
			return nil, err
		}
		h.AsteroidName = strings.TrimRight(string(name), "\x00 ")
	}

	// Header CRC, not verified.
	if _, err := br.getUint(4); err != nil {
		return nil, err
	}

	consts, err := br.getFloat64s(5)
	if err != nil {
		return nil, err
	}
	h.CLight, h.AUnit, h.HelGravConst, h.RatME, h.SunRadius = consts[0], consts[1], consts[2], consts[3], consts[4]

	for _, body := range h.Bodies {
		pi, err := readPlanetInfo(br, body)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", body, err)
		}
		h.Planets[body] = pi
	}
	return h, nil
}

// readPlanetInfo reads the constants of one body.
func readPlanetInfo(br *byteReader, body int) (*PlanetInfo, error) {
	lndx0, err := br.getInt32()
	if err != nil {
		return nil, err
	}
	flags, err := br.getUint8()
	if err != nil {
		return nil, err
	}
	ncoe, err := br.getUint8()
	if err != nil {
		return nil, err
	}
	rmax, err := br.getInt32()
	if err != nil {
		return nil, err
	}
	v, err := br.getFloat64s(10)
	if err != nil {
		return nil, err
	}

	pi := &PlanetInfo{
		Body:    body,
		Lndx0:   int64(lndx0),
		Flags:   flags,
		NCoe:    int(ncoe),
		RMax:    float64(rmax) / 1000.0,
		TFStart: v[0],
		TFEnd:   v[1],
		DSeg:    v[2],
		TElem:   v[3],
		Prot:    v[4],
		DProt:   v[5],
		Qrot:    v[6],
		DQrot:   v[7],
		Peri:    v[8],
		DPeri:   v[9],
	}
	if pi.NCoe < 1 || pi.NCoe > maxOrder+1 {
		return nil, fmt.Errorf("%w: %d coefficients per coordinate", ErrCorruptData, pi.NCoe)
	}
	if !(pi.DSeg > 0) || pi.TFEnd < pi.TFStart {
		return nil, fmt.Errorf("%w: segment length %g for range [%g, %g]", ErrCorruptData, pi.DSeg, pi.TFStart, pi.TFEnd)
	}
	pi.NNdx = int((pi.TFEnd - pi.TFStart + 0.1) / pi.DSeg)

	if pi.Flags&flgEllipse != 0 {
		if pi.RefEp, err = br.getFloat64s(2 * pi.NCoe); err != nil {
			return nil, err
		}
	}
	return pi, nil
}

// firstInt returns the first decimal integer found in s, or 0.
func firstInt(s string) int {
	n, found := 0, false
	for _, r := range s {
		if unicode.IsDigit(r) {
			n = n*10 + int(r-'0')
			found = true
		} else if found {
			break
		}
	}
	return n
}
