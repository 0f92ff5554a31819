// ./binary_reader.go
package sweph

/*
Package sweph provides helper functions for reading binary data.

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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// fileTestEndian is the sentinel written after the text header of every .se1 file.
// Reading it back in the right byte order yields 0x616263 ("abc" or "cba").
const fileTestEndian = 0x616263

// maxHeaderLine bounds the text lines at the top of a file.
const maxHeaderLine = 512

// byteReader reads fixed-width numbers from an ephemeris file using the byte order
// detected from the header sentinel. It keeps its own cursor, so one byteReader
// must not be shared between goroutines; the underlying io.ReaderAt may be.
type byteReader struct {
	r     io.ReaderAt
	order binary.ByteOrder
	pos   int64
	buf   [8]byte
}

// newByteReader creates a reader positioned at offset pos.
func newByteReader(r io.ReaderAt, order binary.ByteOrder, pos int64) *byteReader {
	return &byteReader{r: r, order: order, pos: pos}
}

// seek moves the cursor to an absolute file offset.
func (br *byteReader) seek(pos int64) {
	br.pos = pos
}

// read fills b from the current position and advances the cursor.
func (br *byteReader) read(b []byte) error {
	n, err := br.r.ReadAt(b, br.pos)
	br.pos += int64(n)
	if n == len(b) {
		return nil
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: reading %d bytes at offset %d: %v", ErrCorruptData, len(b), br.pos-int64(n), err)
}

// getUint reads an unsigned integer that occupies size bytes (1 to 4) in the file.
// Three-byte quantities are used for the segment index and for packed coefficients.
func (br *byteReader) getUint(size int) (uint32, error) {
	b := br.buf[:size]
	if err := br.read(b); err != nil {
		return 0, err
	}
	return uintFromBytes(b, br.order), nil
}

// getUint8 reads a single byte.
func (br *byteReader) getUint8() (uint8, error) {
	if err := br.read(br.buf[:1]); err != nil {
		return 0, err
	}
	return br.buf[0], nil
}

// getInt16 reads an int16 value in the file byte order.
func (br *byteReader) getInt16() (int16, error) {
	v, err := br.getUint(2)
	return int16(uint16(v)), err
}

// getInt32 reads an int32 value in the file byte order.
func (br *byteReader) getInt32() (int32, error) {
	v, err := br.getUint(4)
	return int32(v), err
}

// getFloat64 reads a float64 (double-precision) value in the file byte order.
func (br *byteReader) getFloat64() (float64, error) {
	if err := br.read(br.buf[:8]); err != nil {
		return 0, err
	}
	return float64FromBytes(br.buf[:8], br.order), nil
}

// getFloat64s reads n consecutive float64 values.
func (br *byteReader) getFloat64s(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := br.getFloat64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// getLine reads one text line terminated by "\r\n" and returns it without the terminator.
func (br *byteReader) getLine() (string, error) {
	buf := make([]byte, maxHeaderLine)
	n, err := br.r.ReadAt(buf, br.pos)
	if n == 0 {
		return "", fmt.Errorf("%w: missing header line at offset %d: %v", ErrCorruptData, br.pos, err)
	}
	i := bytes.Index(buf[:n], []byte("\r\n"))
	if i < 0 {
		return "", fmt.Errorf("%w: header line at offset %d not terminated", ErrCorruptData, br.pos)
	}
	br.pos += int64(i + 2)
	return string(buf[:i]), nil
}

// detectByteOrder inspects the four sentinel bytes and returns the file byte order.
func detectByteOrder(b []byte) (binary.ByteOrder, error) {
	switch {
	case binary.LittleEndian.Uint32(b) == fileTestEndian:
		return binary.LittleEndian, nil
	case binary.BigEndian.Uint32(b) == fileTestEndian:
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("%w: bad byte order sentinel % x", ErrCorruptData, b)
}

// uintFromBytes assembles an unsigned integer from 1 to 4 bytes. Short quantities
// are stored in the low-order bytes, so the byte order decides where they start.
func uintFromBytes(b []byte, order binary.ByteOrder) uint32 {
	var v uint32
	if order == binary.BigEndian {
		for _, c := range b {
			v = v<<8 | uint32(c)
		}
		return v
	}
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}
	return v
}

// float64FromBytes converts a byte slice to a float64 value using the given byte order.
func float64FromBytes(b []byte, order binary.ByteOrder) float64 {
	return math.Float64frombits(order.Uint64(b))
}
