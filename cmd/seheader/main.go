// ./cmd/seheader/main.go
package main

/*
Command seheader prints the header and the per-body constants of a Swiss Ephemeris file.

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
	"os"
	"sort"

	"github.com/mshafiee/sweph"
)

// flagNames spells the per-body flags of the file header.
func flagNames(f uint8) string {
	s := ""
	for _, n := range []struct {
		bit  uint8
		name string
	}{{1, "helio"}, {2, "rotate"}, {4, "ellipse"}, {8, "embhel"}} {
		if f&n.bit != 0 {
			if s != "" {
				s += ","
			}
			s += n.name
		}
	}
	if s == "" {
		return "-"
	}
	return s
}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s <file.se1>\n", os.Args[0])
		os.Exit(1)
	}
	f, err := sweph.OpenFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(-1)
	}
	defer f.Close()

	h := f.Header()
	fmt.Printf("Data from %s\n", f.Path())
	fmt.Printf("Version:      %d\n", h.Version)
	fmt.Printf("File name:    %s\n", h.FileName)
	fmt.Printf("Copyright:    %s\n", h.Copyright)
	if h.AsteroidName != "" {
		fmt.Printf("Asteroid:     %s\n", h.AsteroidName)
	}
	fmt.Printf("Byte order:   %s\n", h.ByteOrder)
	fmt.Printf("Length:       %d bytes\n", h.Length)
	fmt.Printf("DE number:    %d\n", h.DENumber)
	fmt.Printf("Time range:   %.1f to %.1f JD\n", h.TFStart, h.TFEnd)
	fmt.Printf("c, AU:        %.3f m/s, %.3f m\n", h.CLight, h.AUnit)
	fmt.Printf("GM(sun):      %.6e m³/s²\n", h.HelGravConst)
	fmt.Printf("Earth/Moon:   %.8f\n", h.RatME)
	fmt.Printf("Sun radius:   %.6e AU\n", h.SunRadius)

	bodies := append([]int(nil), h.Bodies...)
	sort.Ints(bodies)
	fmt.Printf("\n%6s %-20s %4s %12s %14s %14s %10s %6s\n",
		"Body", "Flags", "ncoe", "rmax", "start", "end", "dseg", "nndx")
	for _, b := range bodies {
		pi := h.Planets[b]
		fmt.Printf("%6d %-20s %4d %12.6f %14.2f %14.2f %10.2f %6d\n",
			b, flagNames(pi.Flags), pi.NCoe, pi.RMax, pi.TFStart, pi.TFEnd, pi.DSeg, pi.NNdx)
	}

	// first segment of every body, as a check of the coefficient layout
	fmt.Printf("\n%6s %8s %22s %22s %22s\n", "Body", "neval", "x", "y", "z")
	for _, b := range bodies {
		pi := h.Planets[b]
		seg, err := f.GetSegment(b, pi.TFStart)
		if err != nil {
			fmt.Printf("%6d error: %v\n", b, err)
			continue
		}
		var x [3]float64
		for i := range x {
			x[i] = sweph.Evaluate(-1, seg.Coef[i*seg.NCoe:i*seg.NCoe+seg.NEval])
		}
		fmt.Printf("%6d %8d %22.15e %22.15e %22.15e\n", b, seg.NEval, x[0], x[1], x[2])
	}
}
