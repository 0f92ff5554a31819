// ./cmd/swetest/main.go
package main

/*
Command swetest prints the positions of the Sun, the Moon and the planets for one date.

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
	"strconv"
	"time"

	"github.com/mshafiee/sweph"
	"github.com/soniakeys/meeus/v3/julian"
)

// printPolar is a helper function to format and print a polar result.
func printPolar(label string, v [6]float64) {
	fmt.Printf("  %-28s %14.7f %14.7f %14.9f %12.7f\n", label, v[0], v[1], v[2], v[3])
}

// printXYZ is a helper function to format and print a cartesian result.
func printXYZ(label string, v [6]float64) {
	fmt.Printf("  %-28s [%15.9f, %15.9f, %15.9f]\n", label, v[0], v[1], v[2])
}

// parseDate accepts a Julian day or a date in the form 2006-01-02 or RFC 3339.
func parseDate(s string) (float64, error) {
	if jd, err := strconv.ParseFloat(s, 64); err == nil {
		return jd, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return julian.TimeToJD(t), nil
		}
	}
	return 0, fmt.Errorf("cannot parse date %q", s)
}

// testBody prints the apparent and the heliocentric position of one body.
func testBody(eph *sweph.Ephemeris, tjd float64, body sweph.Body, name string) {
	fmt.Printf("\n%s:\n", name)

	res, err := eph.ComputePosition(body, tjd, sweph.FlagSwiEph|sweph.FlagSpeed)
	if err != nil {
		fmt.Printf("  Error calculating apparent position: %v\n", err)
		return
	}
	printPolar("Apparent ecliptic (deg, AU)", res.EclipticPolar)
	printPolar("Apparent equatorial", res.EquatorialPolar)
	fmt.Printf("  %-28s %14.9f days\n", "Light-time", res.LightTime)

	if body != sweph.Sun && body != sweph.Moon {
		helio, err := eph.ComputePosition(body, tjd, sweph.FlagHelCtr|sweph.FlagSpeed|sweph.FlagJ2000)
		if err == nil {
			printPolar("Heliocentric J2000", helio.EclipticPolar)
		} else {
			fmt.Printf("  Error calculating heliocentric position: %v\n", err)
		}
	}

	raw, err := eph.RawState(body, tjd, sweph.FlagSwiEph)
	if err == nil {
		printXYZ("Barycentric J2000 (AU)", raw.X)
	}
}

// testEarthMoonSystem prints the geometric distance of the Moon.
func testEarthMoonSystem(eph *sweph.Ephemeris, tjd float64) {
	fmt.Printf("\n=== Earth-Moon System ===\n")
	res, err := eph.ComputePosition(sweph.Moon, tjd, sweph.FlagTruePos|sweph.FlagJ2000|sweph.FlagXYZ)
	if err != nil {
		fmt.Printf("  Error calculating the Moon: %v\n", err)
		return
	}
	d := res.EclipticPolar[2]
	fmt.Printf("Earth-Moon Distance: %.7f AU (%.3f km)\n", d, d*sweph.AUnit/1000)
}

// main is the entry point of the swetest program.
func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s <jd|date> [ephemeris_path]\n", os.Args[0])
		os.Exit(1)
	}
	tjd, err := parseDate(os.Args[1])
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	cfg, err := sweph.LoadConfig("")
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}
	if len(os.Args) > 2 {
		cfg.EphePath = os.Args[2]
	}
	eph, err := sweph.NewEphemeris(cfg)
	if err != nil {
		fmt.Printf("Failed to create ephemeris: %v\n", err)
		os.Exit(1)
	}
	defer eph.Close()

	fmt.Printf("Positions at JD %.6f TT\n", tjd)
	fmt.Printf("Pipeline: %v\n", eph.Stages())

	bodies := []struct {
		Body sweph.Body
		Name string
	}{
		{sweph.Sun, "Sun"}, {sweph.Moon, "Moon"}, {sweph.Mercury, "Mercury"},
		{sweph.Venus, "Venus"}, {sweph.Mars, "Mars"}, {sweph.Jupiter, "Jupiter"},
		{sweph.Saturn, "Saturn"}, {sweph.Uranus, "Uranus"}, {sweph.Neptune, "Neptune"},
		{sweph.Pluto, "Pluto"}, {sweph.Chiron, "Chiron"}, {sweph.Ceres, "Ceres"},
		{sweph.Pallas, "Pallas"}, {sweph.Juno, "Juno"}, {sweph.Vesta, "Vesta"},
	}
	for _, b := range bodies {
		testBody(eph, tjd, b.Body, b.Name)
	}

	testEarthMoonSystem(eph, tjd)

	if err := printNodes(eph, tjd, sweph.Jupiter, "Jupiter"); err != nil {
		fmt.Println("Error:", err)
	}

	if err := printTopocentric(eph, tjd); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println("Program finished successfully.")
}

// printTopocentric prints the topocentric Moon when an observer is configured.
func printTopocentric(eph *sweph.Ephemeris, tjd float64) error {
	res, err := eph.ComputePosition(sweph.Moon, tjd, sweph.FlagTopoCtr|sweph.FlagEquatorial)
	if errors.Is(err, sweph.ErrConflictingFlags) {
		fmt.Println("\nNo observer configured, topocentric positions skipped.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("topocentric Moon: %w", err)
	}
	fmt.Println("\n=== Topocentric ===")
	printPolar("Moon topocentric equatorial", res.Values)
	return nil
}

// printNodes prints the apparent osculating nodes and apsides of one body.
func printNodes(eph *sweph.Ephemeris, tjd float64, body sweph.Body, name string) error {
	res, err := eph.OsculatingNodes(body, tjd, sweph.FlagSwiEph|sweph.FlagSpeed, sweph.NodeOptions{})
	if err != nil {
		return fmt.Errorf("%s nodes: %w", name, err)
	}
	fmt.Printf("\n=== %s osculating nodes ===\n", name)
	printPolar("Ascending node", res.Ascending.Values)
	printPolar("Descending node", res.Descending.Values)
	printPolar("Perihelion", res.Perihelion.Values)
	printPolar("Aphelion", res.Aphelion.Values)
	return nil
}
