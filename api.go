// ./api.go

/*
Package sweph provides precise positions of the Sun, the Moon, the planets and the
asteroids from Swiss Ephemeris .se1 files.

It decodes the compressed Chebyshev coefficients of the files, rotates them back
from the orbital plane of each body to the J2000 equator and evaluates them. The
resulting barycentric vectors then pass through the reductions of apparent
positions: light-time, gravitational deflection, annual aberration, frame bias,
precession and nutation.

Key Features:
  - Reading of planet (sepl), Moon (semo), main asteroid (seas) and numbered
    asteroid files in either byte order.
  - Geocentric, topocentric, heliocentric and barycentric positions.
  - Ecliptic or equatorial, polar or cartesian output, with speeds.
  - Exchangeable nutation, precession, obliquity and frame bias models.
  - A cache of decoded segments shared by concurrent callers.
  - An optional VSOP87 fallback for dates not covered by the planet files.

Usage:
To use this package, you need the ephemeris files (e.g., sepl_18.se1 and
semo_18.se1 for the years 1800 to 2399).

 1. Create an Ephemeris:
    ```go
    eph, err := sweph.NewEphemeris(sweph.Config{EphePath: "/usr/share/ephe"})
    if err != nil {
        log.Fatal(err)
    }
    defer eph.Close()
    ```

 2. Compute a position:
    ```go
    tjd := 2451545.0 // Julian day in TT
    res, err := eph.ComputePosition(sweph.Mars, tjd, sweph.FlagSwiEph|sweph.FlagSpeed)
    if err != nil {
        log.Fatal(err)
    }
    fmt.Printf("Mars: longitude %f, latitude %f, distance %f AU\n",
        res.Values[0], res.Values[1], res.Values[2])
    fmt.Printf("speed in longitude %f deg/day\n", res.Values[3])
    ```

 3. Load the configuration from a file or the environment:
    ```go
    cfg, err := sweph.LoadConfig("") // reads $SWEPH_CONFIG/sweph.toml
    if err != nil {
        log.Fatal(err)
    }
    eph, err := sweph.NewEphemeris(cfg)
    ```

License:
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

// Package sweph provides precise positions of solar system bodies from Swiss Ephemeris files.
package sweph

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// PositionResult is the outcome of ComputePosition.
type PositionResult struct {
	// Values holds the coordinates selected by the flags: longitude, latitude and
	// distance (or x, y, z) followed by their speeds. Speeds are zero unless
	// FlagSpeed is set.
	Values [6]float64
	// Flags are the flags actually applied, including the implied ones.
	Flags Flag

	EclipticPolar   [6]float64
	EclipticXYZ     [6]float64
	EquatorialPolar [6]float64
	EquatorialXYZ   [6]float64

	// LightTime is the light-time in days, zero for FlagTruePos.
	LightTime float64
	// DENumber is the JPL ephemeris the planet file was built from, zero when the
	// position came from the fallback provider.
	DENumber int
}

// Ephemeris computes positions from a set of ephemeris files. It is safe for
// concurrent use.
type Ephemeris struct {
	files    *fileSet
	cache    *segmentCache
	models   *modelSet
	resolver *PositionResolver
	pipeline *TransformPipeline
	observer *GeoPosition
	log      *logrus.Entry
}

// NewEphemeris creates an Ephemeris from cfg. Files are opened on first use.
//
// Parameters:
//   - cfg: the configuration; see LoadConfig for reading it from a file.
//
// Returns:
//   - The ephemeris, to be released with Close.
//   - An error if the segment cache cannot be created.
func NewEphemeris(cfg Config) (*Ephemeris, error) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	log := newLogEntry(cfg.Logger)

	cache, err := newSegmentCache(cfg.MaxSegments, log)
	if err != nil {
		return nil, err
	}
	files := newFileSet(cfg.EphePath, cache, log)

	log.WithFields(logrus.Fields{
		"path":     files.dirs,
		"fallback": cfg.Fallback != nil,
		"observer": cfg.Observer != nil,
	}).Debug("ephemeris created")

	return &Ephemeris{
		files:    files,
		cache:    cache,
		models:   newModelSet(cfg),
		resolver: newPositionResolver(files, cfg.Fallback, log),
		pipeline: NewTransformPipeline(),
		observer: cfg.Observer,
		log:      log,
	}, nil
}

// Close closes all open files and releases the cache.
func (e *Ephemeris) Close() error {
	err := e.files.close()
	e.cache.close()
	return err
}

// Stages returns the names of the pipeline stages in the order they run.
func (e *Ephemeris) Stages() []string {
	return e.pipeline.Stages()
}

// ComputePosition computes the position of body at the Julian day tjdTT (TT).
//
// Parameters:
//   - body: the body, e.g. Mars, Chiron or AsteroidOffset+433.
//   - tjdTT: Julian day in Terrestrial Time.
//   - flags: a combination of the Flag constants.
//
// Returns:
//   - The position in the coordinates selected by flags, and all four variants.
//   - ErrConflictingFlags for contradicting flags.
//   - ErrUnsupportedBody for an unknown body.
//   - ErrFileNotFound or ErrOutOfRange if no file covers the date.
func (e *Ephemeris) ComputePosition(body Body, tjdTT float64, flags Flag) (PositionResult, error) {
	flags, err := e.normalizeFlags(flags)
	if err != nil {
		return PositionResult{}, err
	}
	if !validBody(body) {
		return PositionResult{}, fmt.Errorf("%w: %d", ErrUnsupportedBody, int(body))
	}

	ctx := newEphemerisContext(body, tjdTT, flags, e.models, e.resolver, e.observer)
	if err := ctx.prepare(); err != nil {
		return PositionResult{}, err
	}
	target, err := e.resolver.Resolve(ctx, body)
	if err != nil {
		return PositionResult{}, err
	}
	st := newTransformState(target)
	if err := e.pipeline.Run(st, ctx); err != nil {
		return PositionResult{}, err
	}

	return newPositionResult(st, flags, ctx.DENumber), nil
}

// newPositionResult collects the snapshots of st and selects Values by flags.
func newPositionResult(st *TransformState, flags Flag, denum int) PositionResult {
	res := PositionResult{
		Flags:           flags,
		EclipticPolar:   st.EclipticPolar,
		EclipticXYZ:     st.Ecliptic,
		EquatorialPolar: st.EquatorialPolar,
		EquatorialXYZ:   st.Equatorial,
		LightTime:       st.LightTime,
		DENumber:        denum,
	}
	switch {
	case flags.Has(FlagEquatorial) && flags.Has(FlagXYZ):
		res.Values = res.EquatorialXYZ
	case flags.Has(FlagEquatorial):
		res.Values = res.EquatorialPolar
	case flags.Has(FlagXYZ):
		res.Values = res.EclipticXYZ
	default:
		res.Values = res.EclipticPolar
	}
	return res
}

// RawState returns the geometric barycentric state of body at tjdTT, referred to
// the J2000 equator (the ICRS for DE403 and later), without any correction.
func (e *Ephemeris) RawState(body Body, tjdTT float64, flags Flag) (StateVector, error) {
	flags, err := e.normalizeFlags(flags)
	if err != nil {
		return StateVector{}, err
	}
	if !validBody(body) {
		return StateVector{}, fmt.Errorf("%w: %d", ErrUnsupportedBody, int(body))
	}
	ctx := newEphemerisContext(body, tjdTT, flags, e.models, e.resolver, e.observer)
	return e.resolver.Resolve(ctx, body)
}

// normalizeFlags rejects contradicting flags and adds the implied ones: no light
// corrections for true, heliocentric and barycentric positions and no nutation for
// J2000 positions.
func (e *Ephemeris) normalizeFlags(flags Flag) (Flag, error) {
	if flags&(FlagJPLEph|FlagMosEph) != 0 {
		return flags, fmt.Errorf("%w: only Swiss Ephemeris files are served", ErrConflictingFlags)
	}
	flags |= FlagSwiEph

	centers := 0
	for _, c := range []Flag{FlagHelCtr, FlagBaryCtr, FlagTopoCtr} {
		if flags.Has(c) {
			centers++
		}
	}
	if centers > 1 {
		return flags, fmt.Errorf("%w: more than one center requested", ErrConflictingFlags)
	}
	if flags.Has(FlagTopoCtr) && e.observer == nil {
		return flags, fmt.Errorf("%w: topocentric position without observer", ErrConflictingFlags)
	}

	if flags.Has(FlagHelCtr) || flags.Has(FlagBaryCtr) || flags.Has(FlagTruePos) {
		flags |= FlagNoAberr | FlagNoGDefl
	}
	if flags.Has(FlagJ2000) {
		flags |= FlagNoNut
	}
	return flags, nil
}

// validBody reports whether body has a place in the ephemeris files.
func validBody(body Body) bool {
	switch {
	case body >= Sun && body <= Pluto:
		return true
	case body == Earth:
		return true
	case body >= Chiron && body <= Vesta:
		return true
	case body > AsteroidOffset:
		return true
	}
	return false
}
