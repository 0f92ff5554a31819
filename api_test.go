// ./api_test.go
package sweph

/*
Package sweph provides end-to-end tests of ComputePosition on synthetic ephemeris files.

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
	"io"
	"math"
	"sync"
	"testing"

	"github.com/mshafiee/sweph/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Time range of the synthetic files: 8 segments of 16 days.
const (
	fixtureEpoch  = 2451545.0
	fixtureStart  = 2451500.5
	fixtureSegLen = 16.0
	fixtureSegs   = 8
)

// linearBody moves uniformly: x(t) = x0 + v*(t - fixtureEpoch).
type linearBody struct {
	body  int
	flags uint8
	rmax  float64
	x0, v [3]float64
}

func (b linearBody) at(t float64) [6]float64 {
	var x [6]float64
	for i := 0; i < 3; i++ {
		x[i] = b.x0[i] + b.v[i]*(t-fixtureEpoch)
		x[i+3] = b.v[i]
	}
	return x
}

func (b linearBody) fixture() fixtureBody {
	return fixtureBody{
		Body:     b.body,
		Flags:    b.flags,
		RMax:     b.rmax,
		TFStart:  fixtureStart,
		DSeg:     fixtureSegLen,
		NCoe:     2,
		Segments: linearSegments(b.x0, b.v, fixtureEpoch, fixtureStart, fixtureSegLen, fixtureSegs, b.rmax),
	}
}

var (
	fxSun     = linearBody{seiSunBary, 0, 4, [3]float64{0.005, -0.003, 0.001}, [3]float64{1e-6, 2e-6, -5e-7}}
	fxEMB     = linearBody{seiEMB, 0, 4, [3]float64{-0.18, 0.89, 0.39}, [3]float64{-0.0172, -0.0031, -0.0013}}
	fxMars    = linearBody{int(Mars), flgHelio, 4, [3]float64{1.39, -0.01, -0.04}, [3]float64{0.0007, 0.0138, 0.0063}}
	fxJupiter = linearBody{int(Jupiter), 0, 10, [3]float64{4.0, 2.7, 1.07}, [3]float64{-0.0045, 0.0059, 0.0026}}
	fxMoon    = linearBody{seiMoon, 0, 4, [3]float64{-0.0019, -0.0017, -0.0006}, [3]float64{0.00037, -0.0004, -0.00018}}
	fxChiron  = linearBody{seiChiron, flgHelio, 30, [3]float64{13.0, -5.0, -2.0}, [3]float64{0.001, 0.002, 0.0008}}
	fxEros    = linearBody{int(AsteroidOffset) + 433, flgHelio, 4, [3]float64{1.1, 0.6, 0.2}, [3]float64{-0.006, 0.012, 0.004}}
)

// Expected barycentric states of the synthetic solar system.
func fxEarthAt(t float64) [6]float64 {
	emb, moon := fxEMB.at(t), fxMoon.at(t)
	f := 1 / (EarthMoonMRat + 1)
	for i := range emb {
		emb[i] -= moon[i] * f
	}
	return emb
}

func fxMarsAt(t float64) [6]float64 {
	return addState(fxMars.at(t), fxSun.at(t))
}

// writeSystemFixtures writes planet, Moon, main asteroid and Eros files into a
// temporary directory and returns it.
func writeSystemFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, fixtureFile{
		Name:     "sepl_18.se1",
		DENumber: 431,
		Bodies:   []fixtureBody{fxEMB.fixture(), fxMars.fixture(), fxJupiter.fixture(), fxSun.fixture()},
	})
	writeFixture(t, dir, fixtureFile{
		Name:     "semo_18.se1",
		DENumber: 431,
		Bodies:   []fixtureBody{fxMoon.fixture()},
	})
	writeFixture(t, dir, fixtureFile{
		Name:     "seas_18.se1",
		DENumber: 431,
		Bodies:   []fixtureBody{fxChiron.fixture()},
	})
	name, _ := asteroidFileName(433)
	writeFixture(t, dir, fixtureFile{
		Name:     name,
		DENumber: 431,
		Asteroid: "433 Eros",
		Bodies:   []fixtureBody{fxEros.fixture()},
	})
	return dir
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestEphemeris(t *testing.T, cfg Config) *Ephemeris {
	t.Helper()
	if cfg.EphePath == "" {
		cfg.EphePath = writeSystemFixtures(t)
	}
	if cfg.DeltaT == nil {
		cfg.DeltaT = FixedDeltaT(64)
	}
	cfg.Logger = quietLogger()
	e, err := NewEphemeris(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

// Geometric J2000 equatorial cartesian output with speed.
const rawFlags = FlagTruePos | FlagJ2000 | FlagICRS | FlagEquatorial | FlagXYZ | FlagSpeed

func TestRawState(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	for _, tjd := range []float64{fixtureEpoch, 2451510.25, 2451620} {
		tests := []struct {
			body Body
			want [6]float64
			tol  float64
		}{
			{Sun, fxSun.at(tjd), 1e-8},
			{Mars, fxMarsAt(tjd), 1e-8},
			{Jupiter, fxJupiter.at(tjd), 2e-8},
			{Earth, fxEarthAt(tjd), 1e-8},
			{Moon, addState(fxMoon.at(tjd), fxEarthAt(tjd)), 1e-8},
			{Chiron, addState(fxChiron.at(tjd), fxSun.at(tjd)), 5e-8},
			{AsteroidOffset + 433, addState(fxEros.at(tjd), fxSun.at(tjd)), 1e-8},
		}
		for _, tt := range tests {
			s, err := e.RawState(tt.body, tjd, 0)
			require.NoError(t, err, "body %d", tt.body)
			assert.InDeltaSlice(t, tt.want[:], s.X[:], tt.tol, "body %d at %v", tt.body, tjd)
			assert.Equal(t, CenterBarycentric, s.Center)
			assert.Equal(t, FrameEquatorial, s.Frame)
			assert.Equal(t, EpochJ2000, s.Epoch)
		}
	}
}

func TestBarycentricGeometricIsRaw(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	for _, body := range []Body{Sun, Moon, Mars, Jupiter, Earth, Chiron} {
		raw, err := e.RawState(body, fixtureEpoch, 0)
		require.NoError(t, err)
		res, err := e.ComputePosition(body, fixtureEpoch, rawFlags|FlagBaryCtr)
		require.NoError(t, err)
		assert.Equal(t, raw.X, res.Values, "body %d", body)
		assert.Equal(t, 431, res.DENumber)
		assert.Zero(t, res.LightTime)
		assert.True(t, res.Flags.Has(FlagNoAberr|FlagNoGDefl|FlagNoNut|FlagSwiEph))
	}
}

func TestHeliocentricSunIsZero(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	for _, flags := range []Flag{FlagHelCtr, FlagHelCtr | FlagXYZ | FlagSpeed, FlagHelCtr | FlagTruePos | FlagEquatorial} {
		res, err := e.ComputePosition(Sun, fixtureEpoch, flags)
		require.NoError(t, err)
		assert.InDeltaSlice(t, make([]float64, 6), res.Values[:], 1e-15, "flags %d", flags)
	}

	// heliocentric Mars is what the file stores
	res, err := e.ComputePosition(Mars, fixtureEpoch, rawFlags|FlagHelCtr)
	require.NoError(t, err)
	want := fxMars.at(fixtureEpoch)
	assert.InDeltaSlice(t, want[:], res.Values[:], 1e-8)
}

func TestGeocentricTruePosition(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	res, err := e.ComputePosition(Mars, fixtureEpoch, rawFlags)
	require.NoError(t, err)
	mars, earth := fxMarsAt(fixtureEpoch), fxEarthAt(fixtureEpoch)
	for i := range mars {
		assert.InDelta(t, mars[i]-earth[i], res.Values[i], 2e-8, "component %d", i)
	}

	res, err = e.ComputePosition(Earth, fixtureEpoch, 0)
	require.NoError(t, err)
	assert.Equal(t, [6]float64{}, res.Values)

	res, err = e.ComputePosition(Moon, fixtureEpoch, rawFlags)
	require.NoError(t, err)
	moon := fxMoon.at(fixtureEpoch)
	assert.InDeltaSlice(t, moon[:], res.Values[:], 1e-8)
}

func TestLightTimeCorrection(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	const flags = FlagAstrometric | FlagJ2000 | FlagICRS | FlagEquatorial | FlagXYZ
	res, err := e.ComputePosition(Mars, fixtureEpoch, flags)
	require.NoError(t, err)

	dist := norm(res.Values[:3])
	assert.InDelta(t, lightTime(dist), res.LightTime, 1e-9)
	// Mars is about 1.87 AU away: 15.5 minutes
	assert.InDelta(t, 15.5/1440, res.LightTime, 0.5/1440)

	mars := fxMarsAt(fixtureEpoch - res.LightTime)
	earth := fxEarthAt(fixtureEpoch)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, mars[i]-earth[i], res.Values[i], 2e-8)
	}

	geo, err := e.ComputePosition(Mars, fixtureEpoch, flags|FlagTruePos)
	require.NoError(t, err)
	assert.NotEqual(t, geo.Values, res.Values)
	assert.Zero(t, geo.LightTime)
}

func TestEclipticOfJ2000(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	equ, err := e.ComputePosition(Mars, fixtureEpoch, FlagTruePos|FlagJ2000|FlagICRS|FlagEquatorial|FlagXYZ)
	require.NoError(t, err)
	ecl, err := e.ComputePosition(Mars, fixtureEpoch, FlagTruePos|FlagJ2000|FlagICRS)
	require.NoError(t, err)

	eps := models.DefaultObliquity.MeanObliquity(J2000)
	x := coortrf2([3]float64{equ.Values[0], equ.Values[1], equ.Values[2]}, math.Sin(eps), math.Cos(eps))
	l := cartPol(x)
	assert.InDelta(t, l[0]*radToDeg, ecl.Values[0], 1e-12)
	assert.InDelta(t, l[1]*radToDeg, ecl.Values[1], 1e-12)
	assert.InDelta(t, l[2], ecl.Values[2], 1e-15)
	assert.Equal(t, ecl.EclipticPolar, ecl.Values)
	assert.Equal(t, equ.EquatorialXYZ, equ.Values)

	rad, err := e.ComputePosition(Mars, fixtureEpoch, FlagTruePos|FlagJ2000|FlagICRS|FlagRadians)
	require.NoError(t, err)
	assert.InDelta(t, ecl.Values[0]/radToDeg, rad.Values[0], 1e-15)
	assert.InDelta(t, ecl.Values[1]/radToDeg, rad.Values[1], 1e-15)
}

func TestSpeedOnlyWhenRequested(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	res, err := e.ComputePosition(Mars, fixtureEpoch, 0)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{}, [3]float64{res.Values[3], res.Values[4], res.Values[5]})
	assert.Equal(t, [3]float64{}, [3]float64{res.EquatorialXYZ[3], res.EquatorialXYZ[4], res.EquatorialXYZ[5]})

	withSpeed, err := e.ComputePosition(Mars, fixtureEpoch, FlagSpeed)
	require.NoError(t, err)
	assert.NotZero(t, withSpeed.Values[3])
	// the speed does not change the position
	assert.InDeltaSlice(t, res.Values[:3], withSpeed.Values[:3], 1e-12)
}

// numericSpeed returns the central difference of the selected values of body. The
// step is a power of two so that tjd+h and tjd-h are exact.
func numericSpeed(t *testing.T, e *Ephemeris, body Body, tjd float64, flags Flag) [3]float64 {
	t.Helper()
	const h = 1.0 / 1024
	p, err := e.ComputePosition(body, tjd+h, flags)
	require.NoError(t, err)
	m, err := e.ComputePosition(body, tjd-h, flags)
	require.NoError(t, err)
	var d [3]float64
	for i := 0; i < 3; i++ {
		d[i] = (p.Values[i] - m.Values[i]) / (2 * h)
	}
	return d
}

func TestSpeedMatchesDifference(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	tests := []struct {
		body     Body
		flags    Flag
		tolAngle float64 // degrees per day
		tolDist  float64 // AU per day
	}{
		{Mars, FlagTruePos | FlagJ2000 | FlagICRS, 1e-7, 1e-9},
		{Jupiter, FlagTruePos | FlagJ2000 | FlagICRS | FlagEquatorial, 1e-7, 1e-9},
		{Mars, 0, 1e-4, 1e-6},
		{Jupiter, FlagEquatorial, 1e-4, 1e-6},
		{Moon, 0, 1e-4, 1e-6},
		{Sun, FlagNoNut, 1e-4, 1e-6},
	}
	for _, tt := range tests {
		res, err := e.ComputePosition(tt.body, fixtureEpoch, tt.flags|FlagSpeed)
		require.NoError(t, err)
		num := numericSpeed(t, e, tt.body, fixtureEpoch, tt.flags)
		assert.InDelta(t, num[0], res.Values[3], tt.tolAngle, "body %d flags %d longitude", tt.body, tt.flags)
		assert.InDelta(t, num[1], res.Values[4], tt.tolAngle, "body %d flags %d latitude", tt.body, tt.flags)
		assert.InDelta(t, num[2], res.Values[5], tt.tolDist, "body %d flags %d distance", tt.body, tt.flags)
	}
}

func TestTopocentricMoon(t *testing.T) {
	obs := &GeoPosition{Longitude: 8.55, Latitude: 47.37, Height: 400}
	e := newTestEphemeris(t, Config{Observer: obs})
	const flags = FlagTruePos | FlagJ2000 | FlagICRS | FlagEquatorial | FlagXYZ

	geo, err := e.ComputePosition(Moon, fixtureEpoch, flags)
	require.NoError(t, err)
	topo, err := e.ComputePosition(Moon, fixtureEpoch, flags|FlagTopoCtr)
	require.NoError(t, err)

	// the two differ by the geocentric vector of the observer
	var d [3]float64
	for i := range d {
		d[i] = geo.Values[i] - topo.Values[i]
	}
	re := EarthRadius / AUnit
	assert.InDelta(t, 0.9985*re, norm(d[:]), 0.002*re)

	// the parallax stays below the horizontal parallax
	p := separation(geo.Values[:3], topo.Values[:3])
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, math.Asin(re/norm(geo.Values[:3])))

	_, err = e.ComputePosition(Moon, fixtureEpoch, FlagTopoCtr|FlagSpeed)
	assert.NoError(t, err)
}

func TestComputePositionErrors(t *testing.T) {
	e := newTestEphemeris(t, Config{})

	for _, flags := range []Flag{FlagJPLEph, FlagMosEph, FlagHelCtr | FlagBaryCtr, FlagTopoCtr} {
		_, err := e.ComputePosition(Mars, fixtureEpoch, flags)
		assert.ErrorIs(t, err, ErrConflictingFlags, "flags %d", flags)
	}
	for _, body := range []Body{-1, 10, 11, 13, 21, AsteroidOffset} {
		_, err := e.ComputePosition(body, fixtureEpoch, 0)
		assert.ErrorIs(t, err, ErrUnsupportedBody, "body %d", body)
		_, err = e.RawState(body, fixtureEpoch, 0)
		assert.ErrorIs(t, err, ErrUnsupportedBody, "body %d", body)
	}

	// after the last segment, inside the century of the file
	_, err := e.ComputePosition(Mars, 2451700, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// 2600: no sepl_24.se1
	_, err = e.ComputePosition(Mars, 2670695.5, 0)
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = e.ComputePosition(AsteroidOffset+1221, fixtureEpoch, 0)
	assert.ErrorIs(t, err, ErrFileNotFound)

	// Uranus is not in the planet file
	_, err = e.ComputePosition(Uranus, fixtureEpoch, 0)
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestPipelineRequiresPreparedContext(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	ctx := newEphemerisContext(Mars, fixtureEpoch, FlagSwiEph, e.models, e.resolver, nil)
	err := e.pipeline.Run(newTransformState(StateVector{}), ctx)
	assert.ErrorIs(t, err, ErrMissingDependency)

	require.NoError(t, ctx.prepare())
	err = e.pipeline.Run(newTransformState(StateVector{X: fxMarsAt(fixtureEpoch)}), ctx)
	assert.NoError(t, err)
}

func TestStageOrder(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	assert.Equal(t, []string{
		"light-time", "zero-speed", "center", "deflection", "aberration",
		"frame-bias", "precession", "nutation", "equatorial", "ecliptic",
		"ecliptic-snapshot", "polar", "degrees",
	}, e.Stages())
}

// fixedProvider serves constant heliocentric states of the Earth and Mars.
type fixedProvider struct{}

var (
	fallbackEarth = [6]float64{0.9, 0.4, 0.1, -0.007, 0.015, 0.006}
	fallbackMars  = [6]float64{1.2, 0.5, 0.2, -0.005, 0.011, 0.005}
)

func (fixedProvider) HeliocentricState(body Body, _ float64) ([6]float64, error) {
	switch body {
	case Earth:
		return fallbackEarth, nil
	case Mars:
		return fallbackMars, nil
	}
	return [6]float64{}, fmt.Errorf("%w: %d", ErrUnsupportedBody, int(body))
}

func TestFallbackOutsideFiles(t *testing.T) {
	e := newTestEphemeris(t, Config{Fallback: fixedProvider{}})
	const tjd = 2451700

	res, err := e.ComputePosition(Mars, tjd, rawFlags)
	require.NoError(t, err)
	assert.Zero(t, res.DENumber)
	for i := range res.Values {
		assert.InDelta(t, fallbackMars[i]-fallbackEarth[i], res.Values[i], 1e-15)
	}

	res, err = e.ComputePosition(Mars, tjd, rawFlags|FlagHelCtr)
	require.NoError(t, err)
	assert.Equal(t, fallbackMars, res.Values)

	// apparent positions work too
	_, err = e.ComputePosition(Mars, tjd, FlagSpeed)
	assert.NoError(t, err)

	_, err = e.ComputePosition(Moon, tjd, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = e.ComputePosition(Jupiter, tjd, 0)
	assert.ErrorIs(t, err, ErrUnsupportedBody)

	// inside the files the provider is not used
	res, err = e.ComputePosition(Mars, fixtureEpoch, rawFlags)
	require.NoError(t, err)
	assert.Equal(t, 431, res.DENumber)
}

func TestConcurrentComputePosition(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	times := []float64{2451501, 2451520.5, fixtureEpoch, 2451580.25, 2451628}
	want := make([]PositionResult, len(times))
	for i, tjd := range times {
		res, err := e.ComputePosition(Mars, tjd, FlagSpeed)
		require.NoError(t, err)
		want[i] = res
	}

	var wg sync.WaitGroup
	errs := make(chan error, 4*len(times))
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, tjd := range times {
				res, err := e.ComputePosition(Mars, tjd, FlagSpeed)
				if err != nil {
					errs <- err
					continue
				}
				if res.Values != want[i].Values {
					errs <- fmt.Errorf("jd %v: got %v, want %v", tjd, res.Values, want[i].Values)
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
