// ./stages.go
package sweph

/*
Package sweph provides the stages of the transform pipeline.

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
	"github.com/mshafiee/sweph/models"
)

// lightTimeIterations is the number of refinements of the light-time after the
// first estimate.
const lightTimeIterations = 1

// lightTimeStage moves the body back to the instant its light left it. The
// position is extrapolated with the speed to find the light-time and the file is
// then evaluated again at that instant.
type lightTimeStage struct{}

func (lightTimeStage) Name() string { return "light-time" }

func (lightTimeStage) Enabled(f Flag) bool { return !f.Has(FlagTruePos) }

func (lightTimeStage) Apply(st *TransformState, ctx *EphemerisContext) error {
	if err := ctx.require("light-time", haveObserver); err != nil {
		return err
	}
	x := st.Target
	xobs := ctx.Observer.X
	speed := ctx.Flags.Has(FlagSpeed)

	// light-time of the position one day earlier, for the speed
	var xxsp [3]float64
	if speed {
		var xxsv [3]float64
		for i := 0; i <= 2; i++ {
			xxsv[i] = x[i] - x[i+3]
			xxsp[i] = xxsv[i]
		}
		for j := 0; j <= lightTimeIterations; j++ {
			var dx [3]float64
			for i := 0; i <= 2; i++ {
				dx[i] = xxsp[i] - (xobs[i] - xobs[i+3])
			}
			dt := lightTime(norm(dx[:]))
			for i := 0; i <= 2; i++ {
				xxsp[i] = xxsv[i] - dt*x[i+3]
			}
		}
		for i := 0; i <= 2; i++ {
			xxsp[i] = xxsv[i] - xxsp[i]
		}
	}

	xx := x
	var dt float64
	for j := 0; j <= lightTimeIterations; j++ {
		var dx [3]float64
		for i := 0; i <= 2; i++ {
			dx[i] = xx[i] - xobs[i]
		}
		dt = lightTime(norm(dx[:]))
		for i := 0; i <= 2; i++ {
			xx[i] = x[i] - dt*x[i+3]
		}
	}
	if speed {
		for i := 0; i <= 2; i++ {
			xxsp[i] = x[i] - xx[i] - xxsp[i]
		}
	}

	t := ctx.TT - dt
	acc, err := ctx.resolver.state(ctx, ctx.Body, t)
	if err != nil {
		return err
	}
	obs, err := ctx.observerAt(t)
	if err != nil {
		return err
	}
	st.X = acc
	st.LightTime = dt
	st.lightTime = true
	st.xxsp = xxsp
	st.obsLT = obs
	return nil
}

// zeroSpeedStage drops the speed when the caller did not ask for it.
type zeroSpeedStage struct{}

func (zeroSpeedStage) Name() string { return "zero-speed" }

func (zeroSpeedStage) Enabled(f Flag) bool { return !f.Has(FlagSpeed) }

func (zeroSpeedStage) Apply(st *TransformState, _ *EphemerisContext) error {
	st.X[3], st.X[4], st.X[5] = 0, 0, 0
	return nil
}

// centerStage refers the state to the observer: barycenter, Sun, geocenter or
// topocentric observer.
type centerStage struct{}

func (centerStage) Name() string { return "center" }

func (centerStage) Enabled(Flag) bool { return true }

func (centerStage) Apply(st *TransformState, ctx *EphemerisContext) error {
	if err := ctx.require("center", haveObserver); err != nil {
		return err
	}
	n := 3
	if ctx.Flags.Has(FlagSpeed) {
		n = 6
	}
	for i := 0; i < n; i++ {
		st.X[i] -= ctx.Observer.X[i]
	}
	if st.lightTime && ctx.Flags.Has(FlagSpeed) {
		for i := 0; i <= 2; i++ {
			st.X[i+3] -= st.xxsp[i]
		}
	}
	return nil
}

// skipsLightCorrections reports whether the body has no meaningful deflection or
// aberration for the observer: the geocentric Earth is the zero vector.
func skipsLightCorrections(ctx *EphemerisContext) bool {
	return ctx.Body == Earth && !ctx.Flags.Has(FlagTopoCtr)
}

// deflectionStage applies the gravitational deflection of light by the Sun.
type deflectionStage struct{}

func (deflectionStage) Name() string { return "deflection" }

func (deflectionStage) Enabled(f Flag) bool { return !f.Has(FlagNoGDefl) }

func (deflectionStage) Apply(st *TransformState, ctx *EphemerisContext) error {
	if ctx.Body == Sun || ctx.Body == Moon || skipsLightCorrections(ctx) {
		return nil
	}
	if err := ctx.require("deflection", haveSun|haveObserver); err != nil {
		return err
	}
	x, err := deflectLight(st.X, ctx.Observer.X, ctx.Sun.X, st.LightTime, ctx.Flags.Has(FlagSpeed))
	if err != nil {
		return err
	}
	st.X = x
	return nil
}

// aberrationStage applies the annual aberration. The speed also gets the change of
// the observer's velocity during the light-time.
type aberrationStage struct{}

func (aberrationStage) Name() string { return "aberration" }

func (aberrationStage) Enabled(f Flag) bool { return !f.Has(FlagNoAberr) }

func (aberrationStage) Apply(st *TransformState, ctx *EphemerisContext) error {
	if skipsLightCorrections(ctx) {
		return nil
	}
	if err := ctx.require("aberration", haveObserver); err != nil {
		return err
	}
	speed := ctx.Flags.Has(FlagSpeed)
	x, err := aberrLight(st.X, ctx.Observer.X, speed)
	if err != nil {
		return err
	}
	if speed && st.lightTime {
		for i := 3; i <= 5; i++ {
			x[i] += ctx.Observer.X[i] - st.obsLT[i]
		}
	}
	st.X = x
	return nil
}

// biasStage rotates from the ICRS to the mean equator of J2000. Ephemerides before
// DE403 are not referred to the ICRS and are left alone.
type biasStage struct{}

func (biasStage) Name() string { return "frame-bias" }

func (biasStage) Enabled(f Flag) bool { return !f.Has(FlagICRS) }

func (biasStage) Apply(st *TransformState, ctx *EphemerisContext) error {
	if ctx.DENumber < 403 {
		return nil
	}
	st.X = ctx.models.bias.ApplyBias(st.X, false)
	return nil
}

// precessionStage precesses from J2000 to the mean equator of date.
type precessionStage struct{}

func (precessionStage) Name() string { return "precession" }

func (precessionStage) Enabled(f Flag) bool { return !f.Has(FlagJ2000) }

func (precessionStage) Apply(st *TransformState, ctx *EphemerisContext) error {
	prec := ctx.models.precession
	p := prec.Precess([3]float64{st.X[0], st.X[1], st.X[2]}, ctx.TT, models.J2000ToDate)
	st.X[0], st.X[1], st.X[2] = p[0], p[1], p[2]
	if ctx.Flags.Has(FlagSpeed) {
		st.X = precessSpeed(st.X, ctx.TT, ctx.epoch(ctx.TT), prec)
	}
	return nil
}

// precessSpeed precesses the velocity of a state whose position is already
// precessed, then adds the general precession in longitude.
func precessSpeed(x [6]float64, tjd float64, d *epochDerived, prec models.PrecessionModel) [6]float64 {
	v := prec.Precess([3]float64{x[3], x[4], x[5]}, tjd, models.J2000ToDate)
	x[3], x[4], x[5] = v[0], v[1], v[2]
	x = coortrf2Sp(x, d.seps, d.ceps)
	l := cartPolSp(x)
	l[3] += prec.LongitudeRate(tjd)
	x = polCartSp(l)
	return coortrf2Sp(x, -d.seps, d.ceps)
}

// nutationStage rotates from the mean to the true equator of date. The speed gets
// the change of nutation over nutSpeedIntv.
type nutationStage struct{}

func (nutationStage) Name() string { return "nutation" }

func (nutationStage) Enabled(f Flag) bool { return !f.Has(FlagNoNut) }

func (nutationStage) Apply(st *TransformState, ctx *EphemerisContext) error {
	d := ctx.epoch(ctx.TT)
	pos := [3]float64{st.X[0], st.X[1], st.X[2]}
	p := models.Nutate(d.nut, pos, false)
	if ctx.Flags.Has(FlagSpeed) {
		v := models.Nutate(d.nut, [3]float64{st.X[3], st.X[4], st.X[5]}, false)
		pv := models.Nutate(d.nutv, pos, false)
		for i := 0; i <= 2; i++ {
			v[i] += (p[i] - pv[i]) / nutSpeedIntv
		}
		st.X[3], st.X[4], st.X[5] = v[0], v[1], v[2]
	}
	st.X[0], st.X[1], st.X[2] = p[0], p[1], p[2]
	st.nutated = true
	return nil
}

type equatorialSnapshotStage struct{}

func (equatorialSnapshotStage) Name() string { return "equatorial" }

func (equatorialSnapshotStage) Enabled(Flag) bool { return true }

func (equatorialSnapshotStage) Apply(st *TransformState, _ *EphemerisContext) error {
	st.Equatorial = st.X
	return nil
}

// eclipticStage rotates to the ecliptic with the mean obliquity of date, or of
// J2000, and then by the nutation in obliquity.
type eclipticStage struct{}

func (eclipticStage) Name() string { return "ecliptic" }

func (eclipticStage) Enabled(Flag) bool { return true }

func (eclipticStage) Apply(st *TransformState, ctx *EphemerisContext) error {
	t := ctx.TT
	if ctx.Flags.Has(FlagJ2000) {
		t = J2000
	}
	d := ctx.epoch(t)
	x := coortrf2Sp(st.X, d.seps, d.ceps)
	if st.nutated {
		x = coortrf2Sp(x, d.snut, d.cnut)
	}
	st.X = x
	return nil
}

type eclipticSnapshotStage struct{}

func (eclipticSnapshotStage) Name() string { return "ecliptic-snapshot" }

func (eclipticSnapshotStage) Enabled(Flag) bool { return true }

func (eclipticSnapshotStage) Apply(st *TransformState, _ *EphemerisContext) error {
	st.Ecliptic = st.X
	return nil
}

// polarStage converts both snapshots into longitude, latitude and distance.
type polarStage struct{}

func (polarStage) Name() string { return "polar" }

func (polarStage) Enabled(Flag) bool { return true }

func (polarStage) Apply(st *TransformState, _ *EphemerisContext) error {
	st.EquatorialPolar = cartPolSp(st.Equatorial)
	st.EclipticPolar = cartPolSp(st.Ecliptic)
	return nil
}

// degreesStage converts the polar angles and their speeds to degrees.
type degreesStage struct{}

func (degreesStage) Name() string { return "degrees" }

func (degreesStage) Enabled(f Flag) bool { return !f.Has(FlagRadians) }

func (degreesStage) Apply(st *TransformState, _ *EphemerisContext) error {
	for _, l := range []*[6]float64{&st.EquatorialPolar, &st.EclipticPolar} {
		l[0] *= radToDeg
		l[1] *= radToDeg
		l[3] *= radToDeg
		l[4] *= radToDeg
	}
	return nil
}
