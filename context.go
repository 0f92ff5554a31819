// ./context.go
package sweph

/*
Package sweph provides the per-call ephemeris context and the epoch-derived quantities.

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
	"math"

	"github.com/mshafiee/sweph/models"
)

// modelSet holds the correction models of an Ephemeris. It is read-only after
// NewEphemeris and shared by all contexts.
type modelSet struct {
	nutation   models.NutationModel
	precession models.PrecessionModel
	obliquity  models.ObliquityModel
	bias       models.FrameBiasModel
	deltaT     DeltaTProvider
	sidereal   SiderealProvider
}

func newModelSet(cfg Config) *modelSet {
	m := &modelSet{
		nutation:   cfg.Nutation,
		precession: cfg.Precession,
		obliquity:  cfg.Obliquity,
		bias:       cfg.Bias,
		deltaT:     cfg.DeltaT,
		sidereal:   cfg.Sidereal,
	}
	if m.nutation == nil {
		m.nutation = models.DefaultNutation
	}
	if m.precession == nil {
		m.precession = models.DefaultPrecession
	}
	if m.obliquity == nil {
		m.obliquity = models.DefaultObliquity
	}
	if m.bias == nil {
		m.bias = models.DefaultBias
	}
	if m.deltaT == nil {
		m.deltaT = MeeusDeltaT{}
	}
	if m.sidereal == nil {
		m.sidereal = MeeusSidereal{}
	}
	return m
}

// epochDerived holds the quantities that depend on the epoch only.
type epochDerived struct {
	tjd              float64
	eps, seps, ceps  float64 // mean obliquity of date
	dpsi, deps       float64 // nutation in longitude and obliquity
	snut, cnut       float64 // sin and cos of deps
	nut, nutv        models.Matrix3
	nutationComputed bool

	prec    models.Matrix3 // mean equator of J2000 to mean equator of date
	toJ2000 models.Matrix3 // true equator of date to mean equator of J2000
}

func (m *modelSet) derive(tjd float64, withNutation bool) *epochDerived {
	d := &epochDerived{tjd: tjd}
	d.eps = m.obliquity.MeanObliquity(tjd)
	d.seps, d.ceps = math.Sin(d.eps), math.Cos(d.eps)
	d.cnut = 1
	d.nut = models.Identity()
	d.nutv = models.Identity()
	if withNutation {
		d.dpsi, d.deps = m.nutation.Nutation(tjd)
		d.snut, d.cnut = math.Sin(d.deps), math.Cos(d.deps)
		d.nut = models.NutationMatrix(d.dpsi, d.deps, d.eps)
		// the speed matrix keeps the obliquity of tjd
		dpsiv, depsv := m.nutation.Nutation(tjd - nutSpeedIntv)
		d.nutv = models.NutationMatrix(dpsiv, depsv, d.eps)
		d.nutationComputed = true
	}
	d.prec = models.PrecessionMatrix(m.precession, tjd)
	d.toJ2000 = d.prec.T().Mul(d.nut)
	return d
}

// Resolved quantities of a context.
const (
	haveSun = 1 << iota
	haveEarth
	haveObserver
)

// EphemerisContext is the state of one ComputePosition call. It is created per
// call and never shared between goroutines, so it needs no locking.
type EphemerisContext struct {
	TT    float64 // Terrestrial Time, Julian day
	UT    float64 // Universal Time, Julian day
	Flags Flag
	Body  Body

	// Barycentric J2000 vectors at TT, valid once prepare has run.
	Sun      StateVector
	Earth    StateVector
	Observer StateVector

	DENumber int

	models    *modelSet
	resolver  *PositionResolver
	geo       *GeoPosition
	snapshots map[float64]*snapshot
	epochs    map[float64]*epochDerived
	have      int
}

func newEphemerisContext(body Body, tjd float64, flags Flag, m *modelSet, r *PositionResolver, geo *GeoPosition) *EphemerisContext {
	return &EphemerisContext{
		TT:        tjd,
		UT:        tjd - m.deltaT.DeltaT(tjd),
		Flags:     flags,
		Body:      body,
		models:    m,
		resolver:  r,
		geo:       geo,
		snapshots: make(map[float64]*snapshot),
		epochs:    make(map[float64]*epochDerived),
	}
}

// epoch returns the memoized epoch-derived values of t.
func (c *EphemerisContext) epoch(t float64) *epochDerived {
	if d, ok := c.epochs[t]; ok {
		return d
	}
	d := c.models.derive(t, !c.Flags.Has(FlagNoNut))
	c.epochs[t] = d
	return d
}

// snapshot returns the memoized dependency snapshot of t.
func (c *EphemerisContext) snapshot(t float64) *snapshot {
	if s, ok := c.snapshots[t]; ok {
		return s
	}
	s := &snapshot{t: t}
	c.snapshots[t] = s
	return s
}

// observerAt returns the barycentric position of the observer at t: the
// barycenter, the Sun, the geocenter or a place on the Earth's surface.
func (c *EphemerisContext) observerAt(t float64) ([6]float64, error) {
	switch {
	case c.Flags.Has(FlagBaryCtr):
		return [6]float64{}, nil
	case c.Flags.Has(FlagHelCtr):
		return c.resolver.dependency(c, depSun, t)
	}
	earth, err := c.resolver.dependency(c, depEarth, t)
	if err != nil {
		return earth, err
	}
	if c.Flags.Has(FlagTopoCtr) {
		if c.geo == nil {
			return earth, fmt.Errorf("%w: topocentric position without observer", ErrConflictingFlags)
		}
		topo := c.geo.stateJ2000(c, t)
		for i := range earth {
			earth[i] += topo[i]
		}
	}
	return earth, nil
}

// prepare resolves the Sun, the Earth and the observer at TT. Heliocentric and
// barycentric positions need no Earth.
func (c *EphemerisContext) prepare() error {
	sun, err := c.resolver.dependency(c, depSun, c.TT)
	if err != nil {
		return err
	}
	c.Sun = StateVector{X: sun, Center: CenterBarycentric}
	c.have |= haveSun
	c.DENumber = c.snapshot(c.TT).denum

	if !c.Flags.Has(FlagHelCtr) && !c.Flags.Has(FlagBaryCtr) {
		earth, err := c.resolver.dependency(c, depEarth, c.TT)
		if err != nil {
			return err
		}
		c.Earth = StateVector{X: earth, Center: CenterBarycentric}
		c.have |= haveEarth
	}

	obs, err := c.observerAt(c.TT)
	if err != nil {
		return err
	}
	c.Observer = StateVector{X: obs, Center: CenterBarycentric}
	c.have |= haveObserver
	return nil
}

// require returns ErrMissingDependency unless all quantities in mask are resolved.
func (c *EphemerisContext) require(stage string, mask int) error {
	if c.have&mask != mask {
		return fmt.Errorf("%w: stage %s runs before its inputs are resolved", ErrMissingDependency, stage)
	}
	return nil
}
