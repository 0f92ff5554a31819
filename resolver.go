// ./resolver.go
package sweph

/*
Package sweph provides the resolution of raw barycentric state vectors from ephemeris files.

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

	"github.com/sirupsen/logrus"
)

// HeliocentricProvider supplies heliocentric J2000 equatorial states (AU, AU/day)
// when no ephemeris file covers a date.
type HeliocentricProvider interface {
	HeliocentricState(body Body, tjd float64) ([6]float64, error)
}

// dependency is a body other bodies are derived from.
type dependency int

const (
	depSun dependency = iota
	depEMB
	depMoon
	depEarth
)

// dependencyOrder is the order in which the dependencies of one instant are
// resolved. Each entry may use the entries before it.
var dependencyOrder = [...]dependency{depSun, depEMB, depMoon, depEarth}

func (d dependency) String() string {
	switch d {
	case depSun:
		return "sun"
	case depEMB:
		return "emb"
	case depMoon:
		return "moon"
	case depEarth:
		return "earth"
	}
	return fmt.Sprintf("dependency(%d)", int(d))
}

// snapshot holds the dependencies of one instant resolved so far.
type snapshot struct {
	t        float64
	x        [len(dependencyOrder)][6]float64
	next     int // index into dependencyOrder of the next entry to resolve
	fallback bool
	denum    int
	moonErr  error // Moon unavailable in fallback mode
}

// PositionResolver turns ephemeris segments into barycentric J2000 equatorial
// state vectors. The Moon is stored geocentric and the asteroids heliocentric, so
// most bodies need the Sun, the Earth-Moon barycenter or the Moon first.
type PositionResolver struct {
	files    *fileSet
	fallback HeliocentricProvider
	log      *logrus.Entry
}

// newPositionResolver returns a resolver reading from files. fallback may be nil.
func newPositionResolver(files *fileSet, fallback HeliocentricProvider, log *logrus.Entry) *PositionResolver {
	if log == nil {
		log = newLogEntry(nil)
	}
	return &PositionResolver{files: files, fallback: fallback, log: log}
}

// Resolve returns the barycentric state of body at the TT instant of ctx, referred
// to the J2000 equator (the ICRS for DE 403 and later).
func (r *PositionResolver) Resolve(ctx *EphemerisContext, body Body) (StateVector, error) {
	x, err := r.state(ctx, body, ctx.TT)
	if err != nil {
		return StateVector{}, err
	}
	return StateVector{X: x, Frame: FrameEquatorial, Epoch: EpochJ2000, Center: CenterBarycentric}, nil
}

// dependency resolves the entries of dependencyOrder up to d at t and returns d.
func (r *PositionResolver) dependency(ctx *EphemerisContext, d dependency, t float64) ([6]float64, error) {
	s := ctx.snapshot(t)
	for s.next <= int(d) {
		if err := r.resolveNext(s); err != nil {
			return [6]float64{}, fmt.Errorf("resolving %s at jd %.6f: %w", dependencyOrder[s.next], t, err)
		}
		s.next++
	}
	if d == depMoon && s.moonErr != nil {
		return [6]float64{}, s.moonErr
	}
	return s.x[d], nil
}

func (r *PositionResolver) resolveNext(s *snapshot) error {
	switch dependencyOrder[s.next] {
	case depSun:
		sun, denum, err := r.barySun(s.t)
		if err != nil {
			if r.fallback == nil || !fallbackAllowed(err) {
				return err
			}
			r.log.WithFields(logrus.Fields{"jd": s.t, "reason": err}).Debug("using heliocentric fallback")
			s.fallback = true
			s.x[depSun] = [6]float64{}
			return nil
		}
		s.x[depSun] = sun
		s.denum = denum
	case depEMB:
		if s.fallback {
			// heliocentric Earth, corrected to the barycenter once the Moon is known
			earth, err := r.fallback.HeliocentricState(Earth, s.t)
			if err != nil {
				return err
			}
			s.x[depEMB] = earth
			return nil
		}
		emb, pi, _, err := r.fileState(seiEMB, s.t)
		if err != nil {
			return err
		}
		if pi.Flags&flgHelio != 0 {
			emb = addState(emb, s.x[depSun])
		}
		s.x[depEMB] = emb
	case depMoon:
		moon, _, _, err := r.fileState(seiMoon, s.t)
		if err != nil {
			if !s.fallback {
				return err
			}
			s.moonErr = err
			return nil
		}
		s.x[depMoon] = moon
	case depEarth:
		f := 1 / (EarthMoonMRat + 1)
		if s.fallback {
			s.x[depEarth] = s.x[depEMB]
			if s.moonErr == nil {
				for i := range s.x[depEMB] {
					s.x[depEMB][i] += s.x[depMoon][i] * f
				}
			}
			return nil
		}
		for i := range s.x[depEarth] {
			s.x[depEarth][i] = s.x[depEMB][i] - s.x[depMoon][i]*f
		}
	}
	return nil
}

// barySun returns the barycentric Sun at t. Files that flag the Sun slot EMBHEL
// store the heliocentric Earth-Moon barycenter there.
func (r *PositionResolver) barySun(t float64) ([6]float64, int, error) {
	x, pi, denum, err := r.fileState(seiSunBary, t)
	if err != nil {
		return x, 0, err
	}
	if pi.Flags&flgEmbHel == 0 {
		return x, denum, nil
	}
	emb, _, _, err := r.fileState(seiEMB, t)
	if err != nil {
		return x, 0, err
	}
	for i := range x {
		x[i] = emb[i] - x[i]
	}
	return x, denum, nil
}

// state returns the barycentric state of body at t.
func (r *PositionResolver) state(ctx *EphemerisContext, body Body, t float64) ([6]float64, error) {
	switch {
	case body == Sun:
		return r.dependency(ctx, depSun, t)
	case body == Earth:
		return r.dependency(ctx, depEarth, t)
	case body == Moon:
		earth, err := r.dependency(ctx, depEarth, t)
		if err != nil {
			return earth, err
		}
		moon, err := r.dependency(ctx, depMoon, t)
		if err != nil {
			return moon, err
		}
		return addState(moon, earth), nil
	case body >= Mercury && body <= Pluto:
		sun, err := r.dependency(ctx, depSun, t)
		if err != nil {
			return sun, err
		}
		if ctx.snapshot(t).fallback {
			x, err := r.fallback.HeliocentricState(body, t)
			if err != nil {
				return x, err
			}
			return addState(x, sun), nil
		}
		return r.heliocentricFlagged(int(body), t, sun)
	case body >= Chiron && body <= Vesta:
		sun, err := r.dependency(ctx, depSun, t)
		if err != nil {
			return sun, err
		}
		return r.heliocentricFlagged(int(body)-int(Chiron)+seiChiron, t, sun)
	case body > AsteroidOffset:
		sun, err := r.dependency(ctx, depSun, t)
		if err != nil {
			return sun, err
		}
		n := int(body - AsteroidOffset)
		f, err := r.files.openAsteroid(n)
		if err != nil {
			return [6]float64{}, err
		}
		x, pi, err := segmentState(f, int(body), t)
		if err != nil {
			return x, err
		}
		if pi.Flags&flgHelio != 0 {
			x = addState(x, sun)
		}
		return x, nil
	}
	return [6]float64{}, fmt.Errorf("%w: %d", ErrUnsupportedBody, int(body))
}

// heliocentricFlagged reads slot from its dated file and adds the barycentric Sun
// when the file stores the body heliocentric.
func (r *PositionResolver) heliocentricFlagged(slot int, t float64, sun [6]float64) ([6]float64, error) {
	x, pi, _, err := r.fileState(slot, t)
	if err != nil {
		return x, err
	}
	if pi.Flags&flgHelio != 0 {
		x = addState(x, sun)
	}
	return x, nil
}

// fileState evaluates slot in the dated file covering t.
func (r *PositionResolver) fileState(slot int, t float64) ([6]float64, *PlanetInfo, int, error) {
	kind := fileKindForSlot(slot)
	name, err := fileName(kind, t)
	if err != nil {
		return [6]float64{}, nil, 0, err
	}
	f, err := r.files.open(name, kind)
	if err != nil {
		return [6]float64{}, nil, 0, err
	}
	x, pi, err := segmentState(f, slot, t)
	if err != nil {
		return x, nil, 0, err
	}
	return x, pi, f.Header().DENumber, nil
}

// segmentState evaluates the segment of body covering t.
func segmentState(f *File, body int, t float64) ([6]float64, *PlanetInfo, error) {
	seg, err := f.GetSegment(body, t)
	if err != nil {
		return [6]float64{}, nil, err
	}
	var pos, vel [3]float64
	evaluateSegment(seg, t, &pos, &vel)
	return [6]float64{pos[0], pos[1], pos[2], vel[0], vel[1], vel[2]}, f.Header().Planets[body], nil
}

// fallbackAllowed reports whether a failed file lookup may be served by the
// heliocentric provider.
func fallbackAllowed(err error) bool {
	return errors.Is(err, ErrFileNotFound) || errors.Is(err, ErrOutOfRange)
}

func addState(a, b [6]float64) [6]float64 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}
