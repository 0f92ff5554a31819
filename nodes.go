// ./nodes.go
package sweph

/*
osculating nodes and apsides of the solar system bodies

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
)

// nodeCalcIntv is the time step in days of the node speeds. For bodies orbiting
// the Sun it is scaled by ten times the heliocentric distance.
const nodeCalcIntv = 0.0001

// planetMassRatio holds the reciprocal masses of the planets, Sun = 1.
var planetMassRatio = map[Body]float64{
	Mercury: 6023600,
	Venus:   408523.719,
	Mars:    3098703.59,
	Jupiter: 1047.348644,
	Saturn:  3497.9018,
	Uranus:  22902.98,
	Neptune: 19412.26,
	Pluto:   136566000,
}

// NodeOptions select variants of OsculatingNodes.
type NodeOptions struct {
	// FocalPoint returns the second focus of the ellipse instead of the aphelion.
	FocalPoint bool
	// Barycentric uses the orbit around the solar system barycenter instead of
	// the Sun. It suits the outer planets, whose heliocentric ellipse wobbles
	// with the motion of the Sun. Ignored for the Moon.
	Barycentric bool
}

// NodeResult holds the points of an osculating orbit in the coordinates selected
// by the flags, as ComputePosition would return them for a body.
type NodeResult struct {
	Ascending  PositionResult
	Descending PositionResult
	Perihelion PositionResult
	// Aphelion is the second focus with NodeOptions.FocalPoint.
	Aphelion PositionResult
	Flags    Flag
}

// OsculatingNodes computes the nodes and apsides of the osculating orbit of body
// at the Julian day tjdTT (TT). The orbit is heliocentric, geocentric for the
// Moon, and refers to the ecliptic and equinox selected by flags. The node points
// lie on the orbit, so their geocentric positions differ from the heliocentric
// node longitude by the parallax. Deflection and aberration are applied unless
// FlagTruePos is set; there is no light-time, as the points are not bodies.
//
// Returns:
//   - The four points, each with all coordinate variants.
//   - ErrUnsupportedBody for the Sun, the Earth and unknown bodies.
//   - ErrNumericDomain for an orbit that is not an ellipse or lies in the ecliptic.
//   - ErrConflictingFlags, ErrFileNotFound or ErrOutOfRange as ComputePosition.
func (e *Ephemeris) OsculatingNodes(body Body, tjdTT float64, flags Flag, opts NodeOptions) (NodeResult, error) {
	flags, err := e.normalizeFlags(flags)
	if err != nil {
		return NodeResult{}, err
	}
	if body == Sun || body == Earth || !validBody(body) {
		return NodeResult{}, fmt.Errorf("%w: no osculating orbit for %d", ErrUnsupportedBody, int(body))
	}
	if body == Moon {
		opts.Barycentric = false
	}

	ctx := newEphemerisContext(body, tjdTT, flags, e.models, e.resolver, e.observer)
	if err := ctx.prepare(); err != nil {
		return NodeResult{}, err
	}

	var gm, dt float64
	if body == Moon {
		gm = GeoGravConst * (1 + 1/EarthMoonMRat)
		dt = nodeCalcIntv
	} else {
		plm := 0.0
		if r, ok := planetMassRatio[body]; ok {
			plm = 1 / r
		}
		gm = HelGravConst * (1 + plm)
		x, err := e.resolver.state(ctx, body, tjdTT)
		if err != nil {
			return NodeResult{}, err
		}
		dt = nodeCalcIntv * 10 * norm([]float64{x[0] - ctx.Sun.X[0], x[1] - ctx.Sun.X[1], x[2] - ctx.Sun.X[2]})
	}
	gm = gm / AUnit / AUnit / AUnit * 86400.0 * 86400.0
	dzmin := 1e-15 * dt / nodeCalcIntv

	speed := flags.Has(FlagSpeed)
	times := []float64{tjdTT}
	if speed {
		times = []float64{tjdTT - dt, tjdTT, tjdTT + dt}
	}
	samples := make([][4][3]float64, len(times))
	for i, t := range times {
		samples[i], err = e.conicSample(ctx, body, t, opts, gm, dzmin)
		if err != nil {
			return NodeResult{}, err
		}
	}

	var pts [4][6]float64
	mid := samples[len(samples)/2]
	for k := range pts {
		copy(pts[k][:3], mid[k][:])
		if speed {
			for j := 0; j <= 2; j++ {
				pts[k][j+3] = (samples[2][k][j] - samples[0][k][j]) / dt / 2
			}
		}
	}

	res := NodeResult{Flags: flags}
	out := []*PositionResult{&res.Ascending, &res.Descending, &res.Perihelion, &res.Aphelion}
	for k, p := range pts {
		st, err := e.nodePoint(ctx, body, p, opts)
		if err != nil {
			return NodeResult{}, err
		}
		*out[k] = newPositionResult(st, flags, ctx.DENumber)
	}
	return res, nil
}

// conicSample returns the node and apsis points of the osculating orbit of body at
// t, relative to the central body on the ecliptic selected by the flags.
func (e *Ephemeris) conicSample(ctx *EphemerisContext, body Body, t float64, opts NodeOptions, gm, dzmin float64) ([4][3]float64, error) {
	x, err := e.resolver.state(ctx, body, t)
	if err != nil {
		return [4][3]float64{}, err
	}
	var center [6]float64
	switch {
	case body == Moon:
		center, err = e.resolver.dependency(ctx, depEarth, t)
	case !opts.Barycentric:
		center, err = e.resolver.dependency(ctx, depSun, t)
	}
	if err != nil {
		return [4][3]float64{}, err
	}
	for i := range x {
		x[i] -= center[i]
	}
	return conicPoints(ctx.eclipticFrame(x, t), gm, dzmin, opts.FocalPoint)
}

// nodePoint refers p, a point relative to the central body on the ecliptic frame
// at TT, to the observer and runs it through the closing stages of the pipeline.
func (e *Ephemeris) nodePoint(ctx *EphemerisContext, body Body, p [6]float64, opts NodeOptions) (*TransformState, error) {
	flags := ctx.Flags
	d := ctx.frameEpoch(ctx.TT)
	x := coortrf2Sp(p, -d.snut, d.cnut)
	x = coortrf2Sp(x, -d.seps, d.ceps)

	var center [6]float64
	var err error
	switch {
	case body == Moon:
		center, err = e.resolver.dependency(ctx, depEarth, ctx.TT)
	case !opts.Barycentric:
		center = ctx.Sun.X
	}
	if err != nil {
		return nil, err
	}
	center = ctx.equatorFrame(center, ctx.TT)
	obs := ctx.equatorFrame(ctx.Observer.X, ctx.TT)
	sun := ctx.equatorFrame(ctx.Sun.X, ctx.TT)
	n := 3
	if flags.Has(FlagSpeed) {
		n = 6
	}
	for i := 0; i < n; i++ {
		x[i] += center[i] - obs[i]
	}

	speed := flags.Has(FlagSpeed)
	lt := lightTime(norm(x[:3]))
	if !flags.Has(FlagNoGDefl) && body != Moon {
		if x, err = deflectLight(x, obs, sun, lt, speed); err != nil {
			return nil, err
		}
	}
	if !flags.Has(FlagNoAberr) {
		if x, err = aberrLight(x, obs, speed); err != nil {
			return nil, err
		}
		if speed {
			prev, err := ctx.observerAt(ctx.TT - lt)
			if err != nil {
				return nil, err
			}
			prev = ctx.equatorFrame(prev, ctx.TT)
			for i := 3; i <= 5; i++ {
				x[i] += obs[i] - prev[i]
			}
		}
	}

	st := &TransformState{X: x, nutated: !flags.Has(FlagNoNut)}
	if err := nodePipeline.Run(st, ctx); err != nil {
		return nil, err
	}
	return st, nil
}

// nodePipeline takes a state on the equator of the output frame to the snapshots.
var nodePipeline = &TransformPipeline{stages: []TransformStage{
	equatorialSnapshotStage{},
	eclipticStage{},
	eclipticSnapshotStage{},
	polarStage{},
	degreesStage{},
}}

// frameEpoch returns the epoch values of the output frame: J2000 for FlagJ2000,
// t otherwise.
func (c *EphemerisContext) frameEpoch(t float64) *epochDerived {
	if c.Flags.Has(FlagJ2000) {
		t = J2000
	}
	return c.epoch(t)
}

// equatorFrame rotates x, a barycentric ICRS state, to the equator selected by the
// flags at t: true or mean equator of date, or the equator of J2000. Velocities
// are rotated like positions.
func (c *EphemerisContext) equatorFrame(x [6]float64, t float64) [6]float64 {
	if !c.Flags.Has(FlagICRS) && c.DENumber >= 403 {
		x = c.models.bias.ApplyBias(x, false)
	}
	m := c.frameEpoch(t).toJ2000.T()
	p := m.MulVec([3]float64{x[0], x[1], x[2]})
	v := m.MulVec([3]float64{x[3], x[4], x[5]})
	return [6]float64{p[0], p[1], p[2], v[0], v[1], v[2]}
}

// eclipticFrame is equatorFrame followed by the rotation to the ecliptic.
func (c *EphemerisContext) eclipticFrame(x [6]float64, t float64) [6]float64 {
	d := c.frameEpoch(t)
	x = coortrf2Sp(c.equatorFrame(x, t), d.seps, d.ceps)
	return coortrf2Sp(x, d.snut, d.cnut)
}

// conicPoints returns the ascending node, descending node, pericenter and
// apocenter of the conic through x, a state relative to the central body in AU and
// AU/day, for the gravitational parameter gm in AU^3/day^2. The nodes are placed
// at the distance the orbit has there. With focal the second focus replaces the
// apocenter. A vertical speed below dzmin is raised to dzmin.
func conicPoints(x [6]float64, gm, dzmin float64, focal bool) ([4][3]float64, error) {
	var pts [4][3]float64
	if math.Abs(x[5]) < dzmin {
		x[5] = dzmin
	}
	if x[5] == 0 {
		return pts, fmt.Errorf("%w: orbit in the ecliptic plane has no node", ErrNumericDomain)
	}
	fac := x[2] / x[5]
	sgn := x[5] / math.Abs(x[5])
	var xn, xs [3]float64
	for j := 0; j <= 2; j++ {
		xn[j] = (x[j] - fac*x[j+3]) * sgn
		xs[j] = -xn[j]
	}
	rxy := math.Hypot(xn[0], xn[1])
	if rxy == 0 {
		return pts, fmt.Errorf("%w: node direction undefined", ErrNumericDomain)
	}
	cosnode, sinnode := xn[0]/rxy, xn[1]/rxy

	// inclination from the angular momentum
	h := [3]float64{
		x[1]*x[5] - x[2]*x[4],
		x[2]*x[3] - x[0]*x[5],
		x[0]*x[4] - x[1]*x[3],
	}
	hxy2 := h[0]*h[0] + h[1]*h[1]
	c2 := hxy2 + h[2]*h[2]
	sinincl := math.Sqrt(hxy2) / math.Sqrt(c2)
	if sinincl == 0 {
		return pts, fmt.Errorf("%w: orbit in the ecliptic plane has no node", ErrNumericDomain)
	}
	cosincl := math.Sqrt(1 - sinincl*sinincl)
	if h[2] < 0 {
		cosincl = -cosincl
	}
	cosu := x[0]*cosnode + x[1]*sinnode
	sinu := x[2] / sinincl
	uu := math.Atan2(sinu, cosu)

	r := norm(x[:3])
	v2 := dot(x[3:], x[3:])
	sema := 1 / (2/r - v2/gm)
	if sema <= 0 {
		return pts, fmt.Errorf("%w: osculating orbit is not an ellipse", ErrNumericDomain)
	}
	pp := c2 / gm
	ecce := math.Sqrt(math.Max(0, 1-pp/sema))
	if ecce == 0 {
		return pts, fmt.Errorf("%w: circular orbit has no apsides", ErrNumericDomain)
	}
	cosE := 1 / ecce * (1 - r/sema)
	sinE := 1 / ecce / math.Sqrt(sema*gm) * dot(x[:3], x[3:])
	k := math.Sqrt((1 + ecce) / (1 - ecce))
	ny := 2 * math.Atan(k*sinE/(1+cosE))

	// pericenter in the orbital plane, rotated to the ecliptic
	q := polCart([3]float64{radNorm(uu - ny), 0, sema * (1 - ecce)})
	q = cartPol(coortrf2(q, -sinincl, cosincl))
	q[0] += math.Atan2(sinnode, cosnode)
	a := [3]float64{radNorm(q[0] + math.Pi), -q[1], sema * (1 + ecce)}
	if focal {
		a[2] = sema * ecce * 2
	}

	// distances of the nodes on the ellipse
	nyNode := radNorm(ny - uu)
	nyNode2 := radNorm(nyNode + math.Pi)
	rn := sema * (1 - ecce*math.Cos(2*math.Atan(math.Tan(nyNode/2)/k)))
	rn2 := sema * (1 - ecce*math.Cos(2*math.Atan(math.Tan(nyNode2/2)/k)))
	ro, ro2 := norm(xn[:]), norm(xs[:])
	for j := 0; j <= 2; j++ {
		xn[j] *= rn / ro
		xs[j] *= rn2 / ro2
	}

	pts[0], pts[1] = xn, xs
	pts[2], pts[3] = polCart(q), polCart(a)
	return pts, nil
}
