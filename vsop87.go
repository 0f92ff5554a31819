// ./vsop87.go
package sweph

/*
Package sweph provides the VSOP87 heliocentric fallback for dates without ephemeris files.

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
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/pluto"
	"github.com/soniakeys/unit"
)

// vsop87Index maps a body to the planet number of the VSOP87 data files.
var vsop87Index = map[Body]int{
	Mercury: 0,
	Venus:   1,
	Earth:   2,
	Mars:    3,
	Jupiter: 4,
	Saturn:  5,
	Uranus:  6,
	Neptune: 7,
}

// VSOP87Provider computes heliocentric positions from the VSOP87B series (Pluto
// from the Meeus chapter 37 theory). It is much less precise than the ephemeris
// files and serves as a HeliocentricProvider only.
type VSOP87Provider struct {
	dir string
	log *logrus.Entry

	mu      sync.Mutex
	planets map[Body]*planetposition.V87Planet
}

// NewVSOP87Provider returns a provider loading the VSOP87B files from dir on first
// use. A nil logger selects the logrus standard logger.
func NewVSOP87Provider(dir string, logger *logrus.Logger) *VSOP87Provider {
	return &VSOP87Provider{
		dir:     dir,
		log:     newLogEntry(logger),
		planets: make(map[Body]*planetposition.V87Planet),
	}
}

func (p *VSOP87Provider) planet(body Body) (*planetposition.V87Planet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pl, ok := p.planets[body]; ok {
		return pl, nil
	}
	idx, ok := vsop87Index[body]
	if !ok {
		return nil, fmt.Errorf("%w: %d has no VSOP87 series", ErrUnsupportedBody, int(body))
	}
	pl, err := planetposition.LoadPlanetPath(idx, p.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: VSOP87 planet %d in %s: %v", ErrFileNotFound, idx, p.dir, err)
	}
	p.log.WithFields(logrus.Fields{"body": int(body), "dir": p.dir}).Debug("VSOP87 series loaded")
	p.planets[body] = pl
	return pl, nil
}

// eclipticJ2000 returns the heliocentric ecliptic longitude, latitude and radius
// referred to the J2000 equinox.
func (p *VSOP87Provider) eclipticJ2000(body Body, tjd float64) (l, b unit.Angle, r float64, err error) {
	if body == Pluto {
		l, b, r = pluto.Heliocentric(tjd)
		return l, b, r, nil
	}
	pl, err := p.planet(body)
	if err != nil {
		return 0, 0, 0, err
	}
	l, b, r = pl.Position2000(tjd)
	return l, b, r, nil
}

// position returns the heliocentric J2000 equatorial position.
func (p *VSOP87Provider) position(body Body, tjd float64) ([3]float64, error) {
	l, b, r, err := p.eclipticJ2000(body, tjd)
	if err != nil {
		return [3]float64{}, err
	}
	sb, cb := math.Sincos(b.Rad())
	sl, cl := math.Sincos(l.Rad())
	x := [3]float64{r * cb * cl, r * cb * sl, r * sb}
	return coortrf2(x, -seps2000, ceps2000), nil
}

// HeliocentricState returns the heliocentric J2000 equatorial state of body. The
// speed is a central difference over two planSpeedIntv.
func (p *VSOP87Provider) HeliocentricState(body Body, tjd float64) ([6]float64, error) {
	var x [6]float64
	if body == Sun {
		return x, nil
	}
	x0, err := p.position(body, tjd)
	if err != nil {
		return x, err
	}
	xm, err := p.position(body, tjd-planSpeedIntv)
	if err != nil {
		return x, err
	}
	xp, err := p.position(body, tjd+planSpeedIntv)
	if err != nil {
		return x, err
	}
	for i := 0; i < 3; i++ {
		x[i] = x0[i]
		x[i+3] = (xp[i] - xm[i]) / (2 * planSpeedIntv)
	}
	return x, nil
}
