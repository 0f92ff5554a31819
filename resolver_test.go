// ./resolver_test.go
package sweph

/*
Package sweph provides tests of the dependency resolution.

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencySnapshot(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	ctx := newEphemerisContext(Mars, fixtureEpoch, FlagSwiEph, e.models, e.resolver, nil)

	_, err := e.resolver.Resolve(ctx, Mars)
	require.NoError(t, err)
	s := ctx.snapshot(fixtureEpoch)
	assert.Equal(t, 1, s.next, "Mars needs the Sun only")
	assert.Equal(t, 431, s.denum)

	require.NoError(t, ctx.prepare())
	assert.Equal(t, len(dependencyOrder), s.next)
	assert.Same(t, s, ctx.snapshot(fixtureEpoch))
	assert.Equal(t, 431, ctx.DENumber)

	// prepare stores what the resolver computed
	earth, err := e.resolver.dependency(ctx, depEarth, fixtureEpoch)
	require.NoError(t, err)
	assert.Equal(t, earth, ctx.Earth.X)
	assert.Equal(t, ctx.Earth.X, ctx.Observer.X)
	sun := fxSun.at(fixtureEpoch)
	assert.InDeltaSlice(t, sun[:], ctx.Sun.X[:], 1e-8)

	// another instant gets its own snapshot
	assert.NotSame(t, s, ctx.snapshot(fixtureEpoch-0.01))
}

func TestPrepareSkipsEarthForHeliocentric(t *testing.T) {
	e := newTestEphemeris(t, Config{})
	for _, flags := range []Flag{FlagHelCtr, FlagBaryCtr} {
		ctx := newEphemerisContext(Mars, fixtureEpoch, flags, e.models, e.resolver, nil)
		require.NoError(t, ctx.prepare())
		assert.Equal(t, 1, ctx.snapshot(fixtureEpoch).next)
		assert.Zero(t, ctx.have&haveEarth)
		assert.NotZero(t, ctx.have&haveObserver)
	}
}

func TestDependencyString(t *testing.T) {
	var names []string
	for _, d := range dependencyOrder {
		names = append(names, d.String())
	}
	assert.Equal(t, []string{"sun", "emb", "moon", "earth"}, names)
	assert.Equal(t, "dependency(9)", dependency(9).String())
}

func TestFallbackAllowed(t *testing.T) {
	assert.True(t, fallbackAllowed(fmt.Errorf("x: %w", ErrFileNotFound)))
	assert.True(t, fallbackAllowed(fmt.Errorf("x: %w", ErrOutOfRange)))
	assert.False(t, fallbackAllowed(fmt.Errorf("x: %w", ErrCorruptData)))
	assert.False(t, fallbackAllowed(ErrNotAvailable))
}

func TestEmbHelSunSlot(t *testing.T) {
	// The Sun slot holds the heliocentric EMB: the barycentric Sun is EMB - slot.
	dir := t.TempDir()
	helEMB := linearBody{seiSunBary, flgEmbHel, 4, [3]float64{-0.185, 0.893, 0.389}, [3]float64{-0.0172, -0.0031, -0.0013}}
	writeFixture(t, dir, fixtureFile{
		Name:     "sepl_18.se1",
		DENumber: 406,
		Bodies:   []fixtureBody{fxEMB.fixture(), helEMB.fixture()},
	})
	writeFixture(t, dir, fixtureFile{Name: "semo_18.se1", DENumber: 406, Bodies: []fixtureBody{fxMoon.fixture()}})
	e := newTestEphemeris(t, Config{EphePath: dir})

	sun, err := e.RawState(Sun, fixtureEpoch, 0)
	require.NoError(t, err)
	emb, hel := fxEMB.at(fixtureEpoch), helEMB.at(fixtureEpoch)
	for i := range emb {
		assert.InDelta(t, emb[i]-hel[i], sun.X[i], 1e-8)
	}
}
