// ./pipeline.go
package sweph

/*
Package sweph provides the pipeline turning a barycentric state into an apparent position.

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

import "fmt"

// TransformState is the vector moving through the pipeline together with the
// intermediate results the later stages need.
type TransformState struct {
	// X is the working state, AU and AU/day, or polar after the polar stage.
	X [6]float64
	// Target is the geometric barycentric J2000 state of the body at TT.
	Target [6]float64

	// LightTime is the light-time in days, zero when not applied.
	LightTime float64
	lightTime bool
	xxsp      [3]float64 // change of the light-time corrected position during one day
	obsLT     [6]float64 // observer at TT - LightTime

	nutated bool

	// Cartesian snapshots on the true (or mean) equator and ecliptic of date.
	Equatorial [6]float64
	Ecliptic   [6]float64
	// Polar counterparts: longitude, latitude, distance and their speeds.
	EquatorialPolar [6]float64
	EclipticPolar   [6]float64
}

func newTransformState(target StateVector) *TransformState {
	return &TransformState{X: target.X, Target: target.X}
}

// TransformStage is one correction of the pipeline. A stage that is not Enabled
// for the flags of a call leaves the state untouched.
type TransformStage interface {
	Name() string
	Enabled(flags Flag) bool
	Apply(st *TransformState, ctx *EphemerisContext) error
}

// TransformPipeline runs its stages in a fixed order. Each stage relies on the
// ones before it, so the order is never changed after construction.
type TransformPipeline struct {
	stages []TransformStage
}

// NewTransformPipeline returns the pipeline in physical order: light-time and the
// change of origin first, then the corrections depending on the direction of the
// light, then the frame rotations and the coordinate conversions.
func NewTransformPipeline() *TransformPipeline {
	return &TransformPipeline{stages: []TransformStage{
		lightTimeStage{},
		zeroSpeedStage{},
		centerStage{},
		deflectionStage{},
		aberrationStage{},
		biasStage{},
		precessionStage{},
		nutationStage{},
		equatorialSnapshotStage{},
		eclipticStage{},
		eclipticSnapshotStage{},
		polarStage{},
		degreesStage{},
	}}
}

// Stages returns the names of the stages in execution order.
func (p *TransformPipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Run applies the enabled stages to st. The first failing stage aborts the run.
func (p *TransformPipeline) Run(st *TransformState, ctx *EphemerisContext) error {
	for _, s := range p.stages {
		if !s.Enabled(ctx.Flags) {
			continue
		}
		if err := s.Apply(st, ctx); err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	return nil
}
