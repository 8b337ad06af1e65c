// oracle.go
package qscape

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/theapemachine/errnie"
)

/*
Seed is the fixed 4-element parameter set of a terrain. It is drawn once
per session and held constant, so the same seed always describes the same
landscape (up to shot-sampling noise). Components live in [0, 1]; that
range is what keeps the per-tile rotation steps below 45 degrees.
*/
type Seed [4]float64

// NewSeed draws a fresh seed from the given source.
func NewSeed(rng *rand.Rand) Seed {
	var s Seed
	for i := range s {
		s[i] = rng.Float64()
	}
	return s
}

// validate rejects non-finite or out-of-range components.
func (s Seed) validate() error {
	for i, v := range s {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w (component %d holds %v)", ErrBadSeed, i, v)
		}
	}
	return nil
}

/*
Oracle turns world coordinates into brightness levels by sampling a fixed
three-gate single-qubit circuit: a seed-scaled rotation, a Hadamard, a
second seed-scaled rotation, then a measurement. The sampled probability
of reading 1 is bucketed through the configured thresholds into a level
in 0..3.

The first rotation advances by at most 45 degrees per unit step on either
axis, which is what makes neighbouring tiles blend instead of flickering
between unrelated levels. Every call builds a fresh circuit; the oracle
itself holds nothing mutable.
*/
type Oracle struct {
	seed    Seed
	backend Backend
	config  *Config
}

// NewOracle wires a seed to a simulation backend. A nil config takes the
// defaults.
func NewOracle(seed Seed, backend Backend, config *Config) (*Oracle, error) {
	if err := seed.validate(); err != nil {
		return nil, fmt.Errorf("new oracle: %w", err)
	}
	if config == nil {
		config = NewConfig()
	}
	errnie.Info("NewOracle - seed %v, shots %d", seed, config.Shots)
	return &Oracle{seed: seed, backend: backend, config: config}, nil
}

// Seed returns the oracle's fixed parameter set.
func (o *Oracle) Seed() Seed { return o.seed }

// Brightness samples the oracle circuit at world coordinate (x, y) and
// returns the bucketed level 0..3.
func (o *Oracle) Brightness(x, y int) (int, error) {
	theta1, theta2 := o.angles(x, y)

	circuit := NewCircuit(1, 1).
		RY(theta1, 0).
		H(0).
		RY(theta2, 0).
		Measure(0, 0)

	counts, err := o.backend.Sample(circuit, o.config.Shots)
	if err != nil {
		return 0, fmt.Errorf("brightness at (%d, %d): %w", x, y, err)
	}

	p := float64(counts["1"]) / float64(o.config.Shots)
	return o.config.level(p), nil
}

// angles computes the two rotation angles, in radians, for a coordinate.
// Both terms scale a seed mix of the coordinates by 45 degrees.
func (o *Oracle) angles(x, y int) (float64, float64) {
	const degree = 2 * math.Pi / 360
	fx, fy := float64(x), float64(y)
	theta1 := (o.seed[0]*fx - o.seed[1]*fy) * 45 * degree
	theta2 := (o.seed[2]*fx + o.seed[3]*fy*fy) * 45 * degree
	return theta1, theta2
}
