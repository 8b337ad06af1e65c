package qscape

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStatevectorBackend(t *testing.T) {
	Convey("Given a statevector backend", t, func(c C) {
		backend := NewStatevectorBackend(42)

		Convey("When running a Hadamard on |0>", func(c C) {
			state, err := backend.Statevector(NewCircuit(1, 0).H(0))

			c.So(err, ShouldBeNil)
			c.So(real(state[0]), ShouldAlmostEqual, 1/math.Sqrt2)
			c.So(real(state[1]), ShouldAlmostEqual, 1/math.Sqrt2)
		})

		Convey("When running RY(pi) on |0>", func(c C) {
			state, err := backend.Statevector(NewCircuit(1, 0).RY(math.Pi, 0))

			c.So(err, ShouldBeNil)
			c.So(real(state[0]), ShouldAlmostEqual, 0)
			c.So(real(state[1]), ShouldAlmostEqual, 1)
		})

		Convey("When initializing amplitudes explicitly", func(c C) {
			amps := []float64{0.5, 0.5, 0.5, 0.5}
			state, err := backend.Statevector(NewCircuit(2, 0).InitializeAmplitudes(amps))

			c.So(err, ShouldBeNil)
			for i, a := range amps {
				c.So(real(state[i]), ShouldAlmostEqual, a)
			}
		})

		Convey("When a controlled rotation fires on a set control", func(c C) {
			circuit := NewCircuit(2, 0).
				InitializeAmplitudes([]float64{0, 0, 1, 0}).
				CRY(math.Pi, 1, 0)
			state, err := backend.Statevector(circuit)

			c.So(err, ShouldBeNil)
			c.So(real(state[2]), ShouldAlmostEqual, 0)
			c.So(real(state[3]), ShouldAlmostEqual, 1)
		})

		Convey("When sampling a deterministic outcome", func(c C) {
			circuit := NewCircuit(1, 1).RY(math.Pi, 0).Measure(0, 0)
			counts, err := backend.Sample(circuit, 200)

			c.So(err, ShouldBeNil)
			c.So(counts["1"], ShouldEqual, 200)
		})

		Convey("When sampling an even superposition", func(c C) {
			circuit := NewCircuit(1, 1).H(0).Measure(0, 0)
			counts, err := backend.Sample(circuit, 2000)

			c.So(err, ShouldBeNil)
			c.So(counts["0"]+counts["1"], ShouldEqual, 2000)
			c.So(counts["1"], ShouldBeBetween, 800, 1200)
		})

		Convey("When only part of the register is measured", func(c C) {
			circuit := NewCircuit(2, 1).
				RY(math.Pi, 0).
				H(1).
				Measure(0, 0)
			counts, err := backend.Sample(circuit, 100)

			c.So(err, ShouldBeNil)
			c.So(counts["1"], ShouldEqual, 100)
		})

		Convey("When the initialization does not match the register", func(c C) {
			_, err := backend.Statevector(NewCircuit(2, 0).InitializeAmplitudes([]float64{1, 0}))
			c.So(errors.Is(err, ErrBadDimension), ShouldBeTrue)
		})

		Convey("When the initialization is not normalized", func(c C) {
			_, err := backend.Statevector(NewCircuit(1, 0).InitializeAmplitudes([]float64{1, 1}))
			c.So(err, ShouldNotBeNil)
		})

		Convey("When a gate operand is out of range", func(c C) {
			_, err := backend.Statevector(NewCircuit(1, 0).H(3))
			c.So(errors.Is(err, ErrBadGate), ShouldBeTrue)

			_, err = backend.Statevector(NewCircuit(2, 0).CX(1, 1))
			c.So(errors.Is(err, ErrBadGate), ShouldBeTrue)
		})

		Convey("When sampling with no shots", func(c C) {
			_, err := backend.Sample(NewCircuit(1, 1).Measure(0, 0), 0)
			c.So(errors.Is(err, ErrBadShots), ShouldBeTrue)
		})
	})
}
