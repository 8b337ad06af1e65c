package qscape

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func toState(amps []float64) []complex128 {
	state := make([]complex128, len(amps))
	for i, a := range amps {
		state[i] = complex(a, 0)
	}
	return state
}

func TestDecodeAmplitudes(t *testing.T) {
	Convey("Given an encoded height list", t, func(c C) {
		heights := []float64{0.5, 0.63, 0.77, 1, 0.75, 0.5}
		amps, err := EncodeAmplitudes(heights)
		c.So(err, ShouldBeNil)

		Convey("When decoding with no gates in between", func(c C) {
			decoded, err := DecodeAmplitudes(toState(amps))

			c.So(err, ShouldBeNil)
			c.So(decoded, ShouldHaveLength, 8)

			for j, h := range heights {
				c.So(decoded[j], ShouldAlmostEqual, h)
			}
			c.So(decoded[6], ShouldAlmostEqual, 0)
			c.So(decoded[7], ShouldAlmostEqual, 0)
		})

		Convey("When decoding any non-zero probability vector", func(c C) {
			rng := rand.New(rand.NewSource(7))

			for trial := 0; trial < 50; trial++ {
				dim := 1 << (1 + rng.Intn(4))
				probs := make([]float64, dim)
				total := 0.0
				for i := range probs {
					probs[i] = rng.Float64()
					total += probs[i]
				}

				state := make([]complex128, dim)
				for i, p := range probs {
					state[i] = complex(math.Sqrt(p/total), 0)
				}

				decoded, err := DecodeAmplitudes(state)
				c.So(err, ShouldBeNil)

				max := 0.0
				for _, v := range decoded {
					c.So(v, ShouldBeBetweenOrEqual, 0, 1)
					if v > max {
						max = v
					}
				}
				c.So(max, ShouldAlmostEqual, 1)
			}
		})

		Convey("When the state has no probability mass", func(c C) {
			_, err := DecodeAmplitudes(make([]complex128, 4))
			c.So(errors.Is(err, ErrZeroMax), ShouldBeTrue)
		})

		Convey("When the state dimension is not a power of two", func(c C) {
			for _, dim := range []int{0, 1, 3, 6} {
				_, err := DecodeAmplitudes(make([]complex128, dim))
				c.So(errors.Is(err, ErrBadDimension), ShouldBeTrue)
			}
		})
	})
}
