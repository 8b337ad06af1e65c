package qscape

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTransform(t *testing.T) {
	Convey("Given a height list and a backend", t, func(c C) {
		heights := []float64{0.5, 0.63, 0.77, 1, 0.75, 0.5}
		backend := NewStatevectorBackend(11)

		Convey("When transforming with no gates", func(c C) {
			decoded, err := Transform(backend, heights, nil)

			c.So(err, ShouldBeNil)
			for j, h := range heights {
				c.So(decoded[j], ShouldAlmostEqual, h)
			}
			c.So(decoded[6], ShouldAlmostEqual, 0)
			c.So(decoded[7], ShouldAlmostEqual, 0)
		})

		Convey("When applying a ripple", func(c C) {
			rippled, err := Ripple(backend, heights, math.Pi/4)

			c.So(err, ShouldBeNil)
			c.So(rippled, ShouldHaveLength, 8)

			max := 0.0
			for _, v := range rippled {
				c.So(v, ShouldBeBetweenOrEqual, 0, 1)
				if v > max {
					max = v
				}
			}
			c.So(max, ShouldAlmostEqual, 1)

			Convey("Then the interference changed the list", func(c C) {
				drift := 0.0
				for j, h := range heights {
					drift += math.Abs(rippled[j] - h)
				}
				if drift <= 0.01 {
					spew.Dump(rippled)
				}
				c.So(drift, ShouldBeGreaterThan, 0.01)
			})
		})

		Convey("When the list cannot be encoded", func(c C) {
			_, err := Transform(backend, []float64{0, 0}, nil)
			c.So(err, ShouldNotBeNil)
		})
	})
}
