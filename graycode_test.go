package qscape

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func hammingDistance(a, b string) int {
	distance := 0
	for i := range a {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance
}

func TestMakeLine(t *testing.T) {
	Convey("Given the Gray-code line generator", t, func(c C) {
		Convey("When asked to cover six outcomes", func(c C) {
			line, err := MakeLine(6)

			c.So(err, ShouldBeNil)
			c.So(line, ShouldResemble, []string{"000", "100", "110", "010", "011", "111", "101", "001"})
		})

		Convey("When asked to cover a single outcome", func(c C) {
			line, err := MakeLine(1)

			c.So(err, ShouldBeNil)
			c.So(line, ShouldResemble, []string{"0", "1"})
		})

		Convey("When asked for any length up to 64", func(c C) {
			for length := 1; length <= 64; length++ {
				line, err := MakeLine(length)
				c.So(err, ShouldBeNil)

				// Smallest power of two covering the request.
				c.So(len(line), ShouldBeGreaterThanOrEqualTo, length)
				c.So(len(line)&(len(line)-1), ShouldEqual, 0)
				c.So(len(line), ShouldBeLessThan, 2*length+2)

				seen := make(map[string]bool, len(line))
				for i, entry := range line {
					c.So(len(entry), ShouldEqual, len(line[0]))
					c.So(seen[entry], ShouldBeFalse)
					seen[entry] = true

					if i > 0 {
						c.So(hammingDistance(line[i-1], entry), ShouldEqual, 1)
					}
				}
			}
		})

		Convey("When asked for a non-positive length", func(c C) {
			for _, length := range []int{0, -3} {
				_, err := MakeLine(length)
				c.So(errors.Is(err, ErrBadLength), ShouldBeTrue)
			}
		})
	})
}
