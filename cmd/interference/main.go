package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/theapemachine/qscape"
)

// Demonstrates amplitude encoding: a height list goes into a simulated
// register, interference gates stir it, and the decoded list comes back
// with ripples where amplitudes reinforced or cancelled.
func main() {
	theta := flag.Float64("theta", math.Pi/8, "mixing angle in radians")
	flag.Parse()

	heights := []float64{0.5, 0.63, 0.77, 1, 0.75, 0.5}
	backend := qscape.NewStatevectorBackend(time.Now().UnixNano())

	roundTrip, err := qscape.Transform(backend, heights, nil)
	if err != nil {
		log.Fatal(err)
	}

	rippled, err := qscape.Ripple(backend, heights, *theta)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("original heights:")
	spew.Dump(heights)

	fmt.Println("decoded with no gates (max-rescaled, padded positions are zero):")
	spew.Dump(roundTrip)

	fmt.Printf("after ripple with theta = %.4f:\n", *theta)
	spew.Dump(rippled)
}
