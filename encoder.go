// encoder.go
package qscape

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
EncodeAmplitudes turns a list of non-negative heights into a real-valued
state vector ready for amplitude initialization of a simulated register.

The heights are normalized into a unit-sum distribution and each list
position j is routed to the vector index named by line entry j, so that
list-adjacent heights land on single-bit-different indices. The returned
vector has length 2^n for the smallest n covering the list, its squared
entries reproduce the normalized heights, and its L2 norm is 1. Indices
with no list position stay zero.
*/
func EncodeAmplitudes(heights []float64) ([]float64, error) {
	if len(heights) == 0 {
		return nil, fmt.Errorf("encode: %w", ErrZeroSum)
	}

	line, err := MakeLine(len(heights))
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	for j, h := range heights {
		if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
			return nil, fmt.Errorf("encode: %w (position %d holds %v)", ErrNegativeHeight, j, h)
		}
	}

	total := floats.Sum(heights)
	if total <= 0 {
		return nil, fmt.Errorf("encode: %w", ErrZeroSum)
	}
	renorm := math.Sqrt(total)

	amps := make([]float64, len(line))
	for j, h := range heights {
		amps[outcomeValue(line[j])] = math.Sqrt(h) / renorm
	}

	return amps, nil
}

// Qubits reports the register width implied by a state dimension, or an
// error when dim is not a power of two at least 2.
func Qubits(dim int) (int, error) {
	if dim < 2 || dim&(dim-1) != 0 {
		return 0, fmt.Errorf("qubits: %w (dimension %d)", ErrBadDimension, dim)
	}
	n := 0
	for 1<<n < dim {
		n++
	}
	return n, nil
}
