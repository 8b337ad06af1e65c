// decoder.go
package qscape

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

/*
DecodeAmplitudes reads a simulated state vector back into a height list.

Each amplitude is squared into a probability, the outcome's bit-string is
matched against the line to recover the list position it encodes, and the
filled list is rescaled so its maximum entry is exactly 1. Squaring
discards phase and sign, so only states with real non-negative amplitudes
round-trip faithfully; general states are out of scope here.

Round-tripping a list through EncodeAmplitudes and DecodeAmplitudes with no
gates in between reproduces the input up to the uniform max rescale, with
padded positions decoding to zero.
*/
func DecodeAmplitudes(state []complex128) ([]float64, error) {
	n, err := Qubits(len(state))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	line, err := MakeLine(len(state))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	index := lineIndex(line)

	heights := make([]float64, len(state))
	for j, amp := range state {
		entry := fmt.Sprintf("%0*b", n, j)
		k, ok := index[entry]
		if !ok {
			return nil, fmt.Errorf("decode: %w: %q", ErrUnmatchedBitstring, entry)
		}
		heights[k] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	max := floats.Max(heights)
	if max <= 0 {
		return nil, fmt.Errorf("decode: %w", ErrZeroMax)
	}
	floats.Scale(1/max, heights)

	return heights, nil
}
