// interference.go
package qscape

import "fmt"

/*
Transform runs a height list through the full encode, evolve, decode
cycle: the list becomes the amplitudes of a simulated register, the build
function appends whatever gates should act on it, and the final state is
decoded back into a max-rescaled list. With a nil build the circuit is
empty and the call reduces to the round-trip identity.

Only gates that keep amplitudes real and non-negative decode faithfully;
RY, CRY and H compositions that stay in that regime are the intended mix.
*/
func Transform(backend Backend, heights []float64, build func(*Circuit)) ([]float64, error) {
	amps, err := EncodeAmplitudes(heights)
	if err != nil {
		return nil, err
	}

	qubits, err := Qubits(len(amps))
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	circuit := NewCircuit(qubits, 0).InitializeAmplitudes(amps)
	if build != nil {
		build(circuit)
	}

	state, err := backend.Statevector(circuit)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	return DecodeAmplitudes(state)
}

/*
Ripple applies a gentle interference pattern to a height list: a rotation
on the lowest qubit followed by a chain of half-angle controlled
rotations up the register. Because list-adjacent positions sit on
single-bit-different indices, the rotations bleed amplitude between
neighbouring heights and the decoded list comes back smoothed, with new
ripples where amplitudes reinforced or cancelled.
*/
func Ripple(backend Backend, heights []float64, theta float64) ([]float64, error) {
	return Transform(backend, heights, func(c *Circuit) {
		c.RY(theta, 0)
		for q := 1; q < c.Qubits; q++ {
			c.CRY(theta/2, q-1, q)
		}
	})
}
