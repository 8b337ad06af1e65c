// statevector.go
package qscape

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

/*
StatevectorBackend is the reference Backend: a dense state-vector
simulator over complex128 amplitudes. Gates are applied by iterating the
vector in bit-mask pairs, and shot sampling draws outcomes from the final
probability distribution with the backend's own random source.

The backend holds no per-circuit state; every run starts from the
circuit's declared initialization. It is meant for the single-caller
pattern and does no locking.
*/
type StatevectorBackend struct {
	rng *rand.Rand
}

// NewStatevectorBackend creates a backend whose shot sampling is driven
// by the given seed. Fixed seeds give reproducible counts.
func NewStatevectorBackend(seed int64) *StatevectorBackend {
	return &StatevectorBackend{rng: rand.New(rand.NewSource(seed))}
}

// Statevector runs the circuit once and returns the final amplitudes,
// indexed by the integer value of each outcome's bit-string.
func (b *StatevectorBackend) Statevector(c *Circuit) ([]complex128, error) {
	return b.evolve(c)
}

// Sample runs the circuit and draws shots outcomes from the final
// distribution, returning counts keyed by measured bit-string.
func (b *StatevectorBackend) Sample(c *Circuit, shots int) (map[string]int, error) {
	if shots < 1 {
		return nil, fmt.Errorf("sample: %w (got %d)", ErrBadShots, shots)
	}

	state, err := b.evolve(c)
	if err != nil {
		return nil, err
	}

	probs := make([]float64, len(state))
	total := 0.0
	for i, amp := range state {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		probs[i] = p
		total += p
	}

	counts := make(map[string]int)
	for shot := 0; shot < shots; shot++ {
		r := b.rng.Float64() * total
		cumulative := 0.0
		idx := len(probs) - 1
		for i, p := range probs {
			cumulative += p
			if r <= cumulative {
				idx = i
				break
			}
		}
		counts[outcomeKey(c, idx)]++
	}

	return counts, nil
}

// evolve builds the starting state and applies the gate list in order.
func (b *StatevectorBackend) evolve(c *Circuit) ([]complex128, error) {
	if c.Qubits < 1 {
		return nil, fmt.Errorf("evolve: %w (register of %d qubits)", ErrBadDimension, c.Qubits)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("evolve: %w", err)
	}

	dim := 1 << c.Qubits
	state := make([]complex128, dim)
	if c.Amplitudes == nil {
		state[0] = 1
	} else {
		if len(c.Amplitudes) != dim {
			return nil, fmt.Errorf("evolve: %w (%d amplitudes for %d qubits)", ErrBadDimension, len(c.Amplitudes), c.Qubits)
		}
		norm := 0.0
		for i, a := range c.Amplitudes {
			state[i] = complex(a, 0)
			norm += a * a
		}
		if math.Abs(norm-1) > 1e-9 {
			return nil, fmt.Errorf("evolve: initial state is not normalized (squared norm %g)", norm)
		}
	}

	for _, g := range c.Gates {
		switch g.Kind {
		case GateH:
			applyH(state, g.Target)
		case GateRX:
			applyRX(state, g.Target, g.Theta)
		case GateRY:
			applyRY(state, g.Target, g.Theta)
		case GateRZ:
			applyRZ(state, g.Target, g.Theta)
		case GateCX:
			applyCX(state, g.Control, g.Target)
		case GateCZ:
			applyCZ(state, g.Control, g.Target)
		case GateCRY:
			applyCRY(state, g.Control, g.Target, g.Theta)
		case GateMeasure:
			// Measurement only matters for sampling; the statevector
			// evolution leaves it to outcomeKey.
		}
	}

	return state, nil
}

func applyH(state []complex128, q int) {
	factor := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range state {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := state[i], state[j]
			state[i] = factor * (a0 + a1)
			state[j] = factor * (a0 - a1)
		}
	}
}

func applyRX(state []complex128, q int, theta float64) {
	cos := complex(math.Cos(theta/2), 0)
	jsin := complex(0, -math.Sin(theta/2))
	bit := 1 << q
	for i := range state {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := state[i], state[j]
			state[i] = cos*a0 + jsin*a1
			state[j] = jsin*a0 + cos*a1
		}
	}
}

func applyRY(state []complex128, q int, theta float64) {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(math.Sin(theta/2), 0)
	bit := 1 << q
	for i := range state {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := state[i], state[j]
			state[i] = cos*a0 - sin*a1
			state[j] = sin*a0 + cos*a1
		}
	}
}

func applyRZ(state []complex128, q int, theta float64) {
	phase := complex(math.Cos(theta/2), math.Sin(theta/2))
	conj := complex(math.Cos(theta/2), -math.Sin(theta/2))
	bit := 1 << q
	for i := range state {
		if i&bit != 0 {
			state[i] *= phase
		} else {
			state[i] *= conj
		}
	}
}

func applyCX(state []complex128, control, target int) {
	cb, tb := 1<<control, 1<<target
	for i := range state {
		if i&cb != 0 && i&tb == 0 {
			j := i | tb
			state[i], state[j] = state[j], state[i]
		}
	}
}

func applyCZ(state []complex128, control, target int) {
	cb, tb := 1<<control, 1<<target
	for i := range state {
		if i&cb != 0 && i&tb != 0 {
			state[i] *= -1
		}
	}
}

func applyCRY(state []complex128, control, target int, theta float64) {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(math.Sin(theta/2), 0)
	cb, tb := 1<<control, 1<<target
	for i := range state {
		if i&cb != 0 && i&tb == 0 {
			j := i | tb
			a0, a1 := state[i], state[j]
			state[i] = cos*a0 - sin*a1
			state[j] = sin*a0 + cos*a1
		}
	}
}

/*
outcomeKey renders one sampled state index as the bit-string a run would
report. With measure gates present the string covers the classical
register MSB-first, each bit read from the qubit measured into it; with
no measure gates every qubit is reported.
*/
func outcomeKey(c *Circuit, idx int) string {
	measured := make(map[int]int, c.Clbits)
	for _, g := range c.Gates {
		if g.Kind == GateMeasure {
			measured[g.Control] = g.Target
		}
	}

	if len(measured) == 0 {
		return fmt.Sprintf("%0*b", c.Qubits, idx)
	}

	var out strings.Builder
	for cl := c.Clbits - 1; cl >= 0; cl-- {
		q, ok := measured[cl]
		if ok && idx&(1<<q) != 0 {
			out.WriteByte('1')
		} else {
			out.WriteByte('0')
		}
	}
	return out.String()
}
