// circuit.go
package qscape

// GateKind identifies a gate supported by the capability interface.
type GateKind int

const (
	GateH GateKind = iota
	GateRX
	GateRY
	GateRZ
	GateCX
	GateCZ
	GateCRY
	GateMeasure
)

// Gate is one operation in a circuit description. Control is only
// meaningful for the controlled kinds, Theta only for rotations, and for
// GateMeasure the Control field names the classical bit receiving the
// outcome.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
	Theta   float64
}

/*
Circuit is an immutable-by-convention description of a simulated circuit:
a register width, an optional explicit amplitude initialization, and an
ordered gate list. Callers build a fresh Circuit per run instead of
resetting a shared handle, so no state leaks between calls.
*/
type Circuit struct {
	Qubits     int
	Clbits     int
	Amplitudes []float64
	Gates      []Gate
}

// NewCircuit describes an empty circuit over the given register widths.
func NewCircuit(qubits, clbits int) *Circuit {
	return &Circuit{Qubits: qubits, Clbits: clbits}
}

// InitializeAmplitudes sets the starting state to an explicit real-valued
// vector instead of |0...0>. The slice is copied.
func (c *Circuit) InitializeAmplitudes(amps []float64) *Circuit {
	c.Amplitudes = append([]float64(nil), amps...)
	return c
}

// H appends a Hadamard on qubit q.
func (c *Circuit) H(q int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateH, Target: q, Control: -1})
	return c
}

// RX appends a rotation about the X axis on qubit q.
func (c *Circuit) RX(theta float64, q int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateRX, Target: q, Control: -1, Theta: theta})
	return c
}

// RY appends a rotation about the Y axis on qubit q.
func (c *Circuit) RY(theta float64, q int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateRY, Target: q, Control: -1, Theta: theta})
	return c
}

// RZ appends a rotation about the Z axis on qubit q.
func (c *Circuit) RZ(theta float64, q int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateRZ, Target: q, Control: -1, Theta: theta})
	return c
}

// CX appends a controlled-X with the given control and target qubits.
func (c *Circuit) CX(control, target int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateCX, Target: target, Control: control})
	return c
}

// CZ appends a controlled-Z with the given control and target qubits.
func (c *Circuit) CZ(control, target int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateCZ, Target: target, Control: control})
	return c
}

// CRY appends a controlled rotation about the Y axis.
func (c *Circuit) CRY(theta float64, control, target int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateCRY, Target: target, Control: control, Theta: theta})
	return c
}

// Measure records that qubit q is read out into classical bit clbit.
func (c *Circuit) Measure(q, clbit int) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateMeasure, Target: q, Control: clbit})
	return c
}

// validate checks every gate operand against the register widths.
func (c *Circuit) validate() error {
	for _, g := range c.Gates {
		if g.Target < 0 || g.Target >= c.Qubits {
			return ErrBadGate
		}
		switch g.Kind {
		case GateCX, GateCZ, GateCRY:
			if g.Control < 0 || g.Control >= c.Qubits || g.Control == g.Target {
				return ErrBadGate
			}
		case GateMeasure:
			if g.Control < 0 || g.Control >= c.Clbits {
				return ErrBadGate
			}
		}
	}
	return nil
}
