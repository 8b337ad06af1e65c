// simulator.go
package qscape

/*
Backend is the capability surface a circuit simulator must provide. The
encoder, decoder, interference transform and brightness oracle only ever
talk to this interface, so any compliant simulation backend can be swapped
in without touching their logic.

Sample runs the circuit for the requested number of shots and returns
outcome counts keyed by measured bit-string (MSB-first over classical
bits, or over all qubits when the circuit holds no measure gate).
Statevector runs the circuit once and returns the full amplitude vector,
indexed by the integer value of each outcome's bit-string. Both calls
block until the run completes.
*/
type Backend interface {
	Sample(c *Circuit, shots int) (map[string]int, error)
	Statevector(c *Circuit) ([]complex128, error)
}
