package qscape

import "errors"

var (
	// ErrBadLength is returned when a line is requested for a non-positive count.
	ErrBadLength = errors.New("line length must be at least 1")

	// ErrZeroSum is returned when a height list is empty or sums to zero,
	// which leaves no probability mass to distribute.
	ErrZeroSum = errors.New("height list is empty or sums to zero")

	// ErrNegativeHeight is returned when a height list contains a negative
	// or non-finite value.
	ErrNegativeHeight = errors.New("heights must be finite and non-negative")

	// ErrZeroMax is returned when a decoded distribution has no non-zero
	// entry to rescale against.
	ErrZeroMax = errors.New("decoded distribution has zero maximum")

	// ErrUnmatchedBitstring is returned when an outcome index has no
	// position on the line. The reflected construction covers every
	// index, so this only fires on a corrupted line.
	ErrUnmatchedBitstring = errors.New("no line position for bit-string")

	// ErrBadDimension is returned when a state vector or amplitude slice
	// is not a power-of-two length matching the register.
	ErrBadDimension = errors.New("state dimension must be a power of two matching the register")

	// ErrBadSeed is returned when a seed component falls outside [0, 1].
	ErrBadSeed = errors.New("seed components must be finite values in [0, 1]")

	// ErrBadGate is returned when a gate references a qubit or classical
	// bit outside the circuit.
	ErrBadGate = errors.New("gate operand out of range")

	// ErrBadShots is returned when sampling is requested with fewer than
	// one shot.
	ErrBadShots = errors.New("shot count must be at least 1")
)
