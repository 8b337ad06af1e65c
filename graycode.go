// graycode.go
package qscape

import (
	"fmt"
	"strconv"
)

/*
MakeLine builds an ordered sequence of fixed-width bit-strings covering at
least length outcomes. The sequence is a binary reflected Gray code: it has
exactly 2^n entries for the smallest n with 2^n >= length, every entry is
distinct, and any two sequence-adjacent entries differ in exactly one symbol.

The code is built by repeated reflection. Starting from ["0", "1"], each
round appends the reversed sequence to itself, then suffixes "0" onto the
first half and "1" onto the second. Suffixing rather than prefixing makes
the construction MSB-first; the decoder relies on this exact bit ordering.
*/
func MakeLine(length int) ([]string, error) {
	if length < 1 {
		return nil, fmt.Errorf("make line: %w (got %d)", ErrBadLength, length)
	}

	n := 1
	for 1<<n < length {
		n++
	}

	line := []string{"0", "1"}
	for bit := 1; bit < n; bit++ {
		doubled := make([]string, 0, len(line)*2)
		doubled = append(doubled, line...)
		for i := len(line) - 1; i >= 0; i-- {
			doubled = append(doubled, line[i])
		}
		half := len(doubled) / 2
		for i := range doubled {
			if i < half {
				doubled[i] += "0"
			} else {
				doubled[i] += "1"
			}
		}
		line = doubled
	}

	return line, nil
}

// lineIndex inverts a line: it maps each bit-string back to its position.
func lineIndex(line []string) map[string]int {
	index := make(map[string]int, len(line))
	for k, s := range line {
		index[s] = k
	}
	return index
}

// outcomeValue parses a line entry as its MSB-first integer value, giving
// the state-vector index that entry addresses.
func outcomeValue(entry string) int {
	v, err := strconv.ParseInt(entry, 2, 64)
	if err != nil {
		// Entries come from MakeLine and are always valid binary.
		panic(fmt.Sprintf("malformed line entry %q: %v", entry, err))
	}
	return int(v)
}
