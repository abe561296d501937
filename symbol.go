package huffman

import (
	"cmp"
	"slices"
)

// Symbol is the constraint satisfied by every symbol type.  Symbols are
// compared for equality when encoding, and ordered only so that tables can be
// walked deterministically.
type Symbol interface {
	cmp.Ordered
}

// FrequencyTable maps each Symbol to its number of occurrences.
type FrequencyTable[S Symbol] map[S]uint64

// CountFrequencies tallies the occurrences of each symbol in a single pass.
func CountFrequencies[S Symbol](symbols []S) FrequencyTable[S] {
	freq := make(FrequencyTable[S])
	for _, symbol := range symbols {
		freq[symbol]++
	}
	return freq
}

// Symbols returns the table's symbols in ascending order.
func (freq FrequencyTable[S]) Symbols() []S {
	out := make([]S, 0, len(freq))
	for symbol := range freq {
		out = append(out, symbol)
	}
	slices.Sort(out)
	return out
}

// Total returns the sum of all frequencies, saturating at math.MaxUint64.
func (freq FrequencyTable[S]) Total() uint64 {
	var sum uint64
	for _, count := range freq {
		sum = saturatingAdd(sum, count)
	}
	return sum
}
