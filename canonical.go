package huffman

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/chronos-tachyon/assert"
)

// CanonicalTable constructs the canonical Huffman code for the given bit
// lengths, one per symbol.  Symbols with an assigned bit length of 0 are
// omitted from the code entirely.
//
// Codes are assigned in order of (length, symbol) ascending, each code being
// the previous code plus one, shifted left whenever the length grows.  Two
// parties that agree on the lengths therefore agree on every code, so the
// lengths are all that needs to be transmitted.
//
// Not all inputs are valid.  Lengths that over-subscribe the code space, or
// leave part of it unused, are rejected with ErrInvalidCode.  The degenerate
// code consisting of one symbol of length 1 is permitted, as there is no way
// to construct a complete code for a single symbol.  If no symbol has a
// non-zero length, CanonicalTable returns ErrEmptyInput.
func CanonicalTable[S Symbol](sizes map[S]int) (*Table[S], error) {
	// Step 1: sort the symbols by (size, symbol) ascending.

	sorted := make(bySize[S], 0, len(sizes))
	var maxSize int
	for symbol, size := range sizes {
		if size < 0 {
			return nil, fmt.Errorf("negative bit length %d for symbol %v: %w", size, symbol, ErrInvalidCode)
		}
		if size == 0 {
			continue
		}
		sorted = append(sorted, symbolAndSize[S]{symbol, size})
		if maxSize < size {
			maxSize = size
		}
	}
	if len(sorted) == 0 {
		return nil, ErrEmptyInput
	}

	// A complete code over n >= 2 symbols never needs more than n-1 bits.
	if len(sorted) > 1 && maxSize > len(sorted)-1 {
		return nil, fmt.Errorf("bit length %d exceeds %d, the longest possible for %d symbols: %w", maxSize, len(sorted)-1, len(sorted), ErrInvalidCode)
	}
	sorted.Sort()

	// Step 2: check that the lengths describe a complete code, i.e. that
	// the Kraft sum is exactly 1.  Working from the longest codes up, the
	// nodes at each level must pair off into the level above, and exactly
	// one node must remain at the root.

	if len(sorted) == 1 {
		if sorted[0].size != 1 {
			return nil, fmt.Errorf("degenerate Huffman code: lone symbol has length %d, expected 1: %w", sorted[0].size, ErrInvalidCode)
		}
	} else {
		countBySize := make([]int, maxSize+1)
		for _, item := range sorted {
			countBySize[item.size]++
		}
		var carry int
		for size := maxSize; size > 0; size-- {
			n := countBySize[size] + carry
			if n&1 != 0 {
				return nil, fmt.Errorf("degenerate Huffman code: %d node(s) at depth %d cannot pair off: %w", n, size, ErrInvalidCode)
			}
			carry = n >> 1
		}
		if carry != 1 {
			return nil, fmt.Errorf("degenerate Huffman code: expected 1 root, got %d: %w", carry, ErrInvalidCode)
		}
	}

	// Step 3: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	codes := make(map[S]Code, len(sorted))
	nextCode := make([]uint, sorted[0].size)
	for _, item := range sorted {
		for len(nextCode) < item.size {
			nextCode = append(nextCode, 0)
		}
		var hc Code
		for _, bit := range nextCode {
			hc.bits.Append(bit)
		}
		codes[item.symbol] = hc
		incrementBits(nextCode)
	}
	return newTable(codes), nil
}

// Canonical returns the canonical code with the same bit length for every
// symbol as this one.  It encodes any input to the same number of bits.
func (t *Table[S]) Canonical() *Table[S] {
	out, err := CanonicalTable(t.SizeBySymbol())
	assert.Assertf(err == nil, "Huffman table is not a complete prefix code: %v", err)
	return out
}

// TreeFromTable rebuilds a decoding tree from a prefix-free table.  Leaf
// frequencies are taken from freq, which may be nil; inner nodes hold the sum
// of their leaves.
//
// The table's codes must form a complete prefix code, as produced by
// DeriveTable or CanonicalTable; otherwise TreeFromTable returns
// ErrInvalidCode.  A table with a single symbol yields a lone leaf.
func TreeFromTable[S Symbol](table *Table[S], freq FrequencyTable[S]) (*Node[S], error) {
	if table == nil || table.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if table.Len() == 1 {
		symbol := table.symbols[0]
		return newLeaf(symbol, freq[symbol]), nil
	}

	root := &trieNode[S]{}
	for _, symbol := range table.symbols {
		hc := table.codes[symbol]
		if hc.Len() == 0 {
			return nil, fmt.Errorf("empty code for symbol %v: %w", symbol, ErrInvalidCode)
		}
		cur := root
		for i := 0; i < hc.Len(); i++ {
			if cur.isLeaf {
				return nil, fmt.Errorf("code for symbol %v extends the code for %v: %w", symbol, cur.symbol, ErrInvalidCode)
			}
			bit := hc.Bit(i)
			if cur.child[bit] == nil {
				cur.child[bit] = &trieNode[S]{}
			}
			cur = cur.child[bit]
		}
		if cur.isLeaf || cur.child[0] != nil || cur.child[1] != nil {
			return nil, fmt.Errorf("code %s for symbol %v is a prefix of another code: %w", hc, symbol, ErrInvalidCode)
		}
		cur.isLeaf = true
		cur.symbol = symbol
	}
	return root.freeze(freq)
}

// type trieNode {{{

type trieNode[S Symbol] struct {
	child  [2]*trieNode[S]
	isLeaf bool
	symbol S
}

func (tn *trieNode[S]) freeze(freq FrequencyTable[S]) (*Node[S], error) {
	if tn.isLeaf {
		return newLeaf(tn.symbol, freq[tn.symbol]), nil
	}
	if tn.child[0] == nil || tn.child[1] == nil {
		return nil, fmt.Errorf("incomplete prefix code: %w", ErrInvalidCode)
	}
	left, err := tn.child[0].freeze(freq)
	if err != nil {
		return nil, err
	}
	right, err := tn.child[1].freeze(freq)
	if err != nil {
		return nil, err
	}
	return newInner(left, right), nil
}

// }}}

// type symbolAndSize + type bySize {{{

type symbolAndSize[S Symbol] struct {
	symbol S
	size   int
}

type bySize[S Symbol] []symbolAndSize[S]

func (list bySize[S]) Sort() {
	slices.SortFunc(list, func(a, b symbolAndSize[S]) int {
		if a.size != b.size {
			return a.size - b.size
		}
		return cmp.Compare(a.symbol, b.symbol)
	})
}

// }}}

// incrementBits adds 1 to a big-endian sequence of bits in place, wrapping to
// all zeros on overflow.
func incrementBits(bits []uint) {
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] == 0 {
			bits[i] = 1
			return
		}
		bits[i] = 0
	}
}
