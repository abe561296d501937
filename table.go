package huffman

import (
	"bytes"
	"fmt"
	"io"
	"slices"
)

// Table maps each symbol of a Huffman code to its Code.  A Table is never
// modified after it is built.
type Table[S Symbol] struct {
	codes   map[S]Code
	symbols []S
	minSize int
	maxSize int
}

// DeriveTable walks the tree depth-first, left before right, and assigns each
// leaf the path leading to it: 0 for each left branch, 1 for each right
// branch.  The resulting code is prefix-free because every symbol has its own
// leaf.
//
// A tree consisting of a single leaf has no branches; its symbol is assigned
// the one-bit code "0" so that every code occupies at least one bit.
//
// DeriveTable returns ErrEmptyInput if root is nil.
func DeriveTable[S Symbol](root *Node[S]) (*Table[S], error) {
	if root == nil {
		return nil, ErrEmptyInput
	}

	codes := make(map[S]Code, root.Leaves())
	if root.IsLeaf() {
		codes[root.symbol] = MakeCode(1, 0)
	} else {
		root.walkCodes(func(n *Node[S], hc Code) {
			if n.IsLeaf() {
				codes[n.symbol] = hc
			}
		})
	}
	return newTable(codes), nil
}

func newTable[S Symbol](codes map[S]Code) *Table[S] {
	t := &Table[S]{
		codes:   codes,
		symbols: make([]S, 0, len(codes)),
	}
	for symbol, hc := range codes {
		t.symbols = append(t.symbols, symbol)
		size := hc.Len()
		if len(t.symbols) == 1 {
			t.minSize, t.maxSize = size, size
		} else if t.minSize > size {
			t.minSize = size
		} else if t.maxSize < size {
			t.maxSize = size
		}
	}
	slices.Sort(t.symbols)
	return t
}

// Lookup returns the Code assigned to symbol.  ok is false if the symbol is
// not part of this code.
func (t *Table[S]) Lookup(symbol S) (hc Code, ok bool) {
	hc, ok = t.codes[symbol]
	return hc, ok
}

// Len returns the number of symbols in the table.
func (t *Table[S]) Len() int {
	return len(t.symbols)
}

// Symbols returns the table's symbols in ascending order.
func (t *Table[S]) Symbols() []S {
	return slices.Clone(t.symbols)
}

// MinSize is the bit length of the shortest code.
func (t *Table[S]) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *Table[S]) MaxSize() int {
	return t.maxSize
}

// SizeBySymbol returns the bit length of each symbol's code.  The lengths
// alone are enough for CanonicalTable to rebuild a canonical version of this
// code on the receiving end.
func (t *Table[S]) SizeBySymbol() map[S]int {
	out := make(map[S]int, len(t.codes))
	for symbol, hc := range t.codes {
		out[symbol] = hc.Len()
	}
	return out
}

// WeightedLength returns the number of bits needed to encode a sequence with
// the given symbol frequencies, i.e. the sum of frequency times code length.
// Symbols missing from the table are ignored.  The result saturates at
// math.MaxUint64.
func (t *Table[S]) WeightedLength(freq FrequencyTable[S]) uint64 {
	var total uint64
	for symbol, count := range freq {
		if hc, found := t.codes[symbol]; found {
			total = saturatingAdd(total, saturatingMul(count, uint64(hc.Len())))
		}
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the Table to the given
// writer, one "symbol: bits" line per symbol in ascending symbol order.
func (t *Table[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, symbol := range t.symbols {
		fmt.Fprintf(&buf, "\t%v: %s\n", symbol, t.codes[symbol].bits)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
