package huffman

import (
	"fmt"

	"github.com/icza/bitio"
)

// Coder holds a Huffman tree and the code table derived from it.  Both are
// built once by New and never modified, so a Coder may be used by multiple
// goroutines at once.
type Coder[S Symbol] struct {
	root  *Node[S]
	table *Table[S]
}

// New builds a Coder for the given frequency table.  It returns
// ErrEmptyInput if the table is empty.
func New[S Symbol](freq FrequencyTable[S]) (*Coder[S], error) {
	root, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	table, err := DeriveTable(root)
	if err != nil {
		return nil, err
	}
	return &Coder[S]{root: root, table: table}, nil
}

// NewFromSymbols counts the symbols in the given sequence and builds a Coder
// for the resulting frequency table.
func NewFromSymbols[S Symbol](symbols []S) (*Coder[S], error) {
	return New(CountFrequencies(symbols))
}

// NewCanonical is like New, but replaces the derived code with the canonical
// code of the same lengths.  The receiving end can rebuild an identical Coder
// from Table().SizeBySymbol() alone, using NewFromSizes.
func NewCanonical[S Symbol](freq FrequencyTable[S]) (*Coder[S], error) {
	c, err := New(freq)
	if err != nil {
		return nil, err
	}
	return newFromTable(c.table.Canonical(), freq)
}

// NewFromSizes builds a Coder for the canonical code with the given bit
// lengths.  See CanonicalTable for the inputs it accepts.
func NewFromSizes[S Symbol](sizes map[S]int) (*Coder[S], error) {
	table, err := CanonicalTable(sizes)
	if err != nil {
		return nil, err
	}
	return newFromTable(table, nil)
}

func newFromTable[S Symbol](table *Table[S], freq FrequencyTable[S]) (*Coder[S], error) {
	root, err := TreeFromTable(table, freq)
	if err != nil {
		return nil, err
	}
	return &Coder[S]{root: root, table: table}, nil
}

// Root returns the root of the Huffman tree.
func (c *Coder[S]) Root() *Node[S] {
	return c.root
}

// Table returns the code table.
func (c *Coder[S]) Table() *Table[S] {
	return c.table
}

// Encode encodes a sequence of symbols.  See the package-level Encode.
func (c *Coder[S]) Encode(symbols []S) (Bits, error) {
	return Encode(symbols, c.table)
}

// Decode decodes a sequence of bits.  See the package-level Decode.
func (c *Coder[S]) Decode(bits Bits) ([]S, error) {
	return Decode(bits, c.root)
}

// EncodeTo encodes a sequence of symbols and writes the bits to w.  It
// returns the number of bits written, which the caller must record in order
// to decode the stream again.
func (c *Coder[S]) EncodeTo(w *bitio.Writer, symbols []S) (int, error) {
	bits, err := c.Encode(symbols)
	if err != nil {
		return 0, err
	}
	if err := bits.WriteTo(w); err != nil {
		return 0, fmt.Errorf("failed to write %d encoded bits: %w", bits.Len(), err)
	}
	return bits.Len(), nil
}

// DecodeFrom reads exactly numBits bits from r and decodes them.
func (c *Coder[S]) DecodeFrom(r *bitio.Reader, numBits int) ([]S, error) {
	bits, err := ReadBits(r, numBits)
	if err != nil {
		return nil, fmt.Errorf("failed to read %d encoded bits: %w", numBits, err)
	}
	return c.Decode(bits)
}
