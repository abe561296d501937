package huffman

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Bits is a growable sequence of bits.  The zero value is an empty sequence
// ready to use.
//
// Bits are packed into 64-bit words, most significant bit first: logical bit
// i lives at bit (63 - i%64) of word i/64.  Unused bits of the last word are
// always zero.
//
// Copies of a Bits value share storage; use Clone before appending to a copy
// that must stay independent.
type Bits struct {
	words []uint64
	size  int
}

// ParseBits parses a string of '0' and '1' characters.
func ParseBits(str string) (Bits, error) {
	var b Bits
	for index, ch := range str {
		switch ch {
		case '0':
			b.Append(0)
		case '1':
			b.Append(1)
		default:
			return Bits{}, fmt.Errorf("invalid bit %q at offset %d: %w", ch, index, ErrInvalidCode)
		}
	}
	return b, nil
}

// Len returns the number of bits in the sequence.
func (b Bits) Len() int {
	return b.size
}

// At returns bit i, either 0 or 1.
func (b Bits) At(i int) uint {
	assert.Assertf(i >= 0 && i < b.size, "bit index %d out of range [0, %d)", i, b.size)
	return uint(b.words[i>>6]>>(63-uint(i&63))) & 1
}

// Append adds a single bit to the end of the sequence.  Only the low bit of
// bit is used.
func (b *Bits) Append(bit uint) {
	b.appendWord(uint64(bit&1), 1)
}

// AppendBits adds every bit of other to the end of the sequence.
func (b *Bits) AppendBits(other Bits) {
	remaining := other.size
	for _, word := range other.words {
		n := remaining
		if n > 64 {
			n = 64
		}
		b.appendWord(word>>(64-uint(n)), n)
		remaining -= n
	}
}

// Clone returns a copy of the sequence that shares no storage with b.
func (b Bits) Clone() Bits {
	return Bits{words: slices.Clone(b.words), size: b.size}
}

// Equal reports whether b and other hold the same bits.
func (b Bits) Equal(other Bits) bool {
	return b.size == other.size && slices.Equal(b.words, other.words)
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		sb.WriteByte('0' + byte(b.At(i)))
	}
	return sb.String()
}

var _ fmt.Stringer = Bits{}

// WriteTo writes the bits to w, most significant first.  The caller owns w
// and is responsible for recording Len and for closing w, which pads the
// final byte with zeros.
func (b Bits) WriteTo(w *bitio.Writer) error {
	remaining := b.size
	for _, word := range b.words {
		n := remaining
		if n > 64 {
			n = 64
		}
		if err := w.WriteBits(word>>(64-uint(n)), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

// ReadBits reads exactly n bits from r.
func ReadBits(r *bitio.Reader, n int) (Bits, error) {
	assert.Assertf(n >= 0, "negative bit count %d", n)
	var b Bits
	b.words = make([]uint64, 0, (n+63)>>6)
	for n > 0 {
		chunk := n
		if chunk > 64 {
			chunk = 64
		}
		value, err := r.ReadBits(uint8(chunk))
		if err != nil {
			return Bits{}, err
		}
		b.appendWord(value, chunk)
		n -= chunk
	}
	return b, nil
}

// appendWord appends the low n bits of value, most significant first.
func (b *Bits) appendWord(value uint64, n int) {
	if n == 0 {
		return
	}
	assert.Assertf(n > 0 && n <= 64, "word width %d out of range [1, 64]", n)

	value <<= 64 - uint(n)
	offset := uint(b.size & 63)
	if offset == 0 {
		b.words = append(b.words, value)
	} else {
		last := len(b.words) - 1
		b.words[last] |= value >> offset
		if int(offset)+n > 64 {
			b.words = append(b.words, value<<(64-offset))
		}
	}
	b.size += n
}
