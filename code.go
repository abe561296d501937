package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Code represents the bit sequence assigned to one symbol.
//
// The first bit of a Code is its most significant bit.  Codes are immutable;
// Append returns a new Code.
type Code struct {
	bits Bits
}

// MakeCode is a convenience function that constructs a Code from the low size
// bits of value, most significant first.  size must be at most 64; longer
// codes are built with Append or ParseCode.
func MakeCode(size int, value uint64) Code {
	assert.Assertf(size >= 0 && size <= 64, "code size %d out of range [0, 64]", size)
	var hc Code
	hc.bits.appendWord(value, size)
	return hc
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	b, err := ParseBits(str)
	if err != nil {
		return Code{}, err
	}
	return Code{bits: b}, nil
}

// Len returns the number of bits in the code.
func (hc Code) Len() int {
	return hc.bits.Len()
}

// Bit returns bit i of the code, counting from the most significant end.
func (hc Code) Bit(i int) uint {
	return hc.bits.At(i)
}

// Append returns a new Code consisting of hc followed by bit.
func (hc Code) Append(bit uint) Code {
	out := Code{bits: hc.bits.Clone()}
	out.bits.Append(bit)
	return out
}

// Bits returns a copy of the code's bits.
func (hc Code) Bits() Bits {
	return hc.bits.Clone()
}

// Uint64 returns the code as an integer whose low Len() bits hold the code.
// ok is false if the code is longer than 64 bits.
func (hc Code) Uint64() (value uint64, ok bool) {
	size := hc.bits.Len()
	if size > 64 {
		return 0, false
	}
	if size == 0 {
		return 0, true
	}
	return hc.bits.words[0] >> (64 - uint(size)), true
}

// HasPrefix reports whether prefix is a prefix of hc.  Every code is a prefix
// of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Len() > hc.Len() {
		return false
	}
	for i := 0; i < prefix.Len(); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Equal reports whether hc and other are the same code.
func (hc Code) Equal(other Code) bool {
	return hc.bits.Equal(other.bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.bits.String())
}

var _ fmt.Stringer = Code{}
