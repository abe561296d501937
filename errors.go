package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a tree is requested for an empty
	// frequency table, or when an operation is given no tree or table.
	ErrEmptyInput = errors.New("huffman: empty frequency table")

	// ErrUnknownSymbol is matched by every *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrIncompleteCode is matched by every *IncompleteCodeError.
	ErrIncompleteCode = errors.New("huffman: incomplete trailing code")

	// ErrInvalidCode is returned for bit strings or code sets that cannot
	// form a prefix code.
	ErrInvalidCode = errors.New("huffman: invalid code")
)

// UnknownSymbolError is returned by Encode when a symbol has no entry in the
// code table.
type UnknownSymbolError[S Symbol] struct {
	// Index is the position of the symbol in the input sequence.
	Index int

	// Symbol is the offending symbol.
	Symbol S
}

func (err *UnknownSymbolError[S]) Error() string {
	return fmt.Sprintf("huffman: unknown symbol %v at index %d", err.Symbol, err.Index)
}

func (err *UnknownSymbolError[S]) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// IncompleteCodeError is returned by Decode when the input ends partway
// through a code.  The symbols decoded before that point are still returned.
type IncompleteCodeError struct {
	// Pending is the number of trailing bits that did not complete a code.
	Pending int
}

func (err *IncompleteCodeError) Error() string {
	return fmt.Sprintf("huffman: input ends with %d bit(s) of an incomplete code", err.Pending)
}

func (err *IncompleteCodeError) Is(target error) bool {
	return target == ErrIncompleteCode
}

var (
	_ error = (*UnknownSymbolError[int])(nil)
	_ error = (*IncompleteCodeError)(nil)
)
