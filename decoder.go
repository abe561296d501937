package huffman

import (
	"fmt"
)

// decodeState is the state of the Decode state machine.
type decodeState byte

const (
	// stateInner: positioned at an inner node, waiting for a bit.
	stateInner decodeState = iota

	// stateLeaf: positioned at a leaf; emit its symbol and return to the
	// root.
	stateLeaf
)

// Decode walks the tree from the root, taking the left child for each 0 bit
// and the right child for each 1 bit.  Each time it reaches a leaf it emits
// the leaf's symbol and starts again at the root.
//
// If root is a lone leaf, each 0 bit decodes to its symbol, matching the
// one-bit code "0" that DeriveTable assigns in that case.  A 1 bit is not a
// valid code there; Decode stops and returns the symbols decoded so far with
// an error matching ErrInvalidCode.
//
// If the input ends partway through a code, Decode returns the symbols
// decoded so far together with an *IncompleteCodeError.  Callers that pad
// their input may ignore it via errors.Is(err, ErrIncompleteCode).  A nil
// root yields ErrEmptyInput.
func Decode[S Symbol](bits Bits, root *Node[S]) ([]S, error) {
	if root == nil {
		return nil, ErrEmptyInput
	}

	numBits := bits.Len()
	if root.IsLeaf() {
		out := make([]S, 0, numBits)
		for pos := 0; pos < numBits; pos++ {
			if bits.At(pos) != 0 {
				return out, fmt.Errorf("bit 1 at offset %d does not match the one-bit code \"0\" of a single-symbol tree: %w", pos, ErrInvalidCode)
			}
			out = append(out, root.symbol)
		}
		return out, nil
	}

	out := make([]S, 0, numBits/(root.Depth()+1)+1)
	node := root
	state := stateInner
	pending := 0
	for pos := 0; ; {
		switch state {
		case stateInner:
			if pos >= numBits {
				if pending != 0 {
					log.Debugf("decode: input ends with %d bit(s) of an incomplete code", pending)
					return out, &IncompleteCodeError{Pending: pending}
				}
				return out, nil
			}
			if bits.At(pos) == 0 {
				node = node.left
			} else {
				node = node.right
			}
			pos++
			pending++
			if node.IsLeaf() {
				state = stateLeaf
			}

		case stateLeaf:
			out = append(out, node.symbol)
			node = root
			pending = 0
			state = stateInner
		}
	}
}
