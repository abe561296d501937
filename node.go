package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Node is a node of a Huffman tree: either a leaf holding a symbol, or an
// inner node with exactly two children.  Each node exclusively owns its
// children, and a tree is never modified after it is built.
type Node[S Symbol] struct {
	freq   uint64
	symbol S
	left   *Node[S]
	right  *Node[S]
}

func newLeaf[S Symbol](symbol S, freq uint64) *Node[S] {
	return &Node[S]{freq: freq, symbol: symbol}
}

func newInner[S Symbol](left, right *Node[S]) *Node[S] {
	return &Node[S]{freq: saturatingAdd(left.freq, right.freq), left: left, right: right}
}

// IsLeaf reports whether this node is a leaf.
func (node *Node[S]) IsLeaf() bool {
	return node.left == nil
}

// Symbol returns the leaf's symbol.  ok is false for inner nodes.
func (node *Node[S]) Symbol() (symbol S, ok bool) {
	if !node.IsLeaf() {
		return symbol, false
	}
	return node.symbol, true
}

// Freq returns the sum of the frequencies of all leaves under this node.
func (node *Node[S]) Freq() uint64 {
	return node.freq
}

// Left returns the child reached by a 0 bit, or nil for a leaf.
func (node *Node[S]) Left() *Node[S] {
	return node.left
}

// Right returns the child reached by a 1 bit, or nil for a leaf.
func (node *Node[S]) Right() *Node[S] {
	return node.right
}

// Depth returns the length of the longest path from this node to a leaf.
// A lone leaf has depth 0.
func (node *Node[S]) Depth() int {
	var maxDepth int
	node.walk(func(n *Node[S], depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
	})
	return maxDepth
}

// Leaves returns the number of leaves under this node.
func (node *Node[S]) Leaves() int {
	var count int
	node.walk(func(n *Node[S], depth int) {
		if n.IsLeaf() {
			count++
		}
	})
	return count
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in depth-first order.
func (node *Node[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Node{\n")
	node.walkCodes(func(n *Node[S], hc Code) {
		indent := strings.Repeat("\t", hc.Len()+1)
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "%s%s = %v (%d)\n", indent, hc, n.symbol, n.freq)
		} else {
			fmt.Fprintf(&buf, "%s%s = * (%d)\n", indent, hc, n.freq)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node in depth-first order, left before right, without
// recursion.
func (node *Node[S]) walk(fn func(n *Node[S], depth int)) {
	type stackItem struct {
		n     *Node[S]
		depth int
	}

	stack := []stackItem{{node, 0}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(top.n, top.depth)
		if !top.n.IsLeaf() {
			stack = append(stack, stackItem{top.n.right, top.depth + 1})
			stack = append(stack, stackItem{top.n.left, top.depth + 1})
		}
	}
}

// walkCodes is like walk, but passes the path from this node as a Code: 0
// for each left branch, 1 for each right branch.
func (node *Node[S]) walkCodes(fn func(n *Node[S], hc Code)) {
	type stackItem struct {
		n  *Node[S]
		hc Code
	}

	stack := []stackItem{{node, Code{}}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack[len(stack)-1] = stackItem{}
		stack = stack[:len(stack)-1]
		fn(top.n, top.hc)
		if !top.n.IsLeaf() {
			stack = append(stack, stackItem{top.n.right, top.hc.Append(1)})
			stack = append(stack, stackItem{top.n.left, top.hc.Append(0)})
		}
	}
}
