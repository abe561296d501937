package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	logging "github.com/op/go-logging"
)

// BuildTree builds a Huffman tree for the given frequency table.  Every
// symbol in the table becomes a leaf, including symbols with a frequency of
// 0.  If the table is empty, BuildTree returns ErrEmptyInput.
//
// Nodes are merged lowest frequency first.  Ties are broken by age: leaves
// are queued in ascending symbol order, and each merged node is younger than
// every node queued before it.  The first node popped from each pair becomes
// the left child.  Other tie-breaks would produce different bit patterns but
// the same total encoded length.
//
// A table with a single symbol yields a tree consisting of one leaf.
func BuildTree[S Symbol](freq FrequencyTable[S]) (*Node[S], error) {
	if len(freq) == 0 {
		return nil, ErrEmptyInput
	}

	// Step 1: build a minheap of leaves.

	symbols := freq.Symbols()
	h := freqHeap[S]{list: make([]nodeAndSeq[S], 0, len(symbols))}
	for _, symbol := range symbols {
		h.list = append(h.list, nodeAndSeq[S]{newLeaf(symbol, freq[symbol]), h.nextSeq})
		h.nextSeq++
	}
	h.Init()

	// Step 2: pop the two lightest nodes, merge them, and push the merged
	// node back, until only the root is left.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq[S])
		b := heap.Pop(&h).(nodeAndSeq[S])
		h.push(newInner(a.node, b.node))
	}

	assert.Assertf(h.Len() == 1, "heap drained to %d nodes, expected 1", h.Len())
	root := heap.Pop(&h).(nodeAndSeq[S]).node

	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("built Huffman tree: %d symbols, depth %d, total frequency %d", len(symbols), root.Depth(), root.Freq())
	}
	return root, nil
}

// type nodeAndSeq + type freqHeap {{{

type nodeAndSeq[S Symbol] struct {
	node *Node[S]
	seq  uint64
}

type freqHeap[S Symbol] struct {
	list    []nodeAndSeq[S]
	nextSeq uint64
}

func (h *freqHeap[S]) Init() {
	heap.Init(h)
}

func (h *freqHeap[S]) push(node *Node[S]) {
	heap.Push(h, nodeAndSeq[S]{node, h.nextSeq})
	h.nextSeq++
}

func (h *freqHeap[S]) Len() int {
	return len(h.list)
}

func (h *freqHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.seq < b.seq
}

func (h *freqHeap[S]) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq[S]))
}

func (h *freqHeap[S]) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq[S]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap[int])(nil)

// }}}
