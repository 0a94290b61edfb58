package hufftext

import (
	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.
//
// A leaf has no children and holds a Symbol.  An internal node has exactly
// two children, and its Freq is the sum of theirs; its Symbol is unused.
//
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether n holds a Symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Weight returns n.Freq.
func (n *Node) Weight() uint64 {
	return n.Freq
}

var _ Weighted = (*Node)(nil)

// BuildTree constructs a Huffman tree from hist by repeatedly merging the two
// entries of lowest weight.  Leaves enter the heap in Histogram order.
//
// An empty Histogram yields a nil tree.  A Histogram with a single entry
// yields that entry's leaf as the root.
//
func BuildTree(hist Histogram) *Node {
	var h MinHeap[*Node]
	for _, entry := range hist {
		assert.Assertf(entry.Count != 0, "symbol %s has a count of 0", quoteSymbol(entry.Symbol))
		h.Insert(&Node{Symbol: entry.Symbol, Freq: entry.Count})
	}

	for h.Len() > 1 {
		left, _ := h.ExtractMin()
		right, _ := h.ExtractMin()

		freqSum := left.Freq + right.Freq
		assert.Assertf(freqSum >= left.Freq, "weight overflow: %d + %d", left.Freq, right.Freq)

		h.Insert(&Node{Freq: freqSum, Left: left, Right: right})
	}

	root, _ := h.ExtractMin()
	return root
}
