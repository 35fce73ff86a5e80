package huffman

import (
	"container/heap"
	"errors"
)

// Node is one node of the Huffman code tree.
//
// A node is either a leaf carrying a symbol, or an internal node with
// exactly two children whose weight is the sum of the children's weights.
// Leaf reports which of the two it is.
type Node struct {
	Symbol byte
	Weight int
	Leaf   bool

	Left  *Node
	Right *Node

	seq int // insertion sequence, breaks weight ties
}

// nodeHeap is a min-heap over tree nodes ordered by (weight, seq).
//
// The secondary seq key makes extraction order fully deterministic:
// among equal weights, the node inserted first pops first. Merged nodes
// are assigned the next sequence number, so they rank after any
// equal-weight node already in the heap.
type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*Node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

// BuildTree constructs the Huffman tree for a non-empty frequency table.
//
// Leaves enter the heap in the table's first-appearance order. The merge
// loop repeatedly combines the two lowest-weight nodes, the first pop
// becoming the left child and the second the right, until one root
// remains. A single-symbol table yields a tree of one leaf.
func BuildTree(ft *FrequencyTable) (*Node, error) {
	if ft == nil || ft.Len() == 0 {
		return nil, errors.New("cannot build tree from empty frequency table")
	}

	h := make(nodeHeap, 0, ft.Len())
	seq := 0
	for _, sym := range ft.Symbols() {
		h = append(h, &Node{
			Symbol: sym,
			Weight: ft.Count(sym),
			Leaf:   true,
			seq:    seq,
		})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(*Node)
		right := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
			seq:    seq,
		})
		seq++
	}

	return heap.Pop(&h).(*Node), nil
}
