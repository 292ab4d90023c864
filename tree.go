package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID addresses a node within a Tree.
type NodeID int32

// NoNode is returned by some functions to clearly indicate that no node is
// being returned.
const NoNode = NodeID(-1)

// maxNodes bounds the size of any valid tree: NumSymbols leaves plus one
// fewer internal nodes.
const maxNodes = 2*NumSymbols - 1

// Tree is a Huffman code tree stored as an arena of nodes.  Every internal
// node has exactly two children.  Leaves carry a Symbol and its weight;
// internal nodes carry the sum of their children's weights.
type Tree struct {
	nodes []treeNode
	root  NodeID
}

type treeNode struct {
	symbol Symbol
	weight uint64
	left   NodeID
	right  NodeID
}

func (t *Tree) addLeaf(symbol Symbol, weight uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{symbol: symbol, weight: weight, left: NoNode, right: NoNode})
	return id
}

func (t *Tree) addInternal(left, right NodeID) NodeID {
	id := NodeID(len(t.nodes))
	weight := addSaturating(t.nodes[left].weight, t.nodes[right].weight)
	t.nodes = append(t.nodes, treeNode{symbol: 0, weight: weight, left: left, right: right})
	return id
}

// BuildTree constructs the Huffman tree for the given frequencies.  Symbols
// with a frequency of 0 are omitted from the tree.
//
// Ties between nodes of equal weight go to the node that was created first.
// Leaves are created in ascending Symbol order before any internal node, and
// internal nodes are created in the order they are merged.  Of each pair of
// nodes merged, the first one popped becomes the left child.
//
// If fewer than two symbols have a non-zero frequency, the lowest symbols
// with a frequency of 0 are added as placeholder leaves of weight 0 until
// there are two leaves, so that every code is at least one bit long.
//
func BuildTree(freq Frequencies) *Tree {
	var include [NumSymbols]bool
	var numLeaves int
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if freq[symbol] != 0 {
			include[symbol] = true
			numLeaves++
		}
	}
	for symbol := Symbol(0); numLeaves < 2; symbol++ {
		if !include[symbol] {
			include[symbol] = true
			numLeaves++
		}
	}

	t := &Tree{nodes: make([]treeNode, 0, 2*numLeaves-1), root: NoNode}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if include[symbol] {
			t.addLeaf(symbol, freq[symbol])
		}
	}

	h := nodeHeap{tree: t, list: make([]NodeID, len(t.nodes), maxNodes)}
	for index := range h.list {
		h.list[index] = NodeID(index)
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeID)
		b := heap.Pop(&h).(NodeID)
		heap.Push(&h, t.addInternal(a, b))
	}
	t.root = heap.Pop(&h).(NodeID)
	return t
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IsLeaf returns true if id is a leaf.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.nodes[id].left == NoNode
}

// Left returns the left child of id, or NoNode for a leaf.
func (t *Tree) Left(id NodeID) NodeID {
	return t.nodes[id].left
}

// Right returns the right child of id, or NoNode for a leaf.
func (t *Tree) Right(id NodeID) NodeID {
	return t.nodes[id].right
}

// Child returns the left child of id if bit is 0, or the right child if bit
// is 1.
func (t *Tree) Child(id NodeID, bit uint64) NodeID {
	if bit == 0 {
		return t.nodes[id].left
	}
	return t.nodes[id].right
}

// Symbol returns the symbol of a leaf.  Internal nodes return 0.
func (t *Tree) Symbol(id NodeID) Symbol {
	return t.nodes[id].symbol
}

// Weight returns the weight of id.  Trees read from a header have all
// weights equal to 0.
func (t *Tree) Weight(id NodeID) uint64 {
	return t.nodes[id].weight
}

// Leaves returns the leaf symbols in left-to-right order.
func (t *Tree) Leaves() []Symbol {
	var out []Symbol
	t.walk(func(id NodeID, _ Code) {
		out = append(out, t.nodes[id].symbol)
	})
	return out
}

// NumLeaves returns the number of leaves.
func (t *Tree) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one leaf per line in left-to-right order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(t.nodes))
	fmt.Fprintf(&buf, "\tWeight(Root()) = %d\n", t.nodes[t.root].weight)
	t.walk(func(id NodeID, hc Code) {
		node := t.nodes[id]
		fmt.Fprintf(&buf, "\t%s: %d (weight %d)\n", hc, node.symbol, node.weight)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every leaf in left-to-right order together with the path that
// leads to it.
//
// We use stackItem.x to keep track of where we are in the tree walk:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func (t *Tree) walk(fn func(id NodeID, hc Code)) {
	type stackItem struct {
		id NodeID
		hc Code
		x  byte
	}

	if t.IsLeaf(t.root) {
		fn(t.root, Code{})
		return
	}

	stack := make([]stackItem, 0, log2uint32(uint32(len(t.nodes)))+1)

	processChild := func(child NodeID, hc Code) {
		if t.IsLeaf(child) {
			fn(child, hc)
			return
		}
		assert.Assertf(hc.Size < maxBitsPerCode, "walk: tree deeper than %d bits", maxBitsPerCode)
		stack = append(stack, stackItem{id: child, hc: hc})
	}

	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.nodes[top.id].left, top.hc.Append(0))
		case 1:
			processChild(t.nodes[top.id].right, top.hc.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []NodeID
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
