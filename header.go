package huffpack

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteHeader writes t to w in preorder: a 0 bit for each internal node,
// followed by its left and right subtrees; a 1 bit for each leaf, followed
// by its symbol in HeaderSymbolBits bits.
func WriteHeader(w BitWriter, t *Tree) error {
	stack := make([]NodeID, 0, log2uint32(uint32(t.Len()))+1)
	stack = append(stack, t.Root())
	for len(stack) != 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.IsLeaf(id) {
			if err := w.WriteBits(1, 1); err != nil {
				return errors.Wrap(err, "huffpack: write header")
			}
			if err := w.WriteBits(uint64(t.Symbol(id)), HeaderSymbolBits); err != nil {
				return errors.Wrap(err, "huffpack: write header")
			}
			continue
		}

		if err := w.WriteBits(0, 1); err != nil {
			return errors.Wrap(err, "huffpack: write header")
		}
		// Right first, so that the left subtree is popped next.
		stack = append(stack, t.Right(id), t.Left(id))
	}
	return nil
}

// ReadHeader reads a tree written by WriteHeader.  The weights of the
// returned tree are all 0.
//
// Running out of input before the tree is complete is a *FormatError, as is
// a tree that no encoder could have written: a leaf symbol above EOF, the
// same symbol on two leaves, too many nodes, or a leaf deeper than 64 bits.
//
func ReadHeader(r BitReader) (*Tree, error) {
	const op = "read header"

	// pending holds internal nodes that are still waiting for a child.
	// Children are attached left first, then right.
	type pendingItem struct {
		id    NodeID
		depth byte
		x     byte
	}

	t := &Tree{nodes: make([]treeNode, 0, maxNodes), root: NoNode}
	var seen [NumSymbols]bool
	var pending []pendingItem

	readBits := func(n uint8) (uint64, error) {
		u, err := r.ReadBits(n)
		if err == io.EOF {
			return 0, newFormatError(op, "unexpected end of input")
		}
		if err != nil {
			return 0, errors.Wrap(err, "huffpack: read header")
		}
		return u, nil
	}

	attach := func(id NodeID) {
		if len(pending) == 0 {
			t.root = id
			return
		}
		top := &pending[len(pending)-1]
		if top.x == 0 {
			t.nodes[top.id].left = id
		} else {
			t.nodes[top.id].right = id
		}
		top.x++
		if top.x == 2 {
			pending = pending[:len(pending)-1]
		}
	}

	for {
		var depth byte
		if n := len(pending); n != 0 {
			depth = pending[n-1].depth + 1
		}

		bit, err := readBits(1)
		if err != nil {
			return nil, err
		}

		if len(t.nodes) >= maxNodes {
			return nil, newFormatError(op, "tree has more than "+strconv.Itoa(maxNodes)+" nodes")
		}

		if bit == 0 {
			if depth >= maxBitsPerCode {
				return nil, newFormatError(op, "tree is deeper than "+strconv.Itoa(maxBitsPerCode)+" bits")
			}
			id := NodeID(len(t.nodes))
			t.nodes = append(t.nodes, treeNode{left: NoNode, right: NoNode})
			attach(id)
			pending = append(pending, pendingItem{id: id, depth: depth})
			continue
		}

		u, err := readBits(HeaderSymbolBits)
		if err != nil {
			return nil, err
		}
		symbol := Symbol(u)
		if !symbol.IsValid() {
			return nil, newFormatError(op, "leaf symbol "+strconv.FormatUint(u, 10)+" out of range")
		}
		if seen[symbol] {
			return nil, newFormatError(op, "leaf symbol "+strconv.FormatUint(u, 10)+" appears twice")
		}
		seen[symbol] = true
		attach(t.addLeaf(symbol, 0))

		if len(pending) == 0 {
			return t, nil
		}
	}
}
