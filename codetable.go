package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol to its Code.  Symbols that are not leaves of the
// tree have a zero Code and are reported as absent by Encode.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	minSize byte
	maxSize byte
}

// DeriveCodes assigns to each leaf of t the path leading to it from the
// root, with "0" for each left branch and "1" for each right branch.  A tree
// consisting of a single leaf assigns that leaf the empty code.
func DeriveCodes(t *Tree) *CodeTable {
	ct := &CodeTable{}
	var hasMinMax bool
	t.walk(func(id NodeID, hc Code) {
		symbol := t.Symbol(id)
		ct.codes[symbol] = hc
		ct.present[symbol] = true
		if !hasMinMax {
			hasMinMax = true
			ct.minSize = hc.Size
			ct.maxSize = hc.Size
		} else if ct.minSize > hc.Size {
			ct.minSize = hc.Size
		} else if ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
	})
	return ct
}

// Encode returns the Code for symbol.  The second result is false if symbol
// has no code.
func (ct *CodeTable) Encode(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() {
		return Code{}, false
	}
	return ct.codes[symbol], ct.present[symbol]
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Cost returns the number of payload bits needed to encode input with the
// given frequencies, EOF included.
func (ct *CodeTable) Cost(freq Frequencies) uint64 {
	var total uint64
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			total = addSaturating(total, freq[symbol]*uint64(ct.codes[symbol].Size))
		}
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.  Symbols without a code are omitted.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, ct.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
