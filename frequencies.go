package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Frequencies holds the number of occurrences of each Symbol.  The EOF slot
// is always 1.
type Frequencies [NumSymbols]uint64

// CountFrequencies reads r to exhaustion, one WordBits-wide unit at a time,
// and counts each unit.  The caller must rewind r before reading it again.
func CountFrequencies(r BitReader) (Frequencies, error) {
	var freq Frequencies
	for {
		u, err := r.ReadBits(WordBits)
		if err == io.EOF {
			break
		}
		if err != nil {
			return Frequencies{}, errors.Wrap(err, "huffpack: count frequencies")
		}
		freq[u]++
	}
	freq[EOF] = 1
	return freq, nil
}

// Total returns the number of input units counted, not including EOF.
func (freq *Frequencies) Total() uint64 {
	var total uint64
	for symbol := Symbol(0); symbol < EOF; symbol++ {
		total = addSaturating(total, freq[symbol])
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the non-zero counts to
// the given writer.
func (freq *Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if n := freq[symbol]; n != 0 {
			fmt.Fprintf(&buf, "\t%d: %d\n", symbol, n)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
