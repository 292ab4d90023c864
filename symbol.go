package huffpack

// Symbol represents a symbol in the compressor's alphabet: a byte value in
// [0, AlphabetSize), or EOF.  Negative symbols are not valid.
type Symbol int32

const (
	// WordBits is the width of one input unit.
	WordBits = 8

	// AlphabetSize is the number of distinct input units.
	AlphabetSize = 1 << WordBits

	// EOF is the synthetic symbol that terminates the payload.
	EOF = Symbol(AlphabetSize)

	// NumSymbols counts every symbol, EOF included.
	NumSymbols = AlphabetSize + 1

	// HeaderSymbolBits is the width of a leaf's symbol in the header.  One
	// bit wider than WordBits so that EOF can be represented.
	HeaderSymbolBits = WordBits + 1

	// Magic tags the start of every compressed file.
	Magic uint32 = 0xface8200 | 1

	magicBits = 32
)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true if s is a byte value or EOF.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= EOF
}
