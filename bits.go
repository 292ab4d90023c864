package huffpack

// BitReader is the input side of the bit channel.  ReadBits returns the next
// n bits in the low bits of the result, or io.EOF once the input is
// exhausted.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// RewindableBitReader is a BitReader that can be rewound to its start.
// Compression reads its input twice and requires one.
type RewindableBitReader interface {
	BitReader
	Reset() error
}

// BitWriter is the output side of the bit channel.  WriteBits writes the low
// n bits of value, most significant first.  Close pads the final byte with
// zero bits and flushes.
type BitWriter interface {
	WriteBits(value uint64, n uint8) error
	Close() error
}
