package huffpack

import (
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffpack/internal/bitstream"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

// Logger receives a Codec's diagnostic messages.
type Logger = logger.Logger

// Codec compresses and decompresses streams.  The zero value is ready to use
// and logs nothing.  A Codec holds no state between calls, so one Codec may
// be shared by concurrent callers as long as each call has its own streams.
type Codec struct {
	// Logger, if non-nil, receives debug messages about each call.
	Logger Logger
}

// Stats describes the work done by one Compress or Decompress call.
type Stats struct {
	// Symbols is the number of WordBits-wide units on the uncompressed
	// side, not counting EOF.
	Symbols int64

	// HeaderBits is the size of the tree header, not counting Magic.
	HeaderBits int64

	// CompressedBits is the size of the compressed stream without the
	// final byte's padding.
	CompressedBits int64
}

// UncompressedBits is the size of the uncompressed stream.
func (s Stats) UncompressedBits() int64 {
	return s.Symbols * WordBits
}

// String returns a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d symbols, %d bits uncompressed, %d bits compressed (%d header bits)",
		s.Symbols, s.UncompressedBits(), s.CompressedBits, s.HeaderBits)
}

func (c Codec) log() Logger {
	if c.Logger == nil {
		return logger.Nop()
	}
	return c.Logger
}

// Compress reads src twice, once to count symbols and once to encode them,
// and writes the compressed form to dst.  dst is closed on success.
func (c Codec) Compress(dst BitWriter, src RewindableBitReader) (Stats, error) {
	var stats Stats
	lg := c.log()

	freq, err := CountFrequencies(src)
	if err != nil {
		return stats, err
	}
	t := BuildTree(freq)
	ct := DeriveCodes(t)
	lg.Debugf("huffpack: %d distinct symbols, codes of %d .. %d bits", t.NumLeaves(), ct.MinSize(), ct.MaxSize())

	if err := dst.WriteBits(uint64(Magic), magicBits); err != nil {
		return stats, errors.Wrap(err, "huffpack: write magic")
	}
	if err := WriteHeader(dst, t); err != nil {
		return stats, err
	}
	stats.HeaderBits = headerBits(t)

	if err := src.Reset(); err != nil {
		return stats, errors.Wrap(err, "huffpack: rewind input")
	}

	var payloadBits int64
	emit := func(symbol Symbol) error {
		hc, ok := ct.Encode(symbol)
		if !ok {
			return errors.Errorf("huffpack: symbol %d was not seen while counting; input changed between passes", symbol)
		}
		if err := dst.WriteBits(hc.Bits, hc.Size); err != nil {
			return errors.Wrap(err, "huffpack: write payload")
		}
		payloadBits += int64(hc.Size)
		return nil
	}

	for {
		u, err := src.ReadBits(WordBits)
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, errors.Wrap(err, "huffpack: read input")
		}
		if err := emit(Symbol(u)); err != nil {
			return stats, err
		}
		stats.Symbols++
	}
	if err := emit(EOF); err != nil {
		return stats, err
	}

	if err := dst.Close(); err != nil {
		return stats, errors.Wrap(err, "huffpack: close output")
	}
	stats.CompressedBits = magicBits + stats.HeaderBits + payloadBits
	lg.Debugf("huffpack: compress: %v", stats)
	return stats, nil
}

// Decompress reads a stream written by Compress from src and writes the
// original bytes to dst.  dst is closed on success.
//
// A wrong magic tag, a malformed header, or input that ends before the EOF
// code is a *FormatError.  Nothing is written to dst before the header has
// been read; after that, dst may hold part of the output when an error is
// returned.
//
func (c Codec) Decompress(dst BitWriter, src BitReader) (Stats, error) {
	const op = "read payload"
	var stats Stats
	lg := c.log()

	tag, err := src.ReadBits(magicBits)
	if err == io.EOF {
		return stats, newFormatError("read magic", "unexpected end of input")
	}
	if err != nil {
		return stats, errors.Wrap(err, "huffpack: read magic")
	}
	if uint32(tag) != Magic {
		return stats, newFormatError("read magic", fmt.Sprintf("unrecognized header tag %#08x", tag))
	}

	t, err := ReadHeader(src)
	if err != nil {
		return stats, err
	}
	stats.HeaderBits = headerBits(t)
	lg.Debugf("huffpack: decoded tree with %d leaves", t.NumLeaves())

	var payloadBits int64
	root := t.Root()
	if t.IsLeaf(root) {
		if t.Symbol(root) != EOF {
			return stats, newFormatError("read header", "degenerate tree without EOF")
		}
	} else {
		node := root
		for {
			bit, err := src.ReadBits(1)
			if err == io.EOF {
				return stats, newFormatError(op, "unexpected end of input")
			}
			if err != nil {
				return stats, errors.Wrap(err, "huffpack: read payload")
			}
			payloadBits++

			node = t.Child(node, bit)
			if !t.IsLeaf(node) {
				continue
			}
			symbol := t.Symbol(node)
			if symbol == EOF {
				break
			}
			assert.Assertf(symbol < EOF, "Decompress: leaf symbol %d out of range", symbol)
			if err := dst.WriteBits(uint64(symbol), WordBits); err != nil {
				return stats, errors.Wrap(err, "huffpack: write output")
			}
			stats.Symbols++
			node = root
		}
	}

	if err := dst.Close(); err != nil {
		return stats, errors.Wrap(err, "huffpack: close output")
	}
	stats.CompressedBits = magicBits + stats.HeaderBits + payloadBits
	lg.Debugf("huffpack: decompress: %v", stats)
	return stats, nil
}

// CompressStream compresses src into dst.  src must support seeking back to
// its start.  dst is flushed but not closed.
func (c Codec) CompressStream(dst io.Writer, src io.ReadSeeker) (Stats, error) {
	return c.Compress(bitstream.NewWriter(dst), bitstream.NewReader(src))
}

// DecompressStream decompresses src into dst.  dst is flushed but not closed.
func (c Codec) DecompressStream(dst io.Writer, src io.Reader) (Stats, error) {
	return c.Decompress(bitstream.NewWriter(dst), bitstream.NewReader(src))
}

// Compress is Codec{}.Compress.
func Compress(dst BitWriter, src RewindableBitReader) (Stats, error) {
	return Codec{}.Compress(dst, src)
}

// Decompress is Codec{}.Decompress.
func Decompress(dst BitWriter, src BitReader) (Stats, error) {
	return Codec{}.Decompress(dst, src)
}

// CompressStream is Codec{}.CompressStream.
func CompressStream(dst io.Writer, src io.ReadSeeker) (Stats, error) {
	return Codec{}.CompressStream(dst, src)
}

// DecompressStream is Codec{}.DecompressStream.
func DecompressStream(dst io.Writer, src io.Reader) (Stats, error) {
	return Codec{}.DecompressStream(dst, src)
}

// headerBits returns the size of t's header: one bit per node plus
// HeaderSymbolBits per leaf.
func headerBits(t *Tree) int64 {
	return int64(t.Len()) + int64(t.NumLeaves())*HeaderSymbolBits
}
