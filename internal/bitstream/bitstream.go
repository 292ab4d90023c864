// Package bitstream provides the bit-level reader and writer that the
// compressor runs on.  Bits are read and written most significant bit first.
package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// ErrNotRewindable is returned by Reader.Reset when the underlying reader
// cannot seek.
var ErrNotRewindable = errors.New("bitstream: reader does not support rewinding")

// Reader reads bits from an io.Reader.  End of input is reported as io.EOF,
// including when fewer than the requested number of bits remain.
type Reader struct {
	in   io.Reader
	br   *bitio.Reader
	read int64
}

// NewReader returns a Reader that consumes in.
func NewReader(in io.Reader) *Reader {
	return &Reader{in: in, br: bitio.NewReader(in)}
}

// ReadBits reads the next n bits (n <= 64) and returns them in the low bits
// of the result.
func (r *Reader) ReadBits(n uint8) (uint64, error) {
	u, err := r.br.ReadBits(n)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}
	r.read += int64(n)
	return u, nil
}

// Reset rewinds the Reader to the start of its input.
func (r *Reader) Reset() error {
	seeker, ok := r.in.(io.Seeker)
	if !ok {
		return ErrNotRewindable
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "bitstream: rewind")
	}
	r.br = bitio.NewReader(r.in)
	r.read = 0
	return nil
}

// BitsRead returns the number of bits consumed since creation or the last
// Reset.
func (r *Reader) BitsRead() int64 {
	return r.read
}

// Writer writes bits to an io.Writer.
type Writer struct {
	bw      *bitio.Writer
	written int64
	closed  bool
}

// NewWriter returns a Writer that produces out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(out)}
}

// WriteBits writes the low n bits (n <= 64) of value.
func (w *Writer) WriteBits(value uint64, n uint8) error {
	if w.closed {
		return errors.New("bitstream: write on closed writer")
	}
	if n < 64 {
		value &= (uint64(1) << n) - 1
	}
	if err := w.bw.WriteBits(value, n); err != nil {
		return err
	}
	w.written += int64(n)
	return nil
}

// Close pads the final partial byte with zero bits and flushes buffered
// output.  It does not close the underlying io.Writer.  Calling Close more
// than once is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.bw.Close()
}

// BitsWritten returns the number of bits written, not counting padding.
func (w *Writer) BitsWritten() int64 {
	return w.written
}
