package huffpack

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// CompressFile compresses the named file into dst.
func (c Codec) CompressFile(dst io.Writer, name string) (Stats, error) {
	f, err := os.Open(name)
	if err != nil {
		return Stats{}, errors.Wrap(err, "huffpack: open input")
	}
	defer f.Close()

	stats, err := c.CompressStream(dst, f)
	if err != nil {
		return stats, err
	}
	c.log().Debugf("huffpack: compressed %s: %v", name, stats)
	return stats, nil
}

// CompressFile is Codec{}.CompressFile.
func CompressFile(dst io.Writer, name string) (Stats, error) {
	return Codec{}.CompressFile(dst, name)
}
