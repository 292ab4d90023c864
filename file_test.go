package huffpack

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"

	"github.com/pkg/errors"
)

func TestCompressFile(t *testing.T) {
	const name = "testdata/gettysburg.txt"

	// Compress
	f, err := ioutil.TempFile("", "huffpack.TestCompressFile.Compress")
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer f.Close()
	defer os.Remove(f.Name())
	stats, err := CompressFile(f, name)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if stats.CompressedBits >= stats.UncompressedBits() {
		t.Errorf("no compression: %v", stats)
	}

	// Decompress
	_, err = f.Seek(0, 0)
	if err != nil {
		t.Fatalf("%v", err)
	}
	df, err := ioutil.TempFile("", "huffpack.TestCompressFile.Decompress")
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer df.Close()
	defer os.Remove(df.Name())
	if _, err := DecompressStream(df, f); err != nil {
		t.Fatalf("%v", err)
	}

	// Check if the decompressed result is the same as the original file
	_, err = df.Seek(0, 0)
	if err != nil {
		t.Fatalf("%v", err)
	}
	decom, err := ioutil.ReadAll(df)
	if err != nil {
		t.Fatalf("%v", err)
	}
	gettys, err := ioutil.ReadFile(name)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(gettys, decom) {
		t.Errorf("%v %v", gettys, decom)
	}
}

func TestCompressFile_Missing(t *testing.T) {
	var out bytes.Buffer
	_, err := CompressFile(&out, "testdata/does-not-exist")
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %d bytes", out.Len())
	}
}
