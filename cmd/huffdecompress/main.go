package main

import (
	"flag"
	"log"
	"os"

	"github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

var verbose = flag.Bool("verbose", false, "verbosity")

func main() {
	flag.Parse()
	c := huffpack.Codec{Logger: logger.New(os.Stderr, *verbose)}
	if _, err := c.DecompressStream(os.Stdout, os.Stdin); err != nil {
		log.Fatalf("%v", err)
	}
}
