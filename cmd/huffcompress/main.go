package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

var verbose = flag.Bool("verbose", false, "verbosity")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] filename\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	name := flag.Arg(0)
	if name == "" {
		flag.Usage()
		os.Exit(1)
	}

	c := huffpack.Codec{Logger: logger.New(os.Stderr, *verbose)}
	if _, err := c.CompressFile(os.Stdout, name); err != nil {
		log.Fatalf("%v", err)
	}
}
