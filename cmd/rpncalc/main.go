package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/rpncalc"
)

var (
	canonical = flag.Bool("canonical", false, "also print the canonical form of each expression")
	dump      = flag.Bool("dump", false, "also print the Go structure of each expression")
	prompt    = flag.Bool("prompt", false, "prompt for input even if stdin is not a terminal")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	calc := rpncalc.NewCalculator()
	calc.Canonical = *canonical
	calc.Dump = *dump

	f := os.Stdin
	interactive := *prompt
	if flag.NArg() == 1 {
		var err error
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	if err := calc.Run(f, interactive); err != nil {
		log.Fatal(err)
	}
}
