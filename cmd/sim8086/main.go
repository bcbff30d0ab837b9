// Command sim8086 decodes a raw 8086/8088 instruction stream and prints it
// as `bits 16` assembly text, optionally executing the decoded subset
// against a small register/flag model.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/binarysweep/sim8086/decoder"
	"github.com/binarysweep/sim8086/executor"
	"github.com/binarysweep/sim8086/printer"
	"github.com/binarysweep/sim8086/reader"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-e|-E] <file>\n", os.Args[0])
}

func main() {
	var execFlagLower, execFlagUpper bool
	flag.BoolVar(&execFlagLower, "e", false, "disassemble and execute")
	flag.BoolVar(&execFlagUpper, "E", false, "disassemble and execute")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	execute := execFlagLower || execFlagUpper
	filename := flag.Arg(0)

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sim8086: failed to open file: %v\n", err)
		os.Exit(1)
	}

	for _, line := range printer.Preamble(filename) {
		fmt.Println(line)
	}

	r := reader.New(data)
	state := executor.New()

	for !r.AtEOF() {
		inst, err := decoder.Decode(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sim8086: decode error at offset %d: %v\n", r.Offset(), err)
			os.Exit(1)
		}

		line := printer.Print(inst)
		if inst.NoNewline {
			fmt.Print(line + " ")
			continue
		}
		if execute {
			line += "  " + state.Step(inst)
		}
		fmt.Println(line)
	}

	if execute {
		for _, line := range state.FinalState() {
			fmt.Println(line)
		}
	}
}
