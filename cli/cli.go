package main

import (
	"fmt"
	"os"
)

const usage = `iheap <command> [args]

commands:
  demo                     walk the classic priority queue exercises,
                           printing heap values and recorded slots
  merge <file> [file...]   k-way merge sorted text files to stdout;
                           .lz4 inputs are decompressed on the fly
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	var err error
	switch os.Args[1] {
	case "demo":
		err = CmdDemo(os.Stdout)
	case "merge":
		err = CmdMerge(os.Stdout, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "iheap: %s\n", err.Error())
		os.Exit(1)
	}
}
