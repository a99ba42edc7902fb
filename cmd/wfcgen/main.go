// Command wfcgen is a console front-end over the wfc library: it loads a
// YAML rule file, runs Wave Function Collapse over a rectangular grid, and
// prints the result. It holds no persisted state; every run recomputes
// everything from the rule file and the flags given.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wfcgen:", err)
		os.Exit(1)
	}
}
