// Command colorlit finds color literals in source files and converts them
// between notations.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "colorlit:", err)
		os.Exit(1)
	}
}
