package main

import (
	"fmt"
	"os"

	"github.com/LIONant-depot/xbits/cmd"
)

// main is the entry point for the xbits inspector CLI. The heavy
// lifting lives in pkg/xbits; this binary is a thin front end for
// poking at values from a shell.
func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xbits:", err)
		os.Exit(1)
	}
}
