// Package main is the entry point of the weaver CLI, a thin wrapper for
// running a config-file-driven weaver.Server standalone.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
