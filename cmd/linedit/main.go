package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/linedit/terminal"
)

var version = "dev"

func main() {
	// Panic Recovery: ensure the terminal is usable even if the editor crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Print after reset so it's visible
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLINEDIT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
