// Package main is the entry point for pokeroll
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/pokeroll/internal/errors"
)

func main() {
	if err := newRootCmd(&runConfig{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
