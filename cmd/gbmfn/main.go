package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/skyburst/gbmfn/internal/cli"
	"github.com/skyburst/gbmfn/pkg/gbmfn"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(gbmfn.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(gbmfn.ExitCodeForError(err))
	}
}
