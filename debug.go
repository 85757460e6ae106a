//go:build debug

package main

import (
	"fmt"
	"os"
)

// debugLog writes to stderr when built with -tags debug.
func debugLog(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[debug] "+format+"\n", args...)
}
