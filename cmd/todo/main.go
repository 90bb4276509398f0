package main

import (
	"fmt"
	"os"
	"time"
)

// startedAt is read as early as possible so the startup diagnostic
// covers flag parsing and config loading.
var startedAt = time.Now()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
