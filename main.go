package main

import (
	"fmt"
	"os"

	"github.com/rdgen-io/rdgen/cmd"
)

// Populated at build time via -ldflags "-X main.version=...".
var (
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

func main() {
	if err := cmd.Execute(version, gitCommit, buildTime); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
