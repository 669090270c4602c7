// Package main is the entry point for the vecmcp CLI.
package main

import (
	"os"

	"github.com/kailas-cloud/vecmcp/cmd/vecmcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
