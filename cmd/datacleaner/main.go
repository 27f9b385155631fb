// Package main provides the datacleaner CLI: load a dataset, clean it,
// analyze it, validate it, and export the result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
