// Package main provides the stockroom CLI: an interactive inventory
// shell over a fixed-capacity chained hash table, a benchmark suite,
// and access to persisted benchmark results.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
