// Shared helpers for stockroom CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidyware/stockroom/internal/results"
)

// attachStore resolves the data directory and attaches the benchmark
// results store. The caller must defer store.Detach().
func attachStore() (*results.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := results.NewStore()
	if err := store.Attach(dataDir); err != nil {
		return nil, fmt.Errorf("attach results store: %w", err)
	}
	return store, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "marshal output: %v\n", err)
	}
}
