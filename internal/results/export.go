// Atomic CSV and JSON export of stored benchmark results.
package results

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tidyware/stockroom/pkg/types"
)

// csvHeader defines the exported column order.
var csvHeader = []string{
	"run_id", "n", "repetition", "insert_ms", "load_factor",
	"collisions", "search_hit_ms", "search_miss_ms", "delete_ms", "created_at",
}

// ExportCSV writes every stored result to path as CSV, atomically.
func (s *Store) ExportCSV(path string) error {
	all, err := s.Fetch()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return types.ErrNoResults
	}

	return writeAtomic(path, func(w *bufio.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for _, res := range all {
			record := []string{
				res.RunID,
				strconv.Itoa(res.N),
				strconv.Itoa(res.Repetition),
				formatFloat(res.InsertMillis),
				formatFloat(res.LoadFactor),
				strconv.Itoa(res.Collisions),
				formatFloat(res.SearchHitMillis),
				formatFloat(res.SearchMissMillis),
				formatFloat(res.DeleteMillis),
				res.CreatedAt.Format(time.RFC3339Nano),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// ExportJSON writes every stored result to path as an indented JSON
// array, atomically.
func (s *Store) ExportJSON(path string) error {
	all, err := s.Fetch()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return types.ErrNoResults
	}

	return writeAtomic(path, func(w *bufio.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	})
}

// ExportAveragesCSV writes the per-N averages table to path as CSV,
// atomically.
func (s *Store) ExportAveragesCSV(path string) error {
	avgs, err := s.Averages()
	if err != nil {
		return err
	}

	return writeAtomic(path, func(w *bufio.Writer) error {
		cw := csv.NewWriter(w)
		header := []string{
			"n", "repetitions", "insert_ms", "load_factor",
			"collisions", "search_hit_ms", "search_miss_ms", "delete_ms",
		}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for _, avg := range avgs {
			record := []string{
				strconv.Itoa(avg.N),
				strconv.Itoa(avg.Repetitions),
				formatFloat(avg.InsertMillis),
				formatFloat(avg.LoadFactor),
				formatFloat(avg.Collisions),
				formatFloat(avg.SearchHitMillis),
				formatFloat(avg.SearchMissMillis),
				formatFloat(avg.DeleteMillis),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// writeAtomic writes to path using the temp-file, fsync, rename pattern
// so a crashed export never leaves a partial file behind.
func writeAtomic(path string, fill func(*bufio.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := fill(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
