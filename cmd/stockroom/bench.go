// Bench command: runs the timed operation suite and persists the
// measurements.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidyware/stockroom/internal/bench"
	"github.com/tidyware/stockroom/pkg/types"
)

var (
	benchSizes    []int
	benchReps     int
	benchCapacity int
	benchNoSave   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the benchmark suite and persist the results",
	Long: `Bench builds a fresh table per repetition, then times batch
insertion, searches for existing and absent keys, and deletion, at each
configured element count. Results are stored in the data directory
unless --no-save is given.

Example:
  stockroom bench
  stockroom bench --sizes 100,1000 --reps 5 --capacity 500
  stockroom bench --json --no-save`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", nil, "element counts to benchmark (default from config)")
	benchCmd.Flags().IntVar(&benchReps, "reps", 0, "repetitions per element count (default from config)")
	benchCmd.Flags().IntVar(&benchCapacity, "capacity", 0, "expected-capacity hint for each table")
	benchCmd.Flags().BoolVar(&benchNoSave, "no-save", false, "run without persisting results")
}

func runBench(cmd *cobra.Command, args []string) error {
	runner := bench.NewRunner(benchConfig())
	if !flagJSON {
		runner.Logf = func(format string, a ...any) {
			fmt.Fprintf(cmd.OutOrStdout(), format+"\n", a...)
		}
	}

	benchResults, err := runner.Run()
	if err != nil {
		return fmt.Errorf("run benchmarks: %w", err)
	}

	if !benchNoSave {
		store, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := store.SaveAll(benchResults); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
	}

	if flagJSON {
		printJSON(cmd.OutOrStdout(), benchResults)
		return nil
	}

	printAverages(cmd, types.Averages(benchResults))
	if benchNoSave {
		fmt.Fprintln(cmd.OutOrStdout(), "results not saved (--no-save)")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "saved %d results (run %s)\n", len(benchResults), benchResults[0].RunID)
	}
	return nil
}

// benchConfig merges flags over config.yaml values; the runner fills
// remaining defaults.
func benchConfig() bench.Config {
	cfg := bench.Config{
		Sizes:       benchSizes,
		Repetitions: benchReps,
		Capacity:    benchCapacity,
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return cfg
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return cfg
	}

	if len(cfg.Sizes) == 0 {
		cfg.Sizes = v.GetIntSlice(cfgKeyBenchSizes)
	}
	if cfg.Repetitions == 0 {
		cfg.Repetitions = v.GetInt(cfgKeyBenchReps)
	}
	return cfg
}

// printAverages renders the per-N averages table.
func printAverages(cmd *cobra.Command, avgs []types.BenchAverage) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s%-8s%-14s%-14s%-12s%-16s%-16s%-14s\n",
		"N", "reps", "insert(ms)", "load(%)", "collisions", "search hit(ms)", "search miss(ms)", "delete(ms)")
	for _, avg := range avgs {
		fmt.Fprintf(out, "%-8d%-8d%-14.4f%-14.2f%-12.1f%-16.4f%-16.4f%-14.4f\n",
			avg.N, avg.Repetitions, avg.InsertMillis, avg.LoadFactor,
			avg.Collisions, avg.SearchHitMillis, avg.SearchMissMillis, avg.DeleteMillis)
	}
}
