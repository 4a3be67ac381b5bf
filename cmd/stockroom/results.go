// Results commands: list and export persisted benchmark runs.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidyware/stockroom/pkg/types"
)

var (
	resultsRunID      string
	exportFormat      string
	exportOut         string
	exportAveragesCSV bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect persisted benchmark results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored benchmark results",
	Long: `List prints every stored benchmark result, or only those of one run
when --run is given. With --json the raw results are printed; otherwise
a per-N averages table is shown followed by the result count.`,
	Args: cobra.NoArgs,
	RunE: runResultsList,
}

var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored benchmark results to CSV or JSON",
	Long: `Export writes all stored results to a file.

Example:
  stockroom results export --format csv --out results.csv
  stockroom results export --format json --out results.json
  stockroom results export --averages --out averages.csv`,
	Args: cobra.NoArgs,
	RunE: runResultsExport,
}

func init() {
	resultsListCmd.Flags().StringVar(&resultsRunID, "run", "", "limit output to one run ID")

	resultsExportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format: csv or json")
	resultsExportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (required)")
	resultsExportCmd.Flags().BoolVar(&exportAveragesCSV, "averages", false, "export the per-N averages table instead of raw results")
	_ = resultsExportCmd.MarkFlagRequired("out")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsExportCmd)
}

func runResultsList(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	var stored []types.BenchResult
	if resultsRunID != "" {
		stored, err = store.FetchRun(resultsRunID)
	} else {
		stored, err = store.Fetch()
	}
	if err != nil {
		return fmt.Errorf("fetch results: %w", err)
	}

	if flagJSON {
		printJSON(cmd.OutOrStdout(), stored)
		return nil
	}

	if len(stored) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no benchmark results recorded")
		return nil
	}

	printAverages(cmd, types.Averages(stored))
	fmt.Fprintf(cmd.OutOrStdout(), "%d results\n", len(stored))
	return nil
}

func runResultsExport(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	switch {
	case exportAveragesCSV:
		err = store.ExportAveragesCSV(exportOut)
	case exportFormat == "csv":
		err = store.ExportCSV(exportOut)
	case exportFormat == "json":
		err = store.ExportJSON(exportOut)
	default:
		return fmt.Errorf("unknown format %q (csv, json)", exportFormat)
	}

	if errors.Is(err, types.ErrNoResults) {
		return fmt.Errorf("nothing to export: %w", err)
	}
	if err != nil {
		return fmt.Errorf("export results: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", exportOut)
	return nil
}
