// Root command for the stockroom CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/tidyware/stockroom/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// configDefaultCapacity holds the default_capacity value from config.yaml.
var configDefaultCapacity int

var rootCmd = &cobra.Command{
	Use:   "stockroom",
	Short: "Stockroom is a product inventory over a chained hash table",
	Long: `Stockroom manages product inventory in a fixed-capacity hash table
with separate chaining, and measures the table's performance in
benchmark runs whose results are persisted for later export.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDefaultCapacity = cfg.GetInt(cfgKeyDefaultCapacity)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for benchmark results (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(resultsCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > STOCKROOM_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > STOCKROOM_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
