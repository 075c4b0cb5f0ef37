package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/skyburst/gbmfn/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gbmfn",
	Short: "Data-product filename toolkit",
	Long: `gbmfn works with the canonical filename convention of the instrument's
data-distribution pipeline:

  glg_<data_type>_<detector>_<trigger?><uid><meta?>_v<version>.<extension>

It parses names into structured records and back, enumerates directories,
checks detector completeness and file existence, extracts version ranges,
and derives date-partitioned paths.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Name does not match the canonical filename grammar
  21 - Unresolvable detector code, name, or index
  22 - Unparseable date source`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for gbmfn")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// resolveDataRoot picks the working root for directory commands:
// the positional argument when given, then $GBMFN_DATA_ROOT (with .env
// loaded), then the project config's data_root, then the current directory.
func resolveDataRoot(arg string) string {
	if arg != "" {
		return arg
	}

	// Load .env if present (silent fail if not)
	_ = godotenv.Load()

	if root := os.Getenv("GBMFN_DATA_ROOT"); root != "" {
		return root
	}

	if cfg, err := config.Load("."); err == nil && cfg.DataRoot != "" {
		return cfg.DataRoot
	}

	return "."
}

// loadScanDefaults returns the project config's scan defaults, or zero
// values when no config file exists.
func loadScanDefaults() config.ScanConfig {
	cfg, err := config.Load(".")
	if err != nil {
		return config.ScanConfig{}
	}
	return cfg.Scan
}
