package cli

import (
	"fmt"
	"regexp"

	"github.com/skyburst/gbmfn/internal/collection"
	"github.com/skyburst/gbmfn/internal/filename"
	"github.com/skyburst/gbmfn/internal/files/scanner"
	"github.com/skyburst/gbmfn/internal/logging"
	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions [dir]",
	Short: "Show the version range of matching product files",
	Long: `Versions folds the two-digit version field over the canonical files under
a directory and prints the minimum and maximum. Files that do not conform to
the grammar are skipped silently.

Examples:
  # Version range of all CSPEC products for one trigger
  gbmfn versions /data/bn090131090 --pattern '^glg_cspec_'`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runVersions,
}

var (
	versionsRecursive bool
	versionsPattern   string
)

func init() {
	rootCmd.AddCommand(versionsCmd)
	versionsCmd.Flags().BoolVarP(&versionsRecursive, "recursive", "r", false, "Descend into subdirectories")
	versionsCmd.Flags().StringVar(&versionsPattern, "pattern", "", "Only consider files whose name matches this regexp")
}

func runVersions(cmd *cobra.Command, args []string) error {
	var dirArg string
	if len(args) == 1 {
		dirArg = args[0]
	}
	root := resolveDataRoot(dirArg)
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	opts := scanner.Options{Recursive: versionsRecursive}
	if versionsPattern != "" {
		re, err := regexp.Compile(versionsPattern)
		if err != nil {
			return fmt.Errorf("invalid --pattern: %w", err)
		}
		opts.Pattern = re
	}

	s := scanner.NewScanner()
	var paths []string
	for path, err := range s.Scan(root, opts) {
		if err != nil {
			return err
		}
		paths = append(paths, path)
	}

	var unknown []string
	records, err := filename.ListFromPaths(paths, &unknown)
	if err != nil {
		return err
	}
	for _, p := range unknown {
		logger.Verbose("skipping non-canonical %s", p)
	}

	min, ok := collection.MinVersion(records)
	if !ok {
		logger.Info("no canonical files under %s", root)
		return nil
	}
	max, _ := collection.MaxVersion(records)

	fmt.Printf("min v%02d\nmax v%02d\n", min, max)
	return nil
}
