package cli

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/skyburst/gbmfn/internal/filename"
	"github.com/skyburst/gbmfn/internal/files/scanner"
	"github.com/skyburst/gbmfn/internal/logging"
	"github.com/skyburst/gbmfn/pkg/gbmfn"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "List canonical data-product files under a directory",
	Long: `Scan enumerates a directory and prints the paths of files whose names
conform to the canonical filename grammar. Non-conforming files are skipped
(use --all to print every file). Hidden entries are skipped unless --hidden
is set.

When dir is omitted, the root is taken from $GBMFN_DATA_ROOT, then from
gbmfn.yaml's data_root, then the current directory.

Examples:
  # Canonical files in the current directory
  gbmfn scan

  # Whole tree, absolute paths, only CSPEC products
  gbmfn scan /data/triggers -r --absolute --pattern '^glg_cspec_'`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
}

var (
	scanRecursive bool
	scanHidden    bool
	scanAbsolute  bool
	scanPattern   string
	scanAll       bool
	scanDetector  string
)

func init() {
	rootCmd.AddCommand(scanCmd)

	defaults := loadScanDefaults()
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", defaults.Recursive, "Descend into subdirectories")
	scanCmd.Flags().BoolVar(&scanHidden, "hidden", defaults.IncludeHidden, "Include hidden entries")
	scanCmd.Flags().BoolVar(&scanAbsolute, "absolute", defaults.Absolute, "Print absolute paths")
	scanCmd.Flags().StringVar(&scanPattern, "pattern", "", "Only yield files whose name matches this regexp")
	scanCmd.Flags().BoolVar(&scanAll, "all", false, "Print every file, not just canonical ones")
	scanCmd.Flags().StringVarP(&scanDetector, "detector", "d", "", "Only yield products of this detector (code, full name, or index)")
	_ = scanCmd.RegisterFlagCompletionFunc("detector", completeDetectorNames)
}

// buildScanOptions assembles scanner options from the flags.
func buildScanOptions() (scanner.Options, error) {
	opts := scanner.Options{
		IncludeHidden: scanHidden,
		Recursive:     scanRecursive,
		Absolute:      scanAbsolute,
	}
	if scanPattern != "" {
		re, err := regexp.Compile(scanPattern)
		if err != nil {
			return scanner.Options{}, fmt.Errorf("invalid --pattern: %w", err)
		}
		opts.Pattern = re
	}
	return opts, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	var dirArg string
	if len(args) == 1 {
		dirArg = args[0]
	}
	root := resolveDataRoot(dirArg)
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	opts, err := buildScanOptions()
	if err != nil {
		return err
	}

	wantDetector := gbmfn.DetectorAll
	if scanDetector != "" {
		wantDetector, err = gbmfn.DetectorFromName(scanDetector)
		if err != nil {
			return err
		}
	}

	logger.Verbose("scanning %s (recursive=%t hidden=%t)", root, opts.Recursive, opts.IncludeHidden)

	s := scanner.NewScanner()
	count := 0
	for path, err := range s.Scan(root, opts) {
		if err != nil {
			return err
		}
		if !scanAll || scanDetector != "" {
			rec, perr := filename.FromPath(path)
			if perr != nil {
				if errors.Is(perr, gbmfn.ErrNoMatch) {
					logger.Verbose("skipping non-canonical %s", path)
					continue
				}
				return perr
			}
			// "--detector all" selects whole-instrument products, since
			// DetectorAll is what their records carry.
			if scanDetector != "" && rec.Detector != wantDetector {
				continue
			}
		}
		fmt.Println(path)
		count++
	}

	logger.Verbose("%d file(s)", count)
	return nil
}
