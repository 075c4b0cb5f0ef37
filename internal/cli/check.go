package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skyburst/gbmfn/internal/collection"
	"github.com/skyburst/gbmfn/internal/filename"
	"github.com/skyburst/gbmfn/internal/files/scanner"
	"github.com/skyburst/gbmfn/internal/logging"
	"github.com/skyburst/gbmfn/internal/render"
	"github.com/skyburst/gbmfn/pkg/gbmfn"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Check detector completeness of product sets",
	Long: `Check groups the canonical files under a directory into product sets
(same data type, UID, and version) and reports, per set, whether one file
exists for every member of the detector enumeration.

Sets carrying the "all" detector token are whole-instrument products and are
not subject to per-detector completeness; they are reported as such.

Examples:
  # Report every product set under the trigger directory
  gbmfn check /data/triggers/bn090131090 -r

  # Only show incomplete sets, fail when any exists
  gbmfn check /data/triggers/bn090131090 --missing-only --strict`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runCheck,
}

var (
	checkRecursive   bool
	checkMissingOnly bool
	checkStrict      bool
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkRecursive, "recursive", "r", false, "Descend into subdirectories")
	checkCmd.Flags().BoolVar(&checkMissingOnly, "missing-only", false, "Only report incomplete sets")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit with an error when any set is incomplete")
}

// productKey identifies a product set: the same product across detectors.
type productKey struct {
	dataType  string
	trigger   bool
	uid       string
	version   int
	extension string
}

func (k productKey) String() string {
	uid := k.uid
	if k.trigger {
		uid = gbmfn.TriggerMarker + uid
	}
	return fmt.Sprintf("%s %s v%02d (.%s)", k.dataType, uid, k.version, k.extension)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var dirArg string
	if len(args) == 1 {
		dirArg = args[0]
	}
	root := resolveDataRoot(dirArg)
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	records, err := scanRecords(root, checkRecursive, logger)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		logger.Info("no canonical files under %s", root)
		return nil
	}

	groups := make(map[productKey][]gbmfn.Record)
	for _, rec := range records {
		key := productKey{rec.DataType, rec.Trigger, rec.UID, rec.Version, rec.Extension}
		groups[key] = append(groups[key], rec)
	}

	keys := make([]productKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	r := render.New()
	incomplete := 0
	for _, key := range keys {
		set := groups[key]

		if collection.HasDetector(set, gbmfn.DetectorAll) {
			if !checkMissingOnly {
				fmt.Println(r.Muted("%s %s whole-instrument product", render.SymbolBullet, key))
			}
			continue
		}

		if collection.IsComplete(set) {
			if !checkMissingOnly {
				fmt.Println(r.Good("%s complete (%d detectors)", key, gbmfn.DetectorCount))
			}
			continue
		}

		incomplete++
		fmt.Println(r.Bad("%s missing %s", key, strings.Join(missingDetectors(set), " ")))
	}

	if incomplete > 0 && checkStrict {
		return fmt.Errorf("%d incomplete product set(s) under %s", incomplete, root)
	}
	return nil
}

// scanRecords collects the canonical records under root, tolerating
// non-canonical files.
func scanRecords(root string, recursive bool, logger gbmfn.Logger) ([]gbmfn.Record, error) {
	s := scanner.NewScanner()
	var paths []string
	for path, err := range s.Scan(root, scanner.Options{Recursive: recursive}) {
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	var unknown []string
	records, err := filename.ListFromPaths(paths, &unknown)
	if err != nil {
		return nil, err
	}
	for _, p := range unknown {
		logger.Verbose("skipping non-canonical %s", p)
	}
	return records, nil
}

// missingDetectors lists the codes absent from the set, in canonical order.
func missingDetectors(records []gbmfn.Record) []string {
	var missing []string
	for _, d := range gbmfn.AllDetectors() {
		if !collection.HasDetector(records, d) {
			missing = append(missing, d.Code())
		}
	}
	return missing
}
