package cli

import (
	"fmt"

	"github.com/skyburst/gbmfn/internal/collection"
	"github.com/skyburst/gbmfn/internal/filename"
	"github.com/skyburst/gbmfn/internal/files/filesystem"
	"github.com/skyburst/gbmfn/internal/render"
	"github.com/skyburst/gbmfn/pkg/gbmfn"
	"github.com/spf13/cobra"
)

var existsCmd = &cobra.Command{
	Use:   "exists <name>...",
	Short: "Check that every named product file exists",
	Long: `Exists parses each name and checks that the resolved path is present on
the filesystem, short-circuiting on the first absence. Paths are resolved
against --parent when given, otherwise against each name's own directory
component.

With --detectors, each name is expanded to its per-detector variants first,
so a single "all" product name checks the full detector set.

Examples:
  gbmfn exists /data/bn090131090/glg_cspec_n0_bn090131090_v00.pha

  # Do all 14 detector files of this product exist here?
  gbmfn exists --detectors --parent /data/bn090131090 glg_cspec_all_bn090131090_v00.pha`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExists,
}

var (
	existsParent    string
	existsDetectors bool
)

func init() {
	rootCmd.AddCommand(existsCmd)
	existsCmd.Flags().StringVar(&existsParent, "parent", "", "Resolve basenames against this directory")
	existsCmd.Flags().BoolVar(&existsDetectors, "detectors", false, "Expand each name to its per-detector variants")
}

func runExists(cmd *cobra.Command, args []string) error {
	var records []gbmfn.Record
	for _, name := range args {
		rec, err := filename.FromPath(name)
		if err != nil {
			return err
		}
		if existsDetectors {
			records = append(records, rec.DetectorList()...)
		} else {
			records = append(records, rec)
		}
	}

	r := render.New()
	fs := filesystem.NewOSFileSystem()
	if !collection.AllExist(fs, records, existsParent) {
		fmt.Println(r.Bad("%d file(s) checked: at least one is missing", len(records)))
		return fmt.Errorf("missing product file")
	}

	fmt.Println(r.Good("%d file(s) exist", len(records)))
	return nil
}
