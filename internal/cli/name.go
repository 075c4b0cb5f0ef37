package cli

import (
	"fmt"

	"github.com/skyburst/gbmfn/internal/config"
	"github.com/skyburst/gbmfn/internal/datepath"
	"github.com/skyburst/gbmfn/internal/filename"
	"github.com/skyburst/gbmfn/pkg/gbmfn"
	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Build a canonical filename from field values",
	Long: `Name assembles a canonical filename from explicit field values. The
detector accepts a short code, a full name, or "all"; the version is
zero-padded to two digits; the extension defaults to the convention's
default (or gbmfn.yaml's extension override).

Examples:
  gbmfn name --type cspec --detector n0 --trigger --uid 090131090 --ext pha

  # Per-detector variants of one product
  gbmfn name --type ctime --detector all --uid 190305 --detectors

  # Full path including the date-partitioned directory
  gbmfn name --type ctime --detector nb --uid 190305 --under /data/daily`,
	Args: cobra.NoArgs,
	RunE: runName,
}

var (
	nameType      string
	nameDetector  string
	nameTrigger   bool
	nameUID       string
	nameMeta      string
	nameVersion   int
	nameExtension string
	nameDetectors bool
	nameUnder     string
)

func init() {
	rootCmd.AddCommand(nameCmd)

	nameCmd.Flags().StringVar(&nameType, "type", "", "Data-type token (required)")
	nameCmd.Flags().StringVarP(&nameDetector, "detector", "d", "all", "Detector code, full name, or \"all\"")
	nameCmd.Flags().BoolVar(&nameTrigger, "trigger", false, "Mark the UID as a triggered event")
	nameCmd.Flags().StringVar(&nameUID, "uid", "", "Unique-id token (required)")
	nameCmd.Flags().StringVar(&nameMeta, "meta", "", "Optional meta content between UID and version")
	nameCmd.Flags().IntVar(&nameVersion, "version", 0, "Two-digit product version")
	nameCmd.Flags().StringVar(&nameExtension, "ext", "", "File extension (default from config or convention)")
	nameCmd.Flags().BoolVar(&nameDetectors, "detectors", false, "Print one name per detector in canonical order")
	nameCmd.Flags().StringVar(&nameUnder, "under", "", "Print full paths under this base, in the date-partitioned subdirectory")
	_ = nameCmd.MarkFlagRequired("type")
	_ = nameCmd.MarkFlagRequired("uid")
	_ = nameCmd.RegisterFlagCompletionFunc("detector", completeDetectorNames)
}

func runName(cmd *cobra.Command, args []string) error {
	ext := nameExtension
	if ext == "" {
		if cfg, err := config.Load("."); err == nil && cfg.Extension != "" {
			ext = cfg.Extension
		}
	}

	fields := filename.Fields{
		"data_type": nameType,
		"detector":  nameDetector,
		"trigger":   nameTrigger,
		"uid":       nameUID,
		"meta":      nameMeta,
		"version":   nameVersion,
	}
	if ext != "" {
		fields["extension"] = ext
	}

	rec, err := filename.New(fields)
	if err != nil {
		return err
	}

	if nameUnder != "" {
		dir, err := datepath.YMD(nameUnder, rec)
		if err != nil {
			return err
		}
		rec.Directory = dir
	}

	records := []gbmfn.Record{rec}
	if nameDetectors {
		records = rec.DetectorList()
	}
	for _, r := range records {
		if nameUnder != "" {
			fmt.Println(r.FullPath())
		} else {
			fmt.Println(r.Basename())
		}
	}
	return nil
}
