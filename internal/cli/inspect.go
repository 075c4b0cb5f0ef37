package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skyburst/gbmfn/internal/filename"
	"github.com/skyburst/gbmfn/internal/render"
	"github.com/skyburst/gbmfn/pkg/gbmfn"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <name>...",
	Short: "Parse canonical filenames and show their fields",
	Long: `Inspect parses each name against the canonical filename grammar and
prints the extracted fields. A directory component, if present, is stripped
before matching and reported as the record's directory.

Examples:
  # Show the fields of one product
  gbmfn inspect glg_cspec_n0_bn090131090_v00.pha

  # Machine-readable output
  gbmfn inspect --json glg_tte_nb_190305_600_v01.fit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

var inspectJSON bool

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Emit records as JSON")
}

// recordJSON is the machine-readable projection of a record.
type recordJSON struct {
	Name      string `json:"name"`
	DataType  string `json:"data_type"`
	Detector  string `json:"detector"`
	Trigger   bool   `json:"trigger"`
	UID       string `json:"uid"`
	Meta      string `json:"meta,omitempty"`
	Version   int    `json:"version"`
	Extension string `json:"extension"`
	Directory string `json:"directory,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	records := make([]gbmfn.Record, 0, len(args))
	for _, name := range args {
		rec, err := filename.FromPath(name)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	if inspectJSON {
		out := make([]recordJSON, len(records))
		for i, rec := range records {
			out[i] = recordJSON{
				Name:      rec.Basename(),
				DataType:  rec.DataType,
				Detector:  rec.Detector.Code(),
				Trigger:   rec.Trigger,
				UID:       rec.UID,
				Meta:      strings.TrimPrefix(rec.Meta, "_"),
				Version:   rec.Version,
				Extension: rec.Extension,
				Directory: rec.Directory,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	r := render.New()
	for i, rec := range records {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(r.Fields(rec))
	}
	return nil
}
