package cli

import (
	"fmt"
	"time"

	"github.com/skyburst/gbmfn/internal/datepath"
	"github.com/skyburst/gbmfn/pkg/gbmfn"
	"github.com/spf13/cobra"
)

var datepathCmd = &cobra.Command{
	Use:   "datepath <base> <value>",
	Short: "Derive the date-partitioned subdirectory for a product",
	Long: `Datepath resolves the YYYY-MM-DD subdirectory under base for a value
that is either a calendar date (YYYY-MM-DD) or a canonical filename, whose
six-digit date-id is extracted from the UID.

Examples:
  gbmfn datepath /data/daily 2019-03-05
  gbmfn datepath /data/daily glg_ctime_nb_190305_v00.pha`,
	Args: cobra.ExactArgs(2),
	RunE: runDatepath,
}

func init() {
	rootCmd.AddCommand(datepathCmd)
}

func runDatepath(cmd *cobra.Command, args []string) error {
	base, value := args[0], args[1]

	// A calendar date takes precedence over filename extraction so that
	// "2019-03-05" is never misread as a date-id with trailing junk.
	if t, err := time.Parse(gbmfn.DatePathLayout, value); err == nil {
		p, err := datepath.YMD(base, t)
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	}

	p, err := datepath.YMD(base, value)
	if err != nil {
		return err
	}
	fmt.Println(p)
	return nil
}
