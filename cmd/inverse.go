package main

import (
	"github.com/spf13/cobra"

	"github.com/gadomski/utm/internal/convert"
	"github.com/gadomski/utm/pkg/utm"
)

var (
	inverseEasting  float64
	inverseNorthing float64
	inverseZone     string
)

var inverseCmd = &cobra.Command{
	Use:     "inverse",
	Short:   "Convert a UTM position to latitude/longitude",
	Example: `  utm inverse --easting 313784 --northing 5427057 --zone 60G`,
	RunE: func(cmd *cobra.Command, args []string) error {
		zone, err := utm.ParseZone(inverseZone)
		if err != nil {
			return err
		}
		g, err := convert.Unproject(inverseEasting, inverseNorthing, zone)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), cfg.Output, g, g.Geometry())
	},
}

func init() {
	inverseCmd.Flags().Float64Var(&inverseEasting, "easting", 0, "easting in metres")
	inverseCmd.Flags().Float64Var(&inverseNorthing, "northing", 0, "northing in metres, including the false northing in the south")
	inverseCmd.Flags().StringVar(&inverseZone, "zone", "", "zone number and latitude band, e.g. 60G")
	_ = inverseCmd.MarkFlagRequired("easting")
	_ = inverseCmd.MarkFlagRequired("northing")
	_ = inverseCmd.MarkFlagRequired("zone")
	rootCmd.AddCommand(inverseCmd)
}
