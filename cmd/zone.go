package main

import (
	"github.com/spf13/cobra"

	"github.com/gadomski/utm/internal/convert"
)

var (
	zoneLat float64
	zoneLon float64
)

var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Show the UTM zone containing a latitude/longitude",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := convert.ZoneOf(zoneLat, zoneLon)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), cfg.Output, info, nil)
	},
}

func init() {
	zoneCmd.Flags().Float64Var(&zoneLat, "lat", 0, "latitude in decimal degrees")
	zoneCmd.Flags().Float64Var(&zoneLon, "lon", 0, "longitude in decimal degrees")
	_ = zoneCmd.MarkFlagRequired("lat")
	_ = zoneCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(zoneCmd)
}
