package main

import (
	"github.com/spf13/cobra"

	"github.com/gadomski/utm/internal/convert"
)

var (
	forwardLat  float64
	forwardLon  float64
	forwardZone int
)

var forwardCmd = &cobra.Command{
	Use:     "forward",
	Short:   "Project a latitude/longitude to UTM",
	Example: `  utm forward --lat 60.9679875497 --lon -149.119325194 --format geojson`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := convert.Project(forwardLat, forwardLon, forwardZone)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), cfg.Output, p, p.Geometry())
	},
}

func init() {
	forwardCmd.Flags().Float64Var(&forwardLat, "lat", 0, "latitude in decimal degrees")
	forwardCmd.Flags().Float64Var(&forwardLon, "lon", 0, "longitude in decimal degrees")
	forwardCmd.Flags().IntVar(&forwardZone, "zone", 0, "force a UTM zone number 1-60 (default: zone containing the point)")
	_ = forwardCmd.MarkFlagRequired("lat")
	_ = forwardCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(forwardCmd)
}
