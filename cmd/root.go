package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gadomski/utm/internal/config"
)

var (
	cfg *config.Config

	outputFormat    string
	outputPrecision int
)

var rootCmd = &cobra.Command{
	Use:          "utm",
	Short:        "Convert between WGS84 latitude/longitude and UTM",
	Long:         "Projects WGS84 coordinates to Universal Transverse Mercator, converts UTM back to latitude/longitude, resolves zones and serves the same conversions over HTTP.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if cmd.Flags().Changed("format") {
			cfg.Output.Format = outputFormat
		}
		if cmd.Flags().Changed("precision") {
			cfg.Output.Precision = outputPrecision
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		mode := "cli"
		if cmd.Name() == "serve" {
			mode = "serve"
		}
		if err := cfg.Validate(mode); err != nil {
			return err
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "output format: text, json, yaml, geojson, wkt or ewkb (default from config)")
	rootCmd.PersistentFlags().IntVar(&outputPrecision, "precision", 3, "decimal places for metres in text output (default from config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
