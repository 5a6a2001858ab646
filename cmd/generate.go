package cmd

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"github.com/Lumos-Labs-HQ/winegen/internal/export"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset as CSV or JSON files",
	Long: `
Generate all eight tables and write them to the output directory together
with a manifest.yaml. Files are staged and only replace a previous dataset
once every table has been written.

Examples:
  winegen generate
  winegen generate --count 5000 --seed 42
  winegen generate --format json --out fixtures`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		r, err := newRun(cfg)
		if err != nil {
			return err
		}

		meta := export.Meta{RunID: r.id, Seed: r.seed(), Count: cfg.Count, Bounds: cfg.Bounds}

		var target dataset.SinkFactory
		switch cfg.Format {
		case "json":
			target = export.NewJSONTarget(cfg.OutputDir, meta)
		default:
			delim, err := cfg.DelimiterRune()
			if err != nil {
				return err
			}
			target = export.NewCSVTarget(cfg.OutputDir, delim, meta)
		}

		summary, err := r.execute(context.Background(), target)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		printSummary(summary, r.seed())
		color.White("   Output: %s (%s)", cfg.OutputDir, cfg.Format)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("out", "o", "data", "Output directory")
	generateCmd.Flags().String("format", "csv", "Output format (csv, json)")
	generateCmd.Flags().String("delimiter", "|", "CSV field delimiter")

	viper.BindPFlag("output_dir", generateCmd.Flags().Lookup("out"))
	viper.BindPFlag("format", generateCmd.Flags().Lookup("format"))
	viper.BindPFlag("delimiter", generateCmd.Flags().Lookup("delimiter"))
}
