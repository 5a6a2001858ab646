package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/export"
	"github.com/Lumos-Labs-HQ/winegen/internal/verify"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const maxListedViolations = 20

var verifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Check a generated dataset for consistency",
	Long: `
Read a dataset written by 'winegen generate' and check every table against
the bounds recorded in its manifest: row counts, id sequences, permutations,
unique values, offer counts per wine and sale arithmetic.

Examples:
  winegen verify
  winegen verify fixtures`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir := cfg.OutputDir
		if len(args) == 1 {
			dir = args[0]
		}

		color.Cyan("🔍 Verifying %s...", dir)
		manifest, snap, err := export.Load(dir)
		if err != nil {
			return fmt.Errorf("failed to load dataset: %w", err)
		}

		report := verify.Check(snap, manifest.Bounds)
		if report.Count != manifest.Count {
			return fmt.Errorf("manifest records %d rows per table, dataset has %d", manifest.Count, report.Count)
		}

		if report.OK() {
			color.Green("✅ Dataset is consistent (%d records, seed %d)", report.Count, manifest.Seed)
			return nil
		}

		for i, v := range report.Violations {
			if i == maxListedViolations {
				color.Yellow("   ... and %d more", len(report.Violations)-maxListedViolations)
				break
			}
			color.Red("   ✗ %s", v)
		}
		return fmt.Errorf("found %d violations", len(report.Violations))
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
