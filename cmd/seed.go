package cmd

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/database"
	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"github.com/Lumos-Labs-HQ/winegen/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate the dataset straight into a database",
	Long: `
Create the eight tables in the configured database and fill them inside a
single transaction. A failed run is rolled back and leaves no rows behind.

The connection URL is read from the environment variable named by
database.url_env (DATABASE_URL by default).

Examples:
  winegen seed
  winegen seed --recreate --force --count 10000
  winegen seed --batch 1000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if cfg.Recreate && !utils.NewInputUtils().AskConfirmation("Drop the existing winegen tables?", force) {
			color.Yellow("⚠️  Seeding cancelled")
			return nil
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		adapter, err := database.NewAdapter(cfg.Database.Provider)
		if err != nil {
			return err
		}

		ctx := context.Background()
		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		if err := adapter.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		r, err := newRun(cfg)
		if err != nil {
			return err
		}

		loader := database.NewLoader(adapter, cfg.Batch, cfg.Recreate, r.log)
		color.Cyan("🔧 Preparing %s schema...", cfg.Database.Provider)
		if err := loader.Prepare(ctx); err != nil {
			return fmt.Errorf("failed to prepare database: %w", err)
		}

		summary, err := seedDatabase(ctx, r, loader)
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}

		printSummary(summary, r.seed())

		for _, table := range dataset.Tables() {
			count, err := adapter.GetTableRowCount(ctx, table.Name)
			if err != nil {
				return err
			}
			if count != summary.Rows[table.Name] {
				color.Yellow("⚠️  %s holds %d rows, %d were generated", table.Name, count, summary.Rows[table.Name])
			}
		}
		return nil
	},
}

// seedDatabase runs the pipeline into a prepared loader. The transaction is
// released on every failure, including ones raised before the first stage.
func seedDatabase(ctx context.Context, r *run, loader *database.Loader) (*dataset.Summary, error) {
	summary, err := r.execute(ctx, loader)
	if err != nil {
		if abortErr := loader.Abort(ctx); abortErr != nil {
			r.log.Warn("failed to roll back", zap.Error(abortErr))
		}
		return nil, err
	}
	return summary, nil
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Bool("recreate", false, "Drop existing tables before loading")
	seedCmd.Flags().Int("batch", database.DefaultBatchSize, "Rows per INSERT statement")

	viper.BindPFlag("recreate", seedCmd.Flags().Lookup("recreate"))
	viper.BindPFlag("batch", seedCmd.Flags().Lookup("batch"))
}
