package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/database"
	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the CREATE TABLE statements for a database provider",
	Long: `
Print the DDL 'winegen seed' runs, in table creation order.

Examples:
  winegen schema
  winegen schema --provider sqlite > schema.sql`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, _ := cmd.Flags().GetString("provider")
		if provider == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			provider = cfg.Database.Provider
		}

		adapter, err := database.NewAdapter(provider)
		if err != nil {
			return err
		}

		for _, table := range dataset.Tables() {
			fmt.Println(adapter.GenerateCreateTableSQL(table))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().String("provider", "", "Database provider (postgresql, mysql, sqlite); defaults to the config")
}
