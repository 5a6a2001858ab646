package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Lumos-Labs-HQ/winegen/internal/config"
	"github.com/Lumos-Labs-HQ/winegen/template"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	sqliteFlag     bool
	postgresqlFlag bool
	mysqlFlag      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a winegen.config.json with default bounds",
	Long:  `Write a config file with every bound set to its default and add a DATABASE_URL example to .env.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbType := template.PostgreSQL
		flagCount := 0

		if sqliteFlag {
			dbType = template.SQLite
			flagCount++
		}
		if postgresqlFlag {
			dbType = template.PostgreSQL
			flagCount++
		}
		if mysqlFlag {
			dbType = template.MySQL
			flagCount++
		}

		if flagCount > 1 {
			return fmt.Errorf("please specify only one database type (--sqlite, --postgresql, or --mysql)")
		}

		force, _ := cmd.Flags().GetBool("force")
		return initializeProject(dbType, force)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&sqliteFlag, "sqlite", false, "Configure a SQLite database")
	initCmd.Flags().BoolVar(&postgresqlFlag, "postgresql", false, "Configure a PostgreSQL database")
	initCmd.Flags().BoolVar(&mysqlFlag, "mysql", false, "Configure a MySQL database")
}

func initializeProject(dbType template.DatabaseType, force bool) error {
	if _, err := os.Stat(config.FileName); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
	}

	tmpl := template.NewProjectTemplate(dbType)

	content, err := tmpl.GetConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(config.FileName, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to create file %s: %w", config.FileName, err)
	}

	if err := handleEnvFile(tmpl.GetEnvTemplate()); err != nil {
		return fmt.Errorf("failed to handle .env file: %w", err)
	}

	color.Green("✅ Created %s for %s", config.FileName, dbType)

	if os.Getenv("DATABASE_URL") != "" {
		fmt.Println()
		fmt.Println("ℹ️  Using existing DATABASE_URL from environment")
	}

	fmt.Println()
	fmt.Printf("🚀 Next steps:\n")
	fmt.Printf("   winegen generate   # Write CSV files to ./data\n")
	fmt.Printf("   winegen verify     # Check the generated files\n")
	fmt.Printf("   winegen seed       # Load a database\n")

	return nil
}

func handleEnvFile(defaultEnvContent string) error {
	envPath := ".env"

	existingContent, err := os.ReadFile(envPath)
	if err != nil {
		if os.IsNotExist(err) {
			return os.WriteFile(envPath, []byte(defaultEnvContent), 0644)
		}
		return err
	}

	existingStr := string(existingContent)
	if strings.Contains(existingStr, "DATABASE_URL") {
		return nil
	}

	if len(existingStr) > 0 && !strings.HasSuffix(existingStr, "\n") {
		existingStr += "\n"
	}

	existingStr += "\n# Added by winegen\n" + defaultEnvContent

	return os.WriteFile(envPath, []byte(existingStr), 0644)
}
