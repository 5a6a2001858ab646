package cmd

import (
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/winegen/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "0.3.0"
)

func showBanner() {
	redColor := color.New(color.FgRed, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════════════╗",
		"║   ██╗    ██╗██╗███╗   ██╗███████╗ ██████╗ ███████╗███╗   ██╗ ║",
		"║   ██║    ██║██║████╗  ██║██╔════╝██╔════╝ ██╔════╝████╗  ██║ ║",
		"║   ██║ █╗ ██║██║██╔██╗ ██║█████╗  ██║  ███╗█████╗  ██╔██╗ ██║ ║",
		"║   ██║███╗██║██║██║╚██╗██║██╔══╝  ██║   ██║██╔══╝  ██║╚██╗██║ ║",
		"║   ╚███╔███╔╝██║██║ ╚████║███████╗╚██████╔╝███████╗██║ ╚████║ ║",
		"║    ╚══╝╚══╝ ╚═╝╚═╝  ╚═══╝╚══════╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝ ║",
		"║                                                              ║",
		"║          🍷 Synthetic wine retail datasets 🍷                ║",
		"╚══════════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		redColor.Println(line)
	}

	fmt.Print("                        ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "winegen",
	Short: "Generate a consistent synthetic dataset for a wine retail system",
	Long: `
winegen builds eight related tables (bonus cards, customers, suppliers,
users, wines, supplier offers, sales and purchases) whose foreign keys,
uniqueness rules and price arithmetic all hold.

Targets:
- CSV or JSON files with a manifest
- PostgreSQL, MySQL or SQLite through a single transaction`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("winegen version %s\n", Version)
			return
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmations")
	rootCmd.PersistentFlags().IntP("count", "n", 1000, "Number of records N per base table")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file")

	viper.BindPFlag("count", rootCmd.PersistentFlags().Lookup("count"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("metrics_file", rootCmd.PersistentFlags().Lookup("metrics-file"))

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName(strings.TrimSuffix(config.FileName, ".json"))
	}

	viper.SetEnvPrefix("WINEGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			color.Yellow("⚠️  Could not read config file: %v", err)
		}
	}
}

// loadConfig returns the validated configuration for a command.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
