package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/techmaster-vietnam/blogkit/config"
	"github.com/techmaster-vietnam/goerrorkit"
)

var (
	// Global flags
	envFile string

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blogkit",
	Short: "BlogKit - blog API server",
	Long: `BlogKit serves a JSON blog API (posts, categories, comments, auth)
on top of PostgreSQL or an in-memory store.

Configuration is read from environment variables, optionally loaded from a .env file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file
		if err := godotenv.Load(envFile); err != nil {
			_ = goerrorkit.WrapWithMessage(err, "Warning: .env file not found, using default values or environment variables")
		}

		cfg = config.LoadConfig()
		initLogger(cfg.Log)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to .env file")
}

// initLogger khởi tạo goerrorkit logger và stack trace cho application
func initLogger(lc config.LogConfig) {
	goerrorkit.InitLogger(goerrorkit.LoggerOptions{
		ConsoleOutput: true,
		FileOutput:    lc.FileOutput,
		FilePath:      lc.FilePath,
		JSONFormat:    lc.JSONFormat,
		MaxFileSize:   lc.MaxFileSize,
		MaxBackups:    lc.MaxBackups,
		MaxAge:        lc.MaxAge,
		LogLevel:      lc.Level,
	})

	goerrorkit.ConfigureForApplication("main")
}
