package commands

import (
	"github.com/spf13/cobra"
	"github.com/techmaster-vietnam/blogkit/database"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the PostgreSQL schema with the embedded migrations.

Subcommands:
  up      - Apply pending migrations
  down    - Rollback all migrations
  reset   - Drop every table and migrate again (deletes all data)`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return err
		}
		return database.Migrate(db, cfg.Database.Name)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Rollback all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return err
		}
		return database.Down(db, cfg.Database.Name)
	},
}

var migrateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop all tables and migrate again",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return err
		}
		return database.Reset(db, cfg.Database.Name)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateResetCmd)
}
