package commands

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/techmaster-vietnam/blogkit"
	"github.com/techmaster-vietnam/blogkit/database"
)

// seedCmd seeds demo data into postgres
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo users, categories and blogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return err
		}

		bk := blogkit.New(fiber.New(), blogkit.GormRepositories(db)).WithConfig(cfg).Initialize()
		if err := bk.Seed(); err != nil {
			return err
		}

		fmt.Printf("Seed completed, demo users alice/bob use password %q\n", blogkit.DemoPassword)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
