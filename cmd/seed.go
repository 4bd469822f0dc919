package cmd

import (
	"fmt"
	"time"

	"wastewise/internal/database"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the tables and insert starter data",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Seed(db, time.Now()); err != nil {
		return err
	}

	log.Info("database seeded", "driver", cfg.Database.Driver)
	fmt.Println("  Database seeded.")
	return nil
}
