package main

import (
	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/database"
	"go-gin-event-booking/pkg/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		logger.SetLevel(cfg.LogLevel)
		log := logger.WithComponent("migrate")

		pool, err := database.InitDatabase(&cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		log.Info("running database migrations")
		if err := database.RunMigrations(cmd.Context(), pool); err != nil {
			return err
		}
		log.Info("database migrations completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
