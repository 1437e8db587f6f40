package main

import (
	"os"

	"go-gin-event-booking/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "event-booking",
	Short: "Event discovery and ticket booking backend",
	Long: `Serves the event discovery and booking API, runs the background
workers that send confirmation mail and expire abandoned bookings,
and applies the database migrations.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			logger.L.Error("failed to display help", zap.Error(err))
		}
	},
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		logger.L.Error("command failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
