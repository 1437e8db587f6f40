package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/worker"
	"go-gin-event-booking/pkg/logger"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Send confirmation mail and expire abandoned bookings",
	RunE:  runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	log := logger.WithComponent("worker")

	if cfg.Worker.ConsumerID == "" {
		if hostname, err := os.Hostname(); err == nil {
			cfg.Worker.ConsumerID = hostname
		}
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if a.inProcessQueue {
		// The in-process queue only carries jobs published by this process, which publishes none.
		log.Warn("redis unavailable, confirmation mail is left to the api process")
	} else {
		emailWorker := worker.NewEmailWorker(a.notifications, a.emailQueue, emailRetryDelay)
		if err := emailWorker.Start(ctx); err != nil {
			return err
		}
		log.Info("email worker started", zap.String("consumer_id", cfg.Worker.ConsumerID))
	}

	expiry, err := worker.NewBookingExpiryScheduler(ctx, a.bookings, clockwork.NewRealClock(),
		cfg.Worker.ExpiryInterval, cfg.Worker.PendingExpiry)
	if err != nil {
		return err
	}
	g.Go(func() error {
		log.Info("booking expiry scheduler started",
			zap.Duration("interval", cfg.Worker.ExpiryInterval),
			zap.Duration("pending_expiry", cfg.Worker.PendingExpiry))
		return expiry.Run(ctx)
	})

	err = g.Wait()
	log.Info("worker stopped")
	return err
}
