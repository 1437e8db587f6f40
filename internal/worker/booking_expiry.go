package worker

import (
	"context"
	"time"

	"go-gin-event-booking/internal/service"
	"go-gin-event-booking/pkg/logger"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// BookingExpiryScheduler periodically cancels pending bookings whose checkout was abandoned.
type BookingExpiryScheduler struct {
	scheduler gocron.Scheduler
}

func NewBookingExpiryScheduler(
	ctx context.Context,
	bookings service.BookingService,
	clock clockwork.Clock,
	interval, olderThan time.Duration,
) (*BookingExpiryScheduler, error) {
	opts := []gocron.SchedulerOption{}
	if clock != nil {
		opts = append(opts, gocron.WithClock(clock))
	}
	scheduler, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, err
	}

	log := logger.WithComponent("scheduler")
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			n, err := bookings.ExpireStale(ctx, olderThan)
			if err != nil {
				log.Error("failed to expire stale bookings", zap.Error(err))
				return
			}
			log.Debug("booking expiry run", zap.Int("cancelled", n))
		}),
		gocron.WithName("expire-stale-bookings"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, err
	}

	return &BookingExpiryScheduler{scheduler: scheduler}, nil
}

// Run starts the scheduler and blocks until ctx is done.
func (s *BookingExpiryScheduler) Run(ctx context.Context) error {
	s.scheduler.Start()
	<-ctx.Done()
	return s.scheduler.Shutdown()
}
