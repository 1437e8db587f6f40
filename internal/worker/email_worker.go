package worker

import (
	"context"
	"errors"
	"time"

	"go-gin-event-booking/internal/queue"
	"go-gin-event-booking/internal/service"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"go.uber.org/zap"
)

type EmailWorker interface {
	// Start subscribes to the email queue and processes jobs until ctx is done.
	Start(ctx context.Context) error
}

type EmailWorkerImpl struct {
	service    service.NotificationService
	queue      queue.EmailQueue
	retryDelay time.Duration
}

// NewEmailWorker returns a worker that waits retryDelay before handing a failed job back to the queue.
func NewEmailWorker(service service.NotificationService, queue queue.EmailQueue, retryDelay time.Duration) EmailWorker {
	return &EmailWorkerImpl{
		service:    service,
		queue:      queue,
		retryDelay: retryDelay,
	}
}

func (w *EmailWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeEmailJobs(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			w.handle(ctx, msg)
		}
	}()
	return nil
}

func (w *EmailWorkerImpl) handle(ctx context.Context, msg queue.Delivery) {
	log := logger.WithComponent("worker")
	if msg.Data == nil {
		msg.Ack()
		return
	}
	log = log.With(zap.String("booking_id", msg.Data.BookingID.String()))

	err := w.service.SendBookingConfirmation(ctx, msg.Data.BookingID)
	switch {
	case err == nil:
		msg.Ack()
	case errors.Is(err, apperrors.ErrNotFound):
		// the booking or its event is gone; retrying will not help
		log.Warn("dropping email job", zap.Error(err))
		msg.Nack(false)
	default:
		log.Error("email job failed, will retry", zap.Error(err))
		if w.retryDelay > 0 {
			select {
			case <-time.After(w.retryDelay):
			case <-ctx.Done():
			}
		}
		msg.Nack(true)
	}
}
