package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/queue"
	queueMocks "go-gin-event-booking/internal/queue/mocks"
	"go-gin-event-booking/internal/service/mocks"
	"go-gin-event-booking/internal/worker"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 5 * time.Second

func TestEmailWorker_SendsQueuedJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifications := mocks.NewMockNotificationService(t)
	q := queue.NewEmailQueue(10)
	w := worker.NewEmailWorker(notifications, q, 0)

	bookingID := uuid.New()
	done := make(chan struct{})
	notifications.EXPECT().SendBookingConfirmation(mock.Anything, bookingID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) error {
			close(done)
			return nil
		}).Once()

	require.NoError(t, w.Start(ctx))
	require.NoError(t, q.PublishEmailJob(ctx, &model.EmailJob{BookingID: bookingID}))

	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("email job was not processed")
	}
}

func TestEmailWorker_RetriesTransientFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifications := mocks.NewMockNotificationService(t)
	q := queue.NewEmailQueue(10)
	w := worker.NewEmailWorker(notifications, q, 10*time.Millisecond)

	bookingID := uuid.New()
	done := make(chan struct{})
	notifications.EXPECT().SendBookingConfirmation(mock.Anything, bookingID).
		Return(apperrors.NewUpstreamError("email", errors.New("421 try again later"))).Once()
	notifications.EXPECT().SendBookingConfirmation(mock.Anything, bookingID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) error {
			close(done)
			return nil
		}).Once()

	require.NoError(t, w.Start(ctx))
	require.NoError(t, q.PublishEmailJob(ctx, &model.EmailJob{BookingID: bookingID}))

	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("failed email job was not retried")
	}
}

func TestEmailWorker_AcknowledgesOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantAck     bool
		wantRequeue bool
	}{
		{"Sent", nil, true, false},
		{"Booking gone", apperrors.ErrBookingNotFound, false, false},
		{"Provider down", errors.New("dial tcp: connection refused"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			notifications := mocks.NewMockNotificationService(t)
			emailQueue := queueMocks.NewMockEmailQueue(t)
			w := worker.NewEmailWorker(notifications, emailQueue, 0)

			deliveries := make(chan queue.Delivery, 1)
			emailQueue.EXPECT().SubscribeEmailJobs(mock.Anything).Return((<-chan queue.Delivery)(deliveries), nil).Once()
			notifications.EXPECT().SendBookingConfirmation(mock.Anything, mock.Anything).Return(tt.err).Once()

			settled := make(chan [2]bool, 1)
			deliveries <- queue.Delivery{
				Data: &model.EmailJob{BookingID: uuid.New()},
				Ack:  func() { settled <- [2]bool{true, false} },
				Nack: func(requeue bool) { settled <- [2]bool{false, requeue} },
			}
			close(deliveries)

			require.NoError(t, w.Start(ctx))

			select {
			case got := <-settled:
				assert.Equal(t, tt.wantAck, got[0])
				assert.Equal(t, tt.wantRequeue, got[1])
			case <-time.After(waitTimeout):
				t.Fatal("delivery was never settled")
			}
		})
	}
}

func TestEmailWorker_SubscribeFailure(t *testing.T) {
	emailQueue := queueMocks.NewMockEmailQueue(t)
	w := worker.NewEmailWorker(mocks.NewMockNotificationService(t), emailQueue, 0)

	emailQueue.EXPECT().SubscribeEmailJobs(mock.Anything).Return(nil, errors.New("NOGROUP")).Once()

	assert.Error(t, w.Start(context.Background()))
}

func TestBookingExpiryScheduler_RunsOnStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	bookings := mocks.NewMockBookingService(t)
	ran := make(chan struct{})
	bookings.EXPECT().ExpireStale(mock.Anything, 30*time.Minute).
		RunAndReturn(func(ctx context.Context, olderThan time.Duration) (int, error) {
			close(ran)
			return 2, nil
		}).Once()

	scheduler, err := worker.NewBookingExpiryScheduler(ctx, bookings, nil, time.Hour, 30*time.Minute)
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- scheduler.Run(ctx) }()

	select {
	case <-ran:
	case <-time.After(waitTimeout):
		t.Fatal("expiry job did not run")
	}

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("scheduler did not shut down")
	}
}
