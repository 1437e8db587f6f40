package queue

import (
	"context"

	"go-gin-event-booking/internal/model"
)

type Delivery struct {
	Data *model.EmailJob
	Ack  func()
	Nack func(requeue bool)
}

type EmailQueue interface {
	PublishEmailJob(ctx context.Context, job *model.EmailJob) error
	SubscribeEmailJobs(ctx context.Context) (<-chan Delivery, error)
}

// EmailQueueImpl is an in-process queue backed by a buffered channel. It is used when Redis is not configured.
type EmailQueueImpl struct {
	ch chan *model.EmailJob
}

func NewEmailQueue(bufferSize int) EmailQueue {
	return &EmailQueueImpl{
		ch: make(chan *model.EmailJob, bufferSize),
	}
}

func (q *EmailQueueImpl) PublishEmailJob(ctx context.Context, job *model.EmailJob) error {
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *EmailQueueImpl) SubscribeEmailJobs(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: job,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							go func() {
								select {
								case q.ch <- job:
								case <-ctx.Done():
								}
							}()
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
