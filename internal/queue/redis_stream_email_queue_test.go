package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/queue"
	"go-gin-event-booking/internal/testutil"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStreamEmailQueue(t *testing.T) {
	t.Run("creates the consumer group", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectXGroupCreateMkStream(queue.StreamKey, queue.ConsumerGroupName, "0").SetVal("OK")

		q, err := queue.NewRedisStreamEmailQueue(db, "test-consumer", nil)
		require.NoError(t, err)
		assert.NotNil(t, q)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing group is fine", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectXGroupCreateMkStream(queue.StreamKey, queue.ConsumerGroupName, "0").
			SetErr(errors.New("BUSYGROUP Consumer Group name already exists"))

		q, err := queue.NewRedisStreamEmailQueue(db, "", nil)
		require.NoError(t, err)
		assert.NotNil(t, q)
	})

	t.Run("redis error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectXGroupCreateMkStream(queue.StreamKey, queue.ConsumerGroupName, "0").
			SetErr(errors.New("connection refused"))

		q, err := queue.NewRedisStreamEmailQueue(db, "test-consumer", nil)
		assert.Error(t, err)
		assert.Nil(t, q)
	})
}

func TestRedisStreamEmailQueue_PublishEmailJob(t *testing.T) {
	ctx := context.Background()
	job := &model.EmailJob{
		BookingID:   uuid.MustParse("7b2c1f8e-3c55-4c1e-9d64-0f4f3f1b2a10"),
		RequestedAt: time.Date(2026, 7, 4, 12, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(job)
	require.NoError(t, err)

	newQueue := func(t *testing.T) (queue.EmailQueue, redismock.ClientMock) {
		db, mock := redismock.NewClientMock()
		mock.ExpectXGroupCreateMkStream(queue.StreamKey, queue.ConsumerGroupName, "0").SetVal("OK")
		q, err := queue.NewRedisStreamEmailQueue(db, "pub-test", nil)
		require.NoError(t, err)
		return q, mock
	}

	t.Run("success", func(t *testing.T) {
		q, mock := newQueue(t)
		mock.ExpectXAdd(&redis.XAddArgs{
			Stream: queue.StreamKey,
			ID:     "*",
			Values: map[string]interface{}{"job": string(payload)},
		}).SetVal("1-0")

		require.NoError(t, q.PublishEmailJob(ctx, job))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		q, mock := newQueue(t)
		mock.ExpectXAdd(&redis.XAddArgs{
			Stream: queue.StreamKey,
			ID:     "*",
			Values: map[string]interface{}{"job": string(payload)},
		}).SetErr(errors.New("OOM"))

		err := q.PublishEmailJob(ctx, job)
		assert.ErrorContains(t, err, "xadd")
	})
}

func TestRedisStreamEmailQueue_DeliverAndAck(t *testing.T) {
	rdb := testutil.SetupRedis(t)
	ctx := context.Background()
	require.NoError(t, rdb.Del(ctx, queue.StreamKey).Err())
	t.Cleanup(func() { rdb.Del(context.Background(), queue.StreamKey) })

	q, err := queue.NewRedisStreamEmailQueue(rdb, "deliver-test", &queue.RedisStreamEmailQueueConfig{
		ReadGroupBlockTime: 200 * time.Millisecond,
	})
	require.NoError(t, err)

	job := &model.EmailJob{BookingID: uuid.New(), RequestedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, q.PublishEmailJob(ctx, job))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ch, err := q.SubscribeEmailJobs(subCtx)
	require.NoError(t, err)

	d := receive(t, ch)
	assert.Equal(t, job.BookingID, d.Data.BookingID)
	assert.True(t, job.RequestedAt.Equal(d.Data.RequestedAt))
	d.Ack()

	pending, err := rdb.XPending(ctx, queue.StreamKey, queue.ConsumerGroupName).Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}
