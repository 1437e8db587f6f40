package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	webhookStateProcessing = "processing"
	webhookStateDone       = "done"

	DefaultWebhookClaimTTL  = 5 * time.Minute
	DefaultWebhookRetention = 72 * time.Hour
)

// WebhookEventGuard is the fast path for duplicate gateway deliveries.
// The database record stays authoritative; the guard only saves work.
type WebhookEventGuard interface {
	// Claim reserves an event id for processing. false means it is done or in flight elsewhere.
	Claim(ctx context.Context, eventID string) (bool, error)
	// Complete marks the id as processed for the retention window.
	Complete(ctx context.Context, eventID string) error
	// Release drops an in-flight claim so the next delivery is processed again.
	Release(ctx context.Context, eventID string) error
}

type RedisWebhookEventGuardImpl struct {
	client    *redis.Client
	claimTTL  time.Duration
	retention time.Duration
}

func NewRedisWebhookEventGuard(client *redis.Client, claimTTL, retention time.Duration) WebhookEventGuard {
	if claimTTL <= 0 {
		claimTTL = DefaultWebhookClaimTTL
	}
	if retention <= 0 {
		retention = DefaultWebhookRetention
	}
	return &RedisWebhookEventGuardImpl{
		client:    client,
		claimTTL:  claimTTL,
		retention: retention,
	}
}

func WebhookEventKey(eventID string) string {
	return fmt.Sprintf("webhook:event:%s", eventID)
}

func (g *RedisWebhookEventGuardImpl) Claim(ctx context.Context, eventID string) (bool, error) {
	return g.client.SetNX(ctx, WebhookEventKey(eventID), webhookStateProcessing, g.claimTTL).Result()
}

func (g *RedisWebhookEventGuardImpl) Complete(ctx context.Context, eventID string) error {
	return g.client.Set(ctx, WebhookEventKey(eventID), webhookStateDone, g.retention).Err()
}

// releaseScript deletes the key only while it still holds the in-flight marker,
// so a completed event is never reopened.
const releaseScript = `
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`

func (g *RedisWebhookEventGuardImpl) Release(ctx context.Context, eventID string) error {
	_, err := g.client.Eval(ctx, releaseScript, []string{WebhookEventKey(eventID)}, webhookStateProcessing).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	return nil
}
