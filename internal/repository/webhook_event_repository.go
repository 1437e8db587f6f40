package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WebhookEventRepository records gateway event ids so a redelivered event is applied once.
type WebhookEventRepository interface {
	// MarkProcessed returns false when the event id was already recorded.
	MarkProcessed(ctx context.Context, tx pgx.Tx, eventID, eventType string) (bool, error)
}

type WebhookEventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewWebhookEventRepository(pool *pgxpool.Pool) WebhookEventRepository {
	return &WebhookEventRepositoryImpl{
		pool: pool,
	}
}

func (r *WebhookEventRepositoryImpl) MarkProcessed(ctx context.Context, tx pgx.Tx, eventID, eventType string) (bool, error) {
	result, err := tx.Exec(ctx, `
		INSERT INTO processed_webhook_events (event_id, event_type)
		VALUES ($1, $2)
		ON CONFLICT (event_id) DO NOTHING
	`, eventID, eventType)
	if err != nil {
		return false, fmt.Errorf("failed to record webhook event: %w", err)
	}
	return result.RowsAffected() == 1, nil
}
