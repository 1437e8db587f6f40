package repository

import (
	"context"
	"fmt"
	"time"

	"go-gin-event-booking/internal/model"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketTypeRepository interface {
	Create(ctx context.Context, ticketType *model.TicketType) (*model.TicketType, error)
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.TicketType, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.TicketType, error)

	// Transaction methods
	IncrementSold(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int) error
}

type TicketTypeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketTypeRepository(pool *pgxpool.Pool) TicketTypeRepository {
	return &TicketTypeRepositoryImpl{
		pool: pool,
	}
}

const ticketTypeColumns = `id, event_id, name, description, price, quantity_available, quantity_sold, created_at, updated_at`

func scanTicketType(row pgx.Row) (*model.TicketType, error) {
	var tt model.TicketType
	err := row.Scan(
		&tt.ID,
		&tt.EventID,
		&tt.Name,
		&tt.Description,
		&tt.Price,
		&tt.QuantityAvailable,
		&tt.QuantitySold,
		&tt.CreatedAt,
		&tt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tt, nil
}

func (r *TicketTypeRepositoryImpl) Create(ctx context.Context, ticketType *model.TicketType) (*model.TicketType, error) {
	query := fmt.Sprintf(`
		INSERT INTO ticket_types (event_id, name, description, price, quantity_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, ticketTypeColumns)

	created, err := scanTicketType(r.pool.QueryRow(ctx, query,
		ticketType.EventID, ticketType.Name, ticketType.Description,
		ticketType.Price, ticketType.QuantityAvailable,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket type: %w", err)
	}
	return created, nil
}

func (r *TicketTypeRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.TicketType, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM ticket_types
		WHERE event_id = $1
		ORDER BY price, id
	`, ticketTypeColumns)

	return r.query(ctx, query, eventID)
}

func (r *TicketTypeRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.TicketType, error) {
	if len(ids) == 0 {
		return []*model.TicketType{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM ticket_types WHERE id = ANY($1)`, ticketTypeColumns)

	return r.query(ctx, query, ids)
}

func (r *TicketTypeRepositoryImpl) query(ctx context.Context, query string, args ...any) ([]*model.TicketType, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ticketTypes := make([]*model.TicketType, 0)
	for rows.Next() {
		tt, err := scanTicketType(rows)
		if err != nil {
			return nil, err
		}
		ticketTypes = append(ticketTypes, tt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ticketTypes, nil
}

// IncrementSold is the oversell guard: the row only changes when the new sold count
// still fits in quantity_available.
func (r *TicketTypeRepositoryImpl) IncrementSold(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int) error {
	query := `
		UPDATE ticket_types
		SET quantity_sold = quantity_sold + $1, updated_at = $2
		WHERE id = $3 AND quantity_sold + $1 <= quantity_available
	`

	result, err := tx.Exec(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to increment sold count: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrInsufficientStock
	}

	return nil
}
