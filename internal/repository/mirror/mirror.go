package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/Skllit/GreenSource-v2/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type MirrorTaskDB struct {
	ID        int64
	OrderID   string
	Status    string
	Attempts  int64
	LastError *string
	CreatedAt time.Time
}

// Enqueue вставляет задание зеркалирования; повторная постановка того же
// целевого статуса для заказа схлопывается в одну строку.
func (r *Repository) Enqueue(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	query := `
		INSERT INTO order_mirror_queue (order_id, status)
		VALUES ($1, $2)
		ON CONFLICT (order_id, status) WHERE synced_at IS NULL
		DO NOTHING
	`

	_, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected mirror repository enqueue error: %w", err)
	}

	return nil
}

func (r *Repository) PendingBatch(ctx context.Context, limit int) ([]entities.MirrorTask, error) {
	query := `
		SELECT id, order_id, status, attempts, last_error, created_at
		FROM order_mirror_queue
		WHERE synced_at IS NULL
		ORDER BY id
		LIMIT $1
	`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected mirror repository pending error: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.MirrorTask, 0, 8)
	for rows.Next() {
		var taskModel MirrorTaskDB
		err := rows.Scan(
			&taskModel.ID,
			&taskModel.OrderID,
			&taskModel.Status,
			&taskModel.Attempts,
			&taskModel.LastError,
			&taskModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected mirror repository pending error: %w", err)
		}
		tasks = append(tasks, entities.MirrorTask{
			ID:        taskModel.ID,
			OrderID:   taskModel.OrderID,
			Status:    entities.OrderStatusType(taskModel.Status),
			Attempts:  taskModel.Attempts,
			LastError: taskModel.LastError,
			CreatedAt: taskModel.CreatedAt,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected mirror repository pending error: %w", err)
	}

	return tasks, nil
}

func (r *Repository) MarkSynced(ctx context.Context, id int64) error {
	query := `
		UPDATE order_mirror_queue
		SET synced_at = NOW()
		WHERE id = $1
	`

	_, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected mirror repository mark synced error: %w", err)
	}

	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id int64, lastError string) error {
	query := `
		UPDATE order_mirror_queue
		SET attempts = attempts + 1,
		    last_error = $2
		WHERE id = $1
	`

	_, err := r.querier.Exec(ctx, query, id, lastError)
	if err != nil {
		return fmt.Errorf("unexpected mirror repository mark failed error: %w", err)
	}

	return nil
}
