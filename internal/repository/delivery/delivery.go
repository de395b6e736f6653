package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/internal/repository"
	"github.com/Skllit/GreenSource-v2/internal/service/dispatch"
	"github.com/Skllit/GreenSource-v2/internal/service/fulfillment"
)

const deliveryColumns = `id, order_id, agent_id, pickup_address, pickup_phone,
		dropoff_address, dropoff_phone, origin_geo, dest_geo, weight_kg, vehicle,
		status, estimated_delivery_time, actual_delivery_time, customer_rating,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDelivery(row rowScanner) (*DeliveryDB, error) {
	var deliveryModel DeliveryDB
	err := row.Scan(
		&deliveryModel.ID,
		&deliveryModel.OrderID,
		&deliveryModel.AgentID,
		&deliveryModel.PickupAddress,
		&deliveryModel.PickupPhone,
		&deliveryModel.DropoffAddress,
		&deliveryModel.DropoffPhone,
		&deliveryModel.OriginGeo,
		&deliveryModel.DestGeo,
		&deliveryModel.WeightKg,
		&deliveryModel.Vehicle,
		&deliveryModel.Status,
		&deliveryModel.EstimatedDeliveryTime,
		&deliveryModel.ActualDeliveryTime,
		&deliveryModel.CustomerRating,
		&deliveryModel.CreatedAt,
		&deliveryModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryModel, nil
}

func (r *Repository) Create(ctx context.Context, deliveryModifyEntity entities.DeliveryRecordModify) (*entities.DeliveryRecord, error) {
	deliveryModifyModel, err := FromDomainModify(&deliveryModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	query := `
		INSERT INTO delivery_records (order_id, agent_id, pickup_address, pickup_phone,
			dropoff_address, dropoff_phone, origin_geo, dest_geo, weight_kg, vehicle,
			status, estimated_delivery_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyModel.OrderID,
		deliveryModifyModel.AgentID,
		deliveryModifyModel.PickupAddress,
		deliveryModifyModel.PickupPhone,
		deliveryModifyModel.DropoffAddress,
		deliveryModifyModel.DropoffPhone,
		deliveryModifyModel.OriginGeo,
		deliveryModifyModel.DestGeo,
		deliveryModifyModel.WeightKg,
		deliveryModifyModel.Vehicle,
		deliveryModifyModel.Status,
		deliveryModifyModel.EstimatedDeliveryTime,
	))
	if err != nil {
		// частичный уникальный индекс по order_id на живых статусах
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dispatch.ErrDuplicateDispatch
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryModel)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryRecord, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM delivery_records
		WHERE id = $1`

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fulfillment.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(deliveryModel)
}

func (r *Repository) GetActiveByOrderID(ctx context.Context, orderID string) (*entities.DeliveryRecord, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM delivery_records
		WHERE order_id = $1
		  AND status NOT IN ('DELIVERED', 'CANCELLED')`

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fulfillment.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getactive error: %w", err)
	}

	return ToDomain(deliveryModel)
}

func (r *Repository) GetByAgentID(ctx context.Context, agentID int64, limit int) ([]entities.DeliveryRecord, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM delivery_records
		WHERE agent_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, agentID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbyagent error: %w", err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		deliveryModel, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository getbyagent error: %w", err)
		}
		deliveryModels = append(deliveryModels, *deliveryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbyagent error: %w", err)
	}

	return ToDomainList(deliveryModels)
}

// UpdateStatus compare-and-set: строка меняется, только если статус
// все еще expected; иначе кто-то успел раньше.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, expected, target entities.DeliveryStatusType) (*entities.DeliveryRecord, error) {
	query := `
		UPDATE delivery_records
		SET status = $3,
		    updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, id, expected.String(), target.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fulfillment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected delivery repository updatestatus error: %w", err)
	}

	return ToDomain(deliveryModel)
}

func (r *Repository) CompleteDelivery(ctx context.Context, id int64, expected entities.DeliveryStatusType, deliveredAt time.Time) (*entities.DeliveryRecord, error) {
	query := `
		UPDATE delivery_records
		SET status = 'DELIVERED',
		    actual_delivery_time = $3,
		    updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, id, expected.String(), deliveredAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fulfillment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected delivery repository complete error: %w", err)
	}

	return ToDomain(deliveryModel)
}

// SetCustomerRating пишет оценку один раз: статус обязан быть DELIVERED
// и оценки еще не должно быть.
func (r *Repository) SetCustomerRating(ctx context.Context, id int64, rating float64) (*entities.DeliveryRecord, error) {
	query := `
		UPDATE delivery_records
		SET customer_rating = $2,
		    updated_at = NOW()
		WHERE id = $1
		  AND status = 'DELIVERED'
		  AND customer_rating IS NULL
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, id, rating))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fulfillment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected delivery repository setrating error: %w", err)
	}

	return ToDomain(deliveryModel)
}
