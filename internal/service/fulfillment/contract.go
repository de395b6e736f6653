//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fulfillment_test
package fulfillment

import (
	"context"
	"time"

	"github.com/Skllit/GreenSource-v2/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.DeliveryRecord, error)
	GetActiveByOrderID(ctx context.Context, orderID string) (*entities.DeliveryRecord, error)
	GetByAgentID(ctx context.Context, agentID int64, limit int) ([]entities.DeliveryRecord, error)

	UpdateStatus(ctx context.Context, id int64, expected, target entities.DeliveryStatusType) (*entities.DeliveryRecord, error)
	CompleteDelivery(ctx context.Context, id int64, expected entities.DeliveryStatusType, deliveredAt time.Time) (*entities.DeliveryRecord, error)
	SetCustomerRating(ctx context.Context, id int64, rating float64) (*entities.DeliveryRecord, error)
}

type AgentService interface {
	Release(ctx context.Context, id int64, wasDelivered bool, rating *float64) error
	FoldDeliveredRating(ctx context.Context, id int64, rating float64) error
}

type MirrorService interface {
	Enqueue(ctx context.Context, orderID string, deliveryStatus entities.DeliveryStatusType) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
