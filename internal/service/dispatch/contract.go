//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"github.com/Skllit/GreenSource-v2/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModifyEntity entities.DeliveryRecordModify) (*entities.DeliveryRecord, error)
}

type AgentService interface {
	FindCandidates(ctx context.Context, geoCode string, weightKg float64) ([]entities.Agent, error)
	Reserve(ctx context.Context, id int64) error
}

type MirrorService interface {
	Enqueue(ctx context.Context, orderID string, deliveryStatus entities.DeliveryStatusType) error
}

type DeliveryTimeFactory interface {
	EstimateDeliveryTime(baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
