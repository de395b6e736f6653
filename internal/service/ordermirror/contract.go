//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ordermirror_test
package ordermirror

import (
	"context"

	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/pkg/logger"
)

type Repository interface {
	Enqueue(ctx context.Context, orderID string, status entities.OrderStatusType) error
	PendingBatch(ctx context.Context, limit int) ([]entities.MirrorTask, error)
	MarkSynced(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, lastError string) error
}

type OrderGateway interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
