//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_rate_post_test
package delivery_rate_post

import (
	"context"

	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Rate(ctx context.Context, deliveryID int64, rating float64, actor entities.Principal) (*entities.DeliveryRecord, error)
}
