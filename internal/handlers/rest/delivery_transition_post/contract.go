//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_transition_post_test
package delivery_transition_post

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
	Transition(ctx context.Context, deliveryID int64, target entities.DeliveryStatusType, actor entities.Principal) (*entities.DeliveryRecord, error)
}
