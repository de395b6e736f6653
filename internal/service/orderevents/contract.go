//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevents_test
package orderevents

import (
	"context"

	"github.com/Skllit/GreenSource-v2/internal/entities"
)

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type DispatchService interface {
	Match(ctx context.Context, request entities.DispatchRequest) (*entities.Assignment, error)
}

type FulfillmentService interface {
	CancelByOrderID(ctx context.Context, orderID string) (*entities.DeliveryRecord, error)
}

type (
	ExecuteFn      func(ctx context.Context, order *entities.Order) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
