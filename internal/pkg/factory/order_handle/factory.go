package order_handle

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/internal/service/dispatch"
	"github.com/Skllit/GreenSource-v2/internal/service/fulfillment"
	"github.com/Skllit/GreenSource-v2/internal/service/orderevents"
)

type StatusHandlerFactory struct {
	dispatchService    orderevents.DispatchService
	fulfillmentService orderevents.FulfillmentService
}

func NewStatusHandlerFactory(dispatchService orderevents.DispatchService, fulfillmentService orderevents.FulfillmentService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		dispatchService:    dispatchService,
		fulfillmentService: fulfillmentService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (orderevents.ExecuteFn, error) {
	switch status {
	case entities.OrderCheckedOut:
		return f.checkedOutHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", orderevents.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) checkedOutHandler(ctx context.Context, order *entities.Order) error {
	_, err := f.dispatchService.Match(ctx, entities.DispatchRequest{
		OrderID:        order.ID,
		OriginGeo:      order.OriginGeo,
		DestGeo:        order.DestGeo,
		WeightKg:       order.WeightKg,
		PickupAddress:  order.PickupAddress,
		PickupPhone:    order.PickupPhone,
		DropoffAddress: order.DropoffAddress,
		DropoffPhone:   order.DropoffPhone,
	})
	if err != nil {
		// повторный чекаут того же заказа не ошибка
		if errors.Is(err, dispatch.ErrDuplicateDispatch) {
			return nil
		}
		return fmt.Errorf("dispatch order %s: %w", order.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, order *entities.Order) error {
	_, err := f.fulfillmentService.CancelByOrderID(ctx, order.ID)
	if err != nil {
		// заказ мог быть отменен до диспетчеризации
		if errors.Is(err, fulfillment.ErrDeliveryNotFound) {
			return nil
		}
		return fmt.Errorf("cancel delivery for order %s: %w", order.ID, err)
	}
	return nil
}
