package ordermirror

import (
	"context"
	"fmt"

	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/pkg/logger"
)

// syncBatchLimit сколько строк очереди забираем за один проход.
const syncBatchLimit = 100

// Mirror однонаправленная проекция статуса доставки в статус заказа.
// Запись доставки остается источником истины: переход коммитится
// локально вместе со строкой очереди, а доставку до order-service
// делает фоновый проход SyncPending.
type Mirror struct {
	repository   Repository
	orderGateway OrderGateway
	log          handlerLogger
}

func New(log handlerLogger, repository Repository, orderGateway OrderGateway) *Mirror {
	mirrorLog := log.With()

	return &Mirror{
		repository:   repository,
		orderGateway: orderGateway,
		log:          mirrorLog,
	}
}

// Enqueue ставит зеркалирование в очередь в текущей транзакции вызывающего.
func (m *Mirror) Enqueue(ctx context.Context, orderID string, deliveryStatus entities.DeliveryStatusType) error {
	if orderID == "" {
		return ErrInvalidOrderID
	}

	orderStatus, err := MirrorStatus(deliveryStatus)
	if err != nil {
		return err
	}

	err = m.repository.Enqueue(ctx, orderID, orderStatus)
	if err != nil {
		return fmt.Errorf("enqueue mirror task: %w", err)
	}
	return nil
}

// SyncPending прогоняет очередь: успешные строки помечаются выполненными,
// неуспешные остаются на следующий проход с увеличенным счетчиком попыток.
// Ретраи с backoff внутри шлюза; здесь только исход.
func (m *Mirror) SyncPending(ctx context.Context) (int64, error) {
	tasks, err := m.repository.PendingBatch(ctx, syncBatchLimit)
	if err != nil {
		return 0, fmt.Errorf("fetch pending mirror tasks: %w", err)
	}

	var synced int64
	for _, task := range tasks {
		err := m.orderGateway.UpdateOrderStatus(ctx, task.OrderID, task.Status)
		if err != nil {
			MirrorSyncTotal.WithLabelValues("failed").Inc()
			m.log.With(
				logger.NewField("order", task.OrderID),
				logger.NewField("status", task.Status),
				logger.NewField("attempts", task.Attempts+1),
				logger.NewField("error", err),
			).Warn("order mirror sync failed, task kept for reconciliation")

			if markErr := m.repository.MarkFailed(ctx, task.ID, err.Error()); markErr != nil {
				return synced, fmt.Errorf("mark mirror task failed: %w", markErr)
			}
			continue
		}

		if err := m.repository.MarkSynced(ctx, task.ID); err != nil {
			return synced, fmt.Errorf("mark mirror task synced: %w", err)
		}

		MirrorSyncTotal.WithLabelValues("synced").Inc()
		synced++
	}

	return synced, nil
}

// MirrorStatus отображение статуса доставки в статус заказа:
// у заказа нет отдельных состояний для ONTHEWAY/SHIPPED.
func MirrorStatus(deliveryStatus entities.DeliveryStatusType) (entities.OrderStatusType, error) {
	switch deliveryStatus {
	case entities.DeliveryConfirmed, entities.DeliveryOnTheWay, entities.DeliveryShipped:
		return entities.OrderConfirmed, nil
	case entities.DeliveryDelivered:
		return entities.OrderDelivered, nil
	case entities.DeliveryCancelled:
		return entities.OrderCancelled, nil
	default:
		return "", fmt.Errorf("%s: %w", deliveryStatus, ErrUnmappedStatus)
	}
}
