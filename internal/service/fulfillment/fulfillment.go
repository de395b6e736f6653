package fulfillment

import (
	"context"
	"fmt"
	"time"

	"github.com/Skllit/GreenSource-v2/internal/entities"
)

// agentDeliveriesLimit сколько последних доставок отдаём агенту.
const agentDeliveriesLimit = 50

// forwardTransitions легальная цепочка продвижения доставки.
// CANCELLED достижим из любого нетерминального статуса и
// обрабатывается отдельно.
var forwardTransitions = map[entities.DeliveryStatusType]entities.DeliveryStatusType{
	entities.DeliveryPending:   entities.DeliveryConfirmed,
	entities.DeliveryConfirmed: entities.DeliveryOnTheWay,
	entities.DeliveryOnTheWay:  entities.DeliveryShipped,
	entities.DeliveryShipped:   entities.DeliveryDelivered,
}

type Fulfillment struct {
	repository    Repository
	agentService  AgentService
	mirrorService MirrorService
	txManager     TxManager
}

func New(
	repository Repository,
	agentService AgentService,
	mirrorService MirrorService,
	txManager TxManager,
) *Fulfillment {
	return &Fulfillment{
		repository:    repository,
		agentService:  agentService,
		mirrorService: mirrorService,
		txManager:     txManager,
	}
}

// Transition переводит запись доставки в target и выполняет побочные
// эффекты перехода в той же транзакции: зеркалирование статуса заказа
// ставится в очередь, на терминальных статусах освобождается агент.
// Смена статуса делается compare-and-swap по прочитанному статусу;
// проигранная гонка возвращает ErrConflict без мутаций.
func (f *Fulfillment) Transition(
	ctx context.Context,
	deliveryID int64,
	target entities.DeliveryStatusType,
	actor entities.Principal,
) (*entities.DeliveryRecord, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	var result *entities.DeliveryRecord

	err := f.txManager.Do(ctx, func(ctx context.Context) error {
		record, err := f.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery record: %w", err)
		}

		if err := authorizeTransition(record, target, actor); err != nil {
			return err
		}

		if target == entities.DeliveryCancelled {
			result, err = f.cancel(ctx, record)
			return err
		}

		if forwardTransitions[record.Status] != target {
			return fmt.Errorf("%s -> %s: %w", record.Status, target, ErrIllegalTransition)
		}

		switch target {
		case entities.DeliveryDelivered:
			result, err = f.complete(ctx, record)
		default:
			result, err = f.advance(ctx, record, target)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CancelByOrderID отменяет живую доставку заказа; используется воркером
// событий заказа, действующим от имени системы.
func (f *Fulfillment) CancelByOrderID(ctx context.Context, orderID string) (*entities.DeliveryRecord, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	record, err := f.repository.GetActiveByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get active delivery for order %s: %w", orderID, err)
	}

	return f.Transition(ctx, record.ID, entities.DeliveryCancelled, entities.Principal{Role: entities.RoleAdmin})
}

// Rate записывает единственную оценку покупателя по завершенной
// доставке и подмешивает ее в рейтинг агента.
func (f *Fulfillment) Rate(
	ctx context.Context,
	deliveryID int64,
	rating float64,
	actor entities.Principal,
) (*entities.DeliveryRecord, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	if rating < entities.MinRating || rating > entities.MaxRating {
		return nil, ErrInvalidRating
	}
	if actor.Role == entities.RoleAgent {
		return nil, ErrActorNotAllowed
	}

	var result *entities.DeliveryRecord

	err := f.txManager.Do(ctx, func(ctx context.Context) error {
		record, err := f.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery record: %w", err)
		}

		if record.Status != entities.DeliveryDelivered {
			return ErrNotDeliverable
		}
		if record.CustomerRating != nil {
			return ErrAlreadyRated
		}

		// Гонка двух оценок решается в репозитории условием
		// customer_rating IS NULL.
		result, err = f.repository.SetCustomerRating(ctx, deliveryID, rating)
		if err != nil {
			return fmt.Errorf("set customer rating: %w", err)
		}

		err = f.agentService.FoldDeliveredRating(ctx, record.AgentID, rating)
		if err != nil {
			return fmt.Errorf("fold agent rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (f *Fulfillment) GetDelivery(ctx context.Context, deliveryID int64) (*entities.DeliveryRecord, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	record, err := f.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery record: %w", err)
	}
	return record, nil
}

func (f *Fulfillment) GetAgentDeliveries(ctx context.Context, agentID int64) ([]entities.DeliveryRecord, error) {
	if agentID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	records, err := f.repository.GetByAgentID(ctx, agentID, agentDeliveriesLimit)
	if err != nil {
		return nil, fmt.Errorf("get agent deliveries: %w", err)
	}
	return records, nil
}

func (f *Fulfillment) advance(
	ctx context.Context,
	record *entities.DeliveryRecord,
	target entities.DeliveryStatusType,
) (*entities.DeliveryRecord, error) {
	updated, err := f.repository.UpdateStatus(ctx, record.ID, record.Status, target)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	err = f.mirrorService.Enqueue(ctx, record.OrderID, target)
	if err != nil {
		return nil, fmt.Errorf("enqueue order mirror: %w", err)
	}
	return updated, nil
}

func (f *Fulfillment) complete(ctx context.Context, record *entities.DeliveryRecord) (*entities.DeliveryRecord, error) {
	deliveredAt := time.Now().UTC()

	updated, err := f.repository.CompleteDelivery(ctx, record.ID, record.Status, deliveredAt)
	if err != nil {
		return nil, fmt.Errorf("complete delivery: %w", err)
	}

	// Оценки на этом этапе нет: delivered_count растет сразу,
	// рейтинг подмешает Rate, если покупатель вообще оценит.
	err = f.agentService.Release(ctx, record.AgentID, true, nil)
	if err != nil {
		return nil, fmt.Errorf("release agent: %w", err)
	}

	err = f.mirrorService.Enqueue(ctx, record.OrderID, entities.DeliveryDelivered)
	if err != nil {
		return nil, fmt.Errorf("enqueue order mirror: %w", err)
	}
	return updated, nil
}

func (f *Fulfillment) cancel(ctx context.Context, record *entities.DeliveryRecord) (*entities.DeliveryRecord, error) {
	if record.Status.IsTerminal() {
		return nil, fmt.Errorf("%s -> %s: %w", record.Status, entities.DeliveryCancelled, ErrIllegalTransition)
	}

	updated, err := f.repository.UpdateStatus(ctx, record.ID, record.Status, entities.DeliveryCancelled)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	err = f.agentService.Release(ctx, record.AgentID, false, nil)
	if err != nil {
		return nil, fmt.Errorf("release agent: %w", err)
	}

	err = f.mirrorService.Enqueue(ctx, record.OrderID, entities.DeliveryCancelled)
	if err != nil {
		return nil, fmt.Errorf("enqueue order mirror: %w", err)
	}
	return updated, nil
}

// authorizeTransition: забор/отправка/вручение подтверждает только
// назначенный агент; отмену может запросить admin/consumer или сам
// назначенный агент.
func authorizeTransition(
	record *entities.DeliveryRecord,
	target entities.DeliveryStatusType,
	actor entities.Principal,
) error {
	if target == entities.DeliveryCancelled {
		switch actor.Role {
		case entities.RoleAdmin, entities.RoleConsumer:
			return nil
		case entities.RoleAgent:
			if actor.AgentID == record.AgentID {
				return nil
			}
		}
		return ErrActorNotAllowed
	}

	if actor.Role != entities.RoleAgent || actor.AgentID != record.AgentID {
		return ErrActorNotAllowed
	}
	return nil
}
