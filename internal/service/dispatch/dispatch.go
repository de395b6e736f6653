package dispatch

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Skllit/GreenSource-v2/internal/entities"
)

type Dispatch struct {
	repository    Repository
	agentService  AgentService
	mirrorService MirrorService
	timeFactory   DeliveryTimeFactory
	txManager     TxManager
}

func New(
	repository Repository,
	agentService AgentService,
	mirrorService MirrorService,
	timeFactory DeliveryTimeFactory,
	txManager TxManager,
) *Dispatch {
	return &Dispatch{
		repository:    repository,
		agentService:  agentService,
		mirrorService: mirrorService,
		timeFactory:   timeFactory,
		txManager:     txManager,
	}
}

// Match подбирает агента под заявку и создает запись доставки в статусе
// CONFIRMED. Кандидаты фильтруются по гео-коду выдачи (покрытие зоны
// забора не требуется) и ранжируются по рейтингу, затем по числу
// активных доставок, затем по id. Повторная заявка на тот же orderID
// при живой доставке отклоняется как ErrDuplicateDispatch.
func (d *Dispatch) Match(ctx context.Context, request entities.DispatchRequest) (*entities.Assignment, error) {
	if !isValidOrderID(request.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidGeoCode(request.DestGeo) || !isValidGeoCode(request.OriginGeo) {
		return nil, ErrInvalidGeoCode
	}
	if request.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	assignment := entities.Assignment{}

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		candidates, err := d.agentService.FindCandidates(ctx, request.DestGeo, request.WeightKg)
		if err != nil {
			return fmt.Errorf("find candidates: %w", err)
		}

		if len(candidates) == 0 {
			return ErrNoAgentAvailable
		}

		rankCandidates(candidates)

		// Автопарк мог измениться между выборкой и выбором транспорта,
		// поэтому при отсутствии подходящего транспорта у лидера
		// проваливаемся к следующему кандидату.
		chosen, vehicle, found := selectAgentVehicle(candidates, request.WeightKg)
		if !found {
			return ErrNoSuitableVehicle
		}

		estimatedTime := d.timeFactory.EstimateDeliveryTime(time.Now().UTC())

		status := entities.DeliveryConfirmed
		deliveryModify := entities.DeliveryRecordModify{
			OrderID:               &request.OrderID,
			AgentID:               &chosen.ID,
			PickupAddress:         &request.PickupAddress,
			PickupPhone:           &request.PickupPhone,
			DropoffAddress:        &request.DropoffAddress,
			DropoffPhone:          &request.DropoffPhone,
			OriginGeo:             &request.OriginGeo,
			DestGeo:               &request.DestGeo,
			WeightKg:              &request.WeightKg,
			Vehicle:               &vehicle,
			Status:                &status,
			EstimatedDeliveryTime: &estimatedTime,
		}

		record, err := d.repository.Create(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("create delivery record: %w", err)
		}

		err = d.agentService.Reserve(ctx, chosen.ID)
		if err != nil {
			return fmt.Errorf("reserve agent: %w", err)
		}

		err = d.mirrorService.Enqueue(ctx, record.OrderID, record.Status)
		if err != nil {
			return fmt.Errorf("enqueue order mirror: %w", err)
		}

		assignment = entities.Assignment{
			DeliveryID:            record.ID,
			OrderID:               record.OrderID,
			AgentID:               chosen.ID,
			Vehicle:               vehicle,
			EstimatedDeliveryTime: record.EstimatedDeliveryTime,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// rankCandidates: рейтинг по убыванию, затем меньшая загрузка,
// затем id для детерминизма.
func rankCandidates(candidates []entities.Agent) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating > candidates[j].Rating
		}
		if candidates[i].ActiveOrderCount != candidates[j].ActiveOrderCount {
			return candidates[i].ActiveOrderCount < candidates[j].ActiveOrderCount
		}
		return candidates[i].ID < candidates[j].ID
	})
}

func selectAgentVehicle(candidates []entities.Agent, weightKg float64) (entities.Agent, entities.Vehicle, bool) {
	for _, candidate := range candidates {
		vehicle, ok := lightestSufficientVehicle(candidate.Vehicles, weightKg)
		if ok {
			return candidate, vehicle, true
		}
	}
	return entities.Agent{}, entities.Vehicle{}, false
}

// lightestSufficientVehicle: минимальная достаточная грузоподъемность,
// при равенстве дешевле за километр.
func lightestSufficientVehicle(fleet []entities.Vehicle, weightKg float64) (entities.Vehicle, bool) {
	var best entities.Vehicle
	found := false

	for _, v := range fleet {
		if !v.CanCarry(weightKg) {
			continue
		}
		if !found ||
			v.CapacityKg < best.CapacityKg ||
			(v.CapacityKg == best.CapacityKg && v.CostPerKm < best.CostPerKm) {
			best = v
			found = true
		}
	}

	return best, found
}
