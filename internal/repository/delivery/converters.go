package delivery

import (
	"encoding/json"
	"fmt"

	"github.com/Skllit/GreenSource-v2/internal/entities"
)

func ToDomain(d *DeliveryDB) (*entities.DeliveryRecord, error) {
	if d == nil {
		return nil, nil
	}

	var vehicle entities.Vehicle
	if len(d.Vehicle) > 0 {
		if err := json.Unmarshal(d.Vehicle, &vehicle); err != nil {
			return nil, fmt.Errorf("unmarshal delivery vehicle: %w", err)
		}
	}

	return &entities.DeliveryRecord{
		ID:                    d.ID,
		OrderID:               d.OrderID,
		AgentID:               d.AgentID,
		PickupAddress:         d.PickupAddress,
		PickupPhone:           d.PickupPhone,
		DropoffAddress:        d.DropoffAddress,
		DropoffPhone:          d.DropoffPhone,
		OriginGeo:             d.OriginGeo,
		DestGeo:               d.DestGeo,
		WeightKg:              d.WeightKg,
		Vehicle:               vehicle,
		Status:                entities.DeliveryStatusType(d.Status),
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		ActualDeliveryTime:    d.ActualDeliveryTime,
		CustomerRating:        d.CustomerRating,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}, nil
}

func FromDomainModify(deliveryModify *entities.DeliveryRecordModify) (*DeliveryModifyDB, error) {
	if deliveryModify == nil {
		return nil, nil
	}
	deliveryDB := &DeliveryModifyDB{
		ID:                    deliveryModify.ID,
		OrderID:               deliveryModify.OrderID,
		AgentID:               deliveryModify.AgentID,
		PickupAddress:         deliveryModify.PickupAddress,
		PickupPhone:           deliveryModify.PickupPhone,
		DropoffAddress:        deliveryModify.DropoffAddress,
		DropoffPhone:          deliveryModify.DropoffPhone,
		OriginGeo:             deliveryModify.OriginGeo,
		DestGeo:               deliveryModify.DestGeo,
		WeightKg:              deliveryModify.WeightKg,
		EstimatedDeliveryTime: deliveryModify.EstimatedDeliveryTime,
	}

	if deliveryModify.Vehicle != nil {
		vehicle, err := json.Marshal(*deliveryModify.Vehicle)
		if err != nil {
			return nil, fmt.Errorf("marshal delivery vehicle: %w", err)
		}
		deliveryDB.Vehicle = vehicle
	}
	if deliveryModify.Status != nil {
		status := deliveryModify.Status.String()
		deliveryDB.Status = &status
	}

	return deliveryDB, nil
}

func ToDomainList(deliveriesDB []DeliveryDB) ([]entities.DeliveryRecord, error) {
	if len(deliveriesDB) == 0 {
		return []entities.DeliveryRecord{}, nil
	}

	result := make([]entities.DeliveryRecord, len(deliveriesDB))
	for i, deliveryDB := range deliveriesDB {
		deliveryEntity, err := ToDomain(&deliveryDB)
		if err != nil {
			return nil, err
		}
		result[i] = *deliveryEntity
	}
	return result, nil
}
