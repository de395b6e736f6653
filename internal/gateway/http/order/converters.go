package order

import (
	"github.com/Skllit/GreenSource-v2/internal/entities"
)

func toDomain(resp *orderResponse) *entities.Order {
	if resp == nil {
		return nil
	}

	return &entities.Order{
		ID:             resp.ID,
		Status:         entities.OrderStatusType(resp.Status),
		OriginGeo:      resp.OriginGeo,
		DestGeo:        resp.DestGeo,
		WeightKg:       resp.WeightKg,
		PickupAddress:  resp.PickupAddress,
		PickupPhone:    resp.PickupPhone,
		DropoffAddress: resp.DropoffAddress,
		DropoffPhone:   resp.DropoffPhone,
		CreatedAt:      resp.CreatedAt,
	}
}
