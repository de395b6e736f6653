package delivery

import "time"

// DeliveryDB строка delivery_records; снимок выбранного транспорта
// хранится как jsonb.
type DeliveryDB struct {
	ID                    int64
	OrderID               string
	AgentID               int64
	PickupAddress         string
	PickupPhone           string
	DropoffAddress        string
	DropoffPhone          string
	OriginGeo             string
	DestGeo               string
	WeightKg              float64
	Vehicle               []byte
	Status                string
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    *time.Time
	CustomerRating        *float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type DeliveryModifyDB struct {
	ID                    *int64
	OrderID               *string
	AgentID               *int64
	PickupAddress         *string
	PickupPhone           *string
	DropoffAddress        *string
	DropoffPhone          *string
	OriginGeo             *string
	DestGeo               *string
	WeightKg              *float64
	Vehicle               []byte
	Status                *string
	EstimatedDeliveryTime *time.Time
}
