package entities

import "time"

type DeliveryRecord struct {
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
	Vehicle               Vehicle
	Status                DeliveryStatusType
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    *time.Time
	CustomerRating        *float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "PENDING"
	DeliveryConfirmed DeliveryStatusType = "CONFIRMED"
	DeliveryOnTheWay  DeliveryStatusType = "ONTHEWAY"
	DeliveryShipped   DeliveryStatusType = "SHIPPED"
	DeliveryDelivered DeliveryStatusType = "DELIVERED"
	DeliveryCancelled DeliveryStatusType = "CANCELLED"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// IsTerminal: после DELIVERED/CANCELLED переходов больше нет,
// кроме единственной пост-DELIVERED оценки.
func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

type DeliveryRecordModify struct {
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
	Vehicle               *Vehicle
	Status                *DeliveryStatusType
	EstimatedDeliveryTime *time.Time
}

type DispatchRequest struct {
	OrderID        string
	OriginGeo      string
	DestGeo        string
	WeightKg       float64
	PickupAddress  string
	PickupPhone    string
	DropoffAddress string
	DropoffPhone   string
}

type Assignment struct {
	DeliveryID            int64
	OrderID               string
	AgentID               int64
	Vehicle               Vehicle
	EstimatedDeliveryTime time.Time
}
