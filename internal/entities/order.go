package entities

import "time"

// Order принадлежит order-service; здесь только зеркалируемая проекция.
type Order struct {
	ID             string
	Status         OrderStatusType
	OriginGeo      string
	DestGeo        string
	WeightKg       float64
	PickupAddress  string
	PickupPhone    string
	DropoffAddress string
	DropoffPhone   string
	CreatedAt      time.Time
}

type OrderStatusType string

const (
	OrderCheckedOut OrderStatusType = "checkout_completed"
	OrderConfirmed  OrderStatusType = "confirmed"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID        *string
	Status    *OrderStatusType
	CreatedAt *time.Time
}

// MirrorTask одна строка очереди зеркалирования статуса заказа.
type MirrorTask struct {
	ID        int64
	OrderID   string
	Status    OrderStatusType
	Attempts  int64
	LastError *string
	CreatedAt time.Time
}
