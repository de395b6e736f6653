package order

import "time"

// orderResponse тело ответа order-service.
type orderResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	OriginGeo      string    `json:"origin_geo"`
	DestGeo        string    `json:"dest_geo"`
	WeightKg       float64   `json:"weight_kg"`
	PickupAddress  string    `json:"pickup_address"`
	PickupPhone    string    `json:"pickup_phone"`
	DropoffAddress string    `json:"dropoff_address"`
	DropoffPhone   string    `json:"dropoff_phone"`
	CreatedAt      time.Time `json:"created_at"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}
