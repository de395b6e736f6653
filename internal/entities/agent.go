package entities

import (
	"time"
)

type Agent struct {
	ID               int64
	Name             string
	Phone            string
	Email            string
	Vehicles         []Vehicle
	GeoCodes         []string
	IsAvailable      bool
	Rating           float64
	DeliveredCount   int64
	ActiveOrderCount int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Vehicle struct {
	Kind       VehicleKind `json:"kind"`
	CapacityKg float64     `json:"capacity_kg"`
	RangeKm    float64     `json:"range_km"`
	CostPerKm  float64     `json:"cost_per_km"`
}

// CanCarry сообщает, поднимет ли транспорт данный вес.
func (v Vehicle) CanCarry(weightKg float64) bool {
	return v.CapacityKg >= weightKg
}

type VehicleKind string

const (
	Bike  VehicleKind = "bike"
	Auto  VehicleKind = "auto"
	Truck VehicleKind = "truck"
	Lorry VehicleKind = "lorry"
)

func (k VehicleKind) String() string {
	return string(k)
}

const (
	MinRating = 1.0
	MaxRating = 5.0
)

type AgentModify struct {
	ID          *int64
	Name        *string
	Phone       *string
	Email       *string
	Vehicles    *[]Vehicle
	GeoCodes    *[]string
	IsAvailable *bool
}
