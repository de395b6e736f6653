package agent

import "time"

// AgentDB строка delivery_agents; vehicles хранится как jsonb.
type AgentDB struct {
	ID               int64
	Name             string
	Phone            string
	Email            string
	Vehicles         []byte
	GeoCodes         []string
	IsAvailable      bool
	Rating           float64
	DeliveredCount   int64
	ActiveOrderCount int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type AgentModifyDB struct {
	ID          *int64
	Name        *string
	Phone       *string
	Email       *string
	Vehicles    []byte
	GeoCodes    []string
	IsAvailable *bool
}
