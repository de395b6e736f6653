package agent

import (
	"encoding/json"
	"fmt"

	"github.com/Skllit/GreenSource-v2/internal/entities"
)

func ToDomain(a *AgentDB) (*entities.Agent, error) {
	if a == nil {
		return nil, nil
	}

	var vehicles []entities.Vehicle
	if len(a.Vehicles) > 0 {
		if err := json.Unmarshal(a.Vehicles, &vehicles); err != nil {
			return nil, fmt.Errorf("unmarshal agent vehicles: %w", err)
		}
	}

	return &entities.Agent{
		ID:               a.ID,
		Name:             a.Name,
		Phone:            a.Phone,
		Email:            a.Email,
		Vehicles:         vehicles,
		GeoCodes:         a.GeoCodes,
		IsAvailable:      a.IsAvailable,
		Rating:           a.Rating,
		DeliveredCount:   a.DeliveredCount,
		ActiveOrderCount: a.ActiveOrderCount,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}, nil
}

func FromDomainModify(agentModify *entities.AgentModify) (*AgentModifyDB, error) {
	if agentModify == nil {
		return nil, nil
	}
	agentDB := &AgentModifyDB{}

	if agentModify.ID != nil {
		agentDB.ID = agentModify.ID
	}
	if agentModify.Name != nil {
		agentDB.Name = agentModify.Name
	}
	if agentModify.Phone != nil {
		agentDB.Phone = agentModify.Phone
	}
	if agentModify.Email != nil {
		agentDB.Email = agentModify.Email
	}
	if agentModify.Vehicles != nil {
		vehicles, err := json.Marshal(*agentModify.Vehicles)
		if err != nil {
			return nil, fmt.Errorf("marshal agent vehicles: %w", err)
		}
		agentDB.Vehicles = vehicles
	}
	if agentModify.GeoCodes != nil {
		agentDB.GeoCodes = *agentModify.GeoCodes
	}
	if agentModify.IsAvailable != nil {
		agentDB.IsAvailable = agentModify.IsAvailable
	}

	return agentDB, nil
}

func ToDomainList(agentsDB []AgentDB) ([]entities.Agent, error) {
	if len(agentsDB) == 0 {
		return []entities.Agent{}, nil
	}

	result := make([]entities.Agent, len(agentsDB))
	for i, agentDB := range agentsDB {
		agentEntity, err := ToDomain(&agentDB)
		if err != nil {
			return nil, err
		}
		result[i] = *agentEntity
	}
	return result, nil
}
