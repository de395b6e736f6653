package agent

import (
	"context"
	"fmt"

	"github.com/Skllit/GreenSource-v2/internal/entities"
)

type Agent struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Agent {
	return &Agent{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Agent) CreateAgent(ctx context.Context, agentModify entities.AgentModify) (int64, error) {
	if agentModify.Name == nil ||
		agentModify.Phone == nil ||
		agentModify.Email == nil ||
		agentModify.Vehicles == nil ||
		agentModify.GeoCodes == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*agentModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*agentModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidEmail(*agentModify.Email) {
		return 0, ErrInvalidEmail
	}
	if err := validateVehicles(*agentModify.Vehicles); err != nil {
		return 0, err
	}
	if err := validateGeoCodes(*agentModify.GeoCodes); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, agentModify)
	if err != nil {
		return 0, fmt.Errorf("create agent: %w", err)
	}

	return id, nil
}

func (s *Agent) UpdateAgent(ctx context.Context, agentModify entities.AgentModify) (*entities.Agent, error) {
	if agentModify.Name == nil &&
		agentModify.Phone == nil &&
		agentModify.Email == nil &&
		agentModify.Vehicles == nil &&
		agentModify.GeoCodes == nil &&
		agentModify.IsAvailable == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if agentModify.Name != nil && !isValidName(*agentModify.Name) {
		return nil, ErrInvalidName
	}
	if agentModify.Phone != nil && !isValidPhone(*agentModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if agentModify.Email != nil && !isValidEmail(*agentModify.Email) {
		return nil, ErrInvalidEmail
	}
	if agentModify.Vehicles != nil {
		if err := validateVehicles(*agentModify.Vehicles); err != nil {
			return nil, err
		}
	}
	if agentModify.GeoCodes != nil {
		if err := validateGeoCodes(*agentModify.GeoCodes); err != nil {
			return nil, err
		}
	}

	agent, err := s.repository.Update(ctx, agentModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return agent, nil
}

// SetAvailability прямое переключение флага; активные доставки не трогает.
func (s *Agent) SetAvailability(ctx context.Context, id int64, available bool) (*entities.Agent, error) {
	agentModify := entities.AgentModify{
		ID:          &id,
		IsAvailable: &available,
	}

	agent, err := s.repository.Update(ctx, agentModify)
	if err != nil {
		return nil, fmt.Errorf("failed to set agent availability: %w", err)
	}
	return agent, nil
}

func (s *Agent) GetAgent(ctx context.Context, id int64) (*entities.Agent, error) {
	agent, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return agent, nil
}

func (s *Agent) GetAgents(ctx context.Context) ([]entities.Agent, error) {
	agents, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get agents: %w", err)
	}

	return agents, nil
}

// FindCandidates возвращает доступных агентов, покрывающих гео-код
// и имеющих хотя бы один транспорт достаточной грузоподъемности.
// Пустой результат не ошибка.
func (s *Agent) FindCandidates(ctx context.Context, geoCode string, weightKg float64) ([]entities.Agent, error) {
	if !isValidGeoCode(geoCode) {
		return nil, ErrInvalidGeoCodes
	}
	if weightKg <= 0 {
		return nil, fmt.Errorf("non-positive weight: %w", ErrMissingRequiredFields)
	}

	candidates, err := s.repository.FindCandidates(ctx, geoCode, weightKg)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}

	return candidates, nil
}

// Reserve атомарно добавляет агенту активную доставку.
func (s *Agent) Reserve(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAgentID
	}

	err := s.repository.Reserve(ctx, id)
	if err != nil {
		return fmt.Errorf("reserve agent %d: %w", id, err)
	}
	return nil
}

// Release снимает активную доставку; при wasDelivered увеличивает
// delivered_count и, если оценка передана, подмешивает ее в рейтинг
// по формуле (rating*n + new) / (n+1).
func (s *Agent) Release(ctx context.Context, id int64, wasDelivered bool, rating *float64) error {
	if id <= 0 {
		return ErrInvalidAgentID
	}
	if rating != nil && (*rating < entities.MinRating || *rating > entities.MaxRating) {
		return ErrInvalidRating
	}

	err := s.repository.Release(ctx, id, wasDelivered, rating)
	if err != nil {
		return fmt.Errorf("release agent %d: %w", id, err)
	}
	return nil
}

// FoldDeliveredRating подмешивает оценку, пришедшую после завершения
// доставки, когда delivered_count уже увеличен.
func (s *Agent) FoldDeliveredRating(ctx context.Context, id int64, rating float64) error {
	if id <= 0 {
		return ErrInvalidAgentID
	}
	if rating < entities.MinRating || rating > entities.MaxRating {
		return ErrInvalidRating
	}

	err := s.repository.FoldDeliveredRating(ctx, id, rating)
	if err != nil {
		return fmt.Errorf("fold rating for agent %d: %w", id, err)
	}
	return nil
}

func validateVehicles(vehicles []entities.Vehicle) error {
	if len(vehicles) == 0 {
		return ErrInvalidVehicle
	}
	for _, v := range vehicles {
		if !isValidVehicleKind(v.Kind.String()) {
			return ErrInvalidVehicle
		}
		if v.CapacityKg <= 0 || v.RangeKm <= 0 || v.CostPerKm < 0 {
			return ErrInvalidVehicle
		}
	}
	return nil
}

func validateGeoCodes(codes []string) error {
	if len(codes) == 0 {
		return ErrInvalidGeoCodes
	}
	for _, code := range codes {
		if !isValidGeoCode(code) {
			return ErrInvalidGeoCodes
		}
	}
	return nil
}
