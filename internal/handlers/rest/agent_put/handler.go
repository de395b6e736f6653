package agent_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/internal/generated/dto"
	"github.com/Skllit/GreenSource-v2/internal/service/agent"
	"github.com/Skllit/GreenSource-v2/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var agentUpdateDTO dto.AgentUpdate
	err := json.NewDecoder(r.Body).Decode(&agentUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	agentModifyEntity := entities.AgentModify{
		ID: &agentUpdateDTO.ID,
	}

	// Опциональные параметры
	if agentUpdateDTO.Name != nil {
		agentModifyEntity.Name = agentUpdateDTO.Name
	}
	if agentUpdateDTO.Phone != nil {
		agentModifyEntity.Phone = agentUpdateDTO.Phone
	}
	if agentUpdateDTO.Email != nil {
		agentModifyEntity.Email = agentUpdateDTO.Email
	}
	if agentUpdateDTO.Vehicles != nil {
		vehicles := make([]entities.Vehicle, len(*agentUpdateDTO.Vehicles))
		for i, v := range *agentUpdateDTO.Vehicles {
			vehicles[i] = entities.Vehicle{
				Kind:       entities.VehicleKind(v.Kind),
				CapacityKg: v.CapacityKg,
				RangeKm:    v.RangeKm,
				CostPerKm:  v.CostPerKm,
			}
		}
		agentModifyEntity.Vehicles = &vehicles
	}
	if agentUpdateDTO.GeoCodes != nil {
		agentModifyEntity.GeoCodes = agentUpdateDTO.GeoCodes
	}
	if agentUpdateDTO.IsAvailable != nil {
		agentModifyEntity.IsAvailable = agentUpdateDTO.IsAvailable
	}

	res, err := h.service.UpdateAgent(r.Context(), agentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrMissingRequiredFields),
			errors.Is(err, agent.ErrInvalidAgentID),
			errors.Is(err, agent.ErrInvalidName),
			errors.Is(err, agent.ErrInvalidPhone),
			errors.Is(err, agent.ErrInvalidEmail),
			errors.Is(err, agent.ErrInvalidVehicle),
			errors.Is(err, agent.ErrInvalidGeoCodes):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, agent.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, agent.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDTO(res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(agentEntity *entities.Agent) dto.Agent {
	vehicleDTOs := make([]dto.Vehicle, len(agentEntity.Vehicles))
	for i, v := range agentEntity.Vehicles {
		vehicleDTOs[i] = dto.Vehicle{
			Kind:       v.Kind.String(),
			CapacityKg: v.CapacityKg,
			RangeKm:    v.RangeKm,
			CostPerKm:  v.CostPerKm,
		}
	}

	return dto.Agent{
		ID:               agentEntity.ID,
		Name:             agentEntity.Name,
		Phone:            agentEntity.Phone,
		Email:            agentEntity.Email,
		Vehicles:         vehicleDTOs,
		GeoCodes:         agentEntity.GeoCodes,
		IsAvailable:      agentEntity.IsAvailable,
		Rating:           agentEntity.Rating,
		DeliveredCount:   agentEntity.DeliveredCount,
		ActiveOrderCount: agentEntity.ActiveOrderCount,
	}
}
