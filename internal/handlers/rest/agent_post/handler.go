package agent_post

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
	var agentCreateDTO dto.AgentCreate
	err := json.NewDecoder(r.Body).Decode(&agentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicles := vehiclesFromDTO(agentCreateDTO.Vehicles)
	agentModifyEntity := entities.AgentModify{
		Name:     &agentCreateDTO.Name,
		Phone:    &agentCreateDTO.Phone,
		Email:    &agentCreateDTO.Email,
		Vehicles: &vehicles,
		GeoCodes: &agentCreateDTO.GeoCodes,
	}

	id, err := h.service.CreateAgent(r.Context(), agentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrMissingRequiredFields),
			errors.Is(err, agent.ErrInvalidName),
			errors.Is(err, agent.ErrInvalidPhone),
			errors.Is(err, agent.ErrInvalidEmail),
			errors.Is(err, agent.ErrInvalidVehicle),
			errors.Is(err, agent.ErrInvalidGeoCodes):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, agent.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AgentCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func vehiclesFromDTO(vehicleDTOs []dto.Vehicle) []entities.Vehicle {
	vehicles := make([]entities.Vehicle, len(vehicleDTOs))
	for i, v := range vehicleDTOs {
		vehicles[i] = entities.Vehicle{
			Kind:       entities.VehicleKind(v.Kind),
			CapacityKg: v.CapacityKg,
			RangeKm:    v.RangeKm,
			CostPerKm:  v.CostPerKm,
		}
	}
	return vehicles
}
