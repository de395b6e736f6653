package agent_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	agentEntity, err := h.service.GetAgent(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, agent.ErrInvalidAgentID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	agentDTO := toDTO(agentEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(agentDTO)
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
