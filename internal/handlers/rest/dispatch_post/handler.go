package dispatch_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/internal/generated/dto"
	"github.com/Skllit/GreenSource-v2/internal/service/dispatch"
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
	var dispatchDTO dto.DispatchRequest
	err := json.NewDecoder(r.Body).Decode(&dispatchDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request := entities.DispatchRequest{
		OrderID:        dispatchDTO.OrderID,
		OriginGeo:      dispatchDTO.OriginGeo,
		DestGeo:        dispatchDTO.DestGeo,
		WeightKg:       dispatchDTO.WeightKg,
		PickupAddress:  dispatchDTO.PickupAddress,
		PickupPhone:    dispatchDTO.PickupPhone,
		DropoffAddress: dispatchDTO.DropoffAddress,
		DropoffPhone:   dispatchDTO.DropoffPhone,
	}

	assignment, err := h.service.Match(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidGeoCode),
			errors.Is(err, dispatch.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrNoAgentAvailable),
			errors.Is(err, dispatch.ErrNoSuitableVehicle),
			errors.Is(err, dispatch.ErrDuplicateDispatch):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DispatchResponse{
		DeliveryID: assignment.DeliveryID,
		OrderID:    assignment.OrderID,
		AgentID:    assignment.AgentID,
		Vehicle: dto.Vehicle{
			Kind:       assignment.Vehicle.Kind.String(),
			CapacityKg: assignment.Vehicle.CapacityKg,
			RangeKm:    assignment.Vehicle.RangeKm,
			CostPerKm:  assignment.Vehicle.CostPerKm,
		},
		EstimatedDeliveryTime: assignment.EstimatedDeliveryTime,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
