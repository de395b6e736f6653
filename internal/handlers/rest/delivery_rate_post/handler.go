package delivery_rate_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/internal/generated/dto"
	"github.com/Skllit/GreenSource-v2/internal/service/fulfillment"
	"github.com/Skllit/GreenSource-v2/pkg/logger"
)

const headerActorRole = "X-Actor-Role"

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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	role := entities.PrincipalRole(r.Header.Get(headerActorRole))
	switch role {
	case entities.RoleAgent, entities.RoleConsumer, entities.RoleAdmin:
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var rateDTO dto.RateRequest
	err = json.NewDecoder(r.Body).Decode(&rateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record, err := h.service.Rate(r.Context(), id, rateDTO.Rating, entities.Principal{Role: role})
	if err != nil {
		switch {
		case errors.Is(err, fulfillment.ErrInvalidDeliveryID),
			errors.Is(err, fulfillment.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, fulfillment.ErrActorNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, fulfillment.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, fulfillment.ErrNotDeliverable),
			errors.Is(err, fulfillment.ErrAlreadyRated),
			errors.Is(err, fulfillment.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	deliveryDTO := toDTO(record)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(deliveryDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(record *entities.DeliveryRecord) dto.Delivery {
	return dto.Delivery{
		ID:             record.ID,
		OrderID:        record.OrderID,
		AgentID:        record.AgentID,
		PickupAddress:  record.PickupAddress,
		PickupPhone:    record.PickupPhone,
		DropoffAddress: record.DropoffAddress,
		DropoffPhone:   record.DropoffPhone,
		OriginGeo:      record.OriginGeo,
		DestGeo:        record.DestGeo,
		WeightKg:       record.WeightKg,
		Vehicle: dto.Vehicle{
			Kind:       record.Vehicle.Kind.String(),
			CapacityKg: record.Vehicle.CapacityKg,
			RangeKm:    record.Vehicle.RangeKm,
			CostPerKm:  record.Vehicle.CostPerKm,
		},
		Status:                record.Status.String(),
		EstimatedDeliveryTime: record.EstimatedDeliveryTime,
		ActualDeliveryTime:    record.ActualDeliveryTime,
		CustomerRating:        record.CustomerRating,
	}
}
