package delivery_transition_post

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

const (
	headerAgentID   = "X-Agent-ID"
	headerActorRole = "X-Actor-Role"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor, ok := actorFromHeaders(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var transitionDTO dto.TransitionRequest
	err = json.NewDecoder(r.Body).Decode(&transitionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	target := entities.DeliveryStatusType(transitionDTO.Status)
	if !isKnownTarget(target) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record, err := h.service.Transition(r.Context(), id, target, actor)
	if err != nil {
		switch {
		case errors.Is(err, fulfillment.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, fulfillment.ErrActorNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, fulfillment.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, fulfillment.ErrIllegalTransition),
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

// actorFromHeaders: аутентификация снаружи, здесь только раскладка
// заголовков в Principal. Роль agent обязана принести X-Agent-ID.
func actorFromHeaders(r *http.Request) (entities.Principal, bool) {
	role := entities.PrincipalRole(r.Header.Get(headerActorRole))

	switch role {
	case entities.RoleConsumer, entities.RoleAdmin:
		return entities.Principal{Role: role}, true
	case entities.RoleAgent:
		agentID, err := strconv.ParseInt(r.Header.Get(headerAgentID), 10, 64)
		if err != nil || agentID <= 0 {
			return entities.Principal{}, false
		}
		return entities.Principal{AgentID: agentID, Role: role}, true
	default:
		return entities.Principal{}, false
	}
}

func isKnownTarget(target entities.DeliveryStatusType) bool {
	switch target {
	case entities.DeliveryConfirmed,
		entities.DeliveryOnTheWay,
		entities.DeliveryShipped,
		entities.DeliveryDelivered,
		entities.DeliveryCancelled:
		return true
	default:
		return false
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
