package deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/internal/generated/dto"
	"github.com/Skllit/GreenSource-v2/internal/service/fulfillment"
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
	agentIDStr := r.URL.Query().Get("agent_id")
	agentID, err := strconv.ParseInt(agentIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	records, err := h.service.GetAgentDeliveries(r.Context(), agentID)
	if err != nil {
		switch {
		case errors.Is(err, fulfillment.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	deliveryDTOs := make([]dto.Delivery, len(records))
	for i, record := range records {
		deliveryDTOs[i] = toDTO(&record)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(deliveryDTOs)
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
