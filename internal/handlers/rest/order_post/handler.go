package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastfeet/internal/dto"
	"fastfeet/internal/entities"
	"fastfeet/internal/handlers/rest/respond"
	"fastfeet/internal/service/order"
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
	var req dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	created, err := h.service.CreateOrder(r.Context(), entities.OrderModify{
		Product:       &req.Product,
		RecipientID:   req.RecipientID,
		DeliverymanID: req.DeliverymanID,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrRecipientOrDeliverymanNotFound):
			respond.Error(w, h.log, http.StatusBadRequest, "Recipient or deliveryman not found")
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidProduct):
			respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.OrderCreateResponse{
		ID:            created.ID,
		Product:       created.Product,
		RecipientID:   created.RecipientID,
		DeliverymanID: created.DeliverymanID,
	})
}
