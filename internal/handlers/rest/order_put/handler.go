package order_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	var req dto.OrderCreate
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	updated, err := h.service.UpdateOrder(r.Context(), entities.OrderModify{
		ID:            &id,
		Product:       &req.Product,
		RecipientID:   req.RecipientID,
		DeliverymanID: req.DeliverymanID,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			respond.Error(w, h.log, http.StatusBadRequest, "Order not found")
		case errors.Is(err, order.ErrRecipientOrDeliverymanNotFound):
			respond.Error(w, h.log, http.StatusBadRequest, "Recipient or deliveryman not found")
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidProduct),
			errors.Is(err, order.ErrInvalidOrderID):
			respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewOrderState(updated))
}
