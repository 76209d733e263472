package delivered_put

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"fastfeet/internal/dto"
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
	idStr := mux.Vars(r)["orderId"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	var req dto.DeliveredRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.DeliverymanID == nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	_, err = h.service.Deliver(r.Context(), orderID, *req.DeliverymanID, req.SignatureID)
	if err != nil {
		var alreadyCanceled *order.AlreadyCanceledError
		switch {
		case errors.Is(err, order.ErrNotOrderOwner):
			respond.Error(w, h.log, http.StatusUnauthorized, "This order was not from this deliveryman")
		case errors.As(err, &alreadyCanceled):
			respond.Error(w, h.log, http.StatusUnauthorized, fmt.Sprintf(
				"This order was canceled at %s",
				alreadyCanceled.CanceledAt.Format(time.RFC3339),
			))
		case errors.Is(err, order.ErrDeliverymanNotFound):
			respond.Error(w, h.log, http.StatusBadRequest, "Deliveryman not found")
		case errors.Is(err, order.ErrOrderNotFound):
			respond.Error(w, h.log, http.StatusBadRequest, "Order not found")
		case errors.Is(err, order.ErrInvalidOrderID):
			respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.Message{Message: "Order end_date was set"})
}
