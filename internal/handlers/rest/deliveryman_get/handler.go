package deliveryman_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastfeet/internal/dto"
	"fastfeet/internal/handlers/rest/respond"
	"fastfeet/internal/service/deliveryman"
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

	deliverymanEntity, err := h.service.GetDeliveryman(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, deliveryman.ErrDeliverymanNotFound):
			respond.Error(w, h.log, http.StatusBadRequest, "Deliveryman not found")
		case errors.Is(err, deliveryman.ErrInvalidDeliverymanID):
			respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewDeliverymanDetails(deliverymanEntity))
}
