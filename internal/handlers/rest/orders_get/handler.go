package orders_get

import (
	"net/http"

	"fastfeet/internal/dto"
	"fastfeet/internal/handlers/rest/params"
	"fastfeet/internal/handlers/rest/respond"
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
	details, err := h.service.GetOrders(r.Context(), params.Page(r), params.Search(r))
	if err != nil {
		respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewOrders(details))
}
