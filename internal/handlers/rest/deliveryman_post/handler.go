package deliveryman_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastfeet/internal/dto"
	"fastfeet/internal/entities"
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
	var req dto.DeliverymanCreate
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	created, err := h.service.CreateDeliveryman(r.Context(), entities.DeliverymanModify{
		Name:     &req.Name,
		Email:    &req.Email,
		AvatarID: req.AvatarID,
	})
	if err != nil {
		switch {
		case errors.Is(err, deliveryman.ErrEmailTaken):
			respond.Error(w, h.log, http.StatusBadRequest, "Email already exists")
		case errors.Is(err, deliveryman.ErrMissingRequiredFields),
			errors.Is(err, deliveryman.ErrInvalidEmail):
			respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.NewDeliveryman(created))
}
