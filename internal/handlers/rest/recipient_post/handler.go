package recipient_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastfeet/internal/dto"
	"fastfeet/internal/entities"
	"fastfeet/internal/handlers/rest/respond"
	"fastfeet/internal/service/recipient"
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
	var req dto.RecipientCreate
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	created, err := h.service.CreateRecipient(r.Context(), entities.RecipientModify{
		Name:       &req.Name,
		Street:     &req.Street,
		Number:     req.Number,
		Complement: &req.Complement,
		State:      &req.State,
		City:       &req.City,
		ZipCode:    req.ZipCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, recipient.ErrMissingRequiredFields):
			respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.NewRecipient(created))
}
