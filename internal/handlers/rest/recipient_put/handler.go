package recipient_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	var req dto.RecipientCreate
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	updated, err := h.service.UpdateRecipient(r.Context(), entities.RecipientModify{
		ID:         &id,
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
		case errors.Is(err, recipient.ErrRecipientNotFound):
			respond.Error(w, h.log, http.StatusBadRequest, "Recipient not found")
		case errors.Is(err, recipient.ErrMissingRequiredFields),
			errors.Is(err, recipient.ErrInvalidRecipientID):
			respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewRecipient(updated))
}
