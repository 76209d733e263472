package user_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastfeet/internal/dto"
	"fastfeet/internal/handlers/rest/respond"
	"fastfeet/internal/pkg/middlewares/auth"
	"fastfeet/internal/service/user"
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
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, "Token invalid")
		return
	}

	var req dto.UserUpdate
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	updated, err := h.service.UpdateUser(r.Context(), userID, user.AccountUpdate{
		Name:        req.Name,
		Email:       req.Email,
		OldPassword: req.OldPassword,
		Password:    req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrPasswordMismatch):
			respond.Error(w, h.log, http.StatusUnauthorized, "Password does not match")
		case errors.Is(err, user.ErrEmailTaken):
			respond.Error(w, h.log, http.StatusBadRequest, "User already exists")
		case errors.Is(err, user.ErrUserNotFound):
			respond.Error(w, h.log, http.StatusUnauthorized, "User not found")
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrPasswordTooShort):
			respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewUser(updated))
}
