package problem_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastfeet/internal/dto"
	"fastfeet/internal/handlers/rest/respond"
	"fastfeet/internal/service/problem"
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
	idStr := mux.Vars(r)["deliverymanId"]
	deliverymanID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	var req dto.ProblemCreate
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.DeliveryID == nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	created, err := h.service.CreateProblem(r.Context(), deliverymanID, *req.DeliveryID, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, problem.ErrNotOrderOwner):
			respond.Error(w, h.log, http.StatusUnauthorized, "This order was not from this deliveryman")
		case errors.Is(err, problem.ErrOrderNotFound):
			respond.Error(w, h.log, http.StatusBadRequest, "Order not found")
		case errors.Is(err, problem.ErrDeliverymanNotFound):
			respond.Error(w, h.log, http.StatusBadRequest, "Deliveryman not found")
		case errors.Is(err, problem.ErrMissingRequiredFields):
			respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.ProblemCreateResponse{
		ID:          created.ID,
		DeliveryID:  created.DeliveryID,
		Description: created.Description,
	})
}
