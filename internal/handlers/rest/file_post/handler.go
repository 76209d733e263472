package file_post

import (
	"errors"
	"net/http"

	"fastfeet/internal/dto"
	"fastfeet/internal/handlers/rest/respond"
	"fastfeet/internal/service/file"
)

// maxUploadSize caps multipart memory use; larger parts spill to disk.
const maxUploadSize = 10 << 20

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
	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}

	src, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		return
	}
	defer src.Close()

	stored, err := h.service.StoreFile(r.Context(), header.Filename, src)
	if err != nil {
		switch {
		case errors.Is(err, file.ErrMissingFile):
			respond.Error(w, h.log, http.StatusBadRequest, "Validation fails")
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.NewFile(stored))
}
