package adaptor

import (
	"net/http"
	"strings"

	"movie-browser/internal/dto/request"
	"movie-browser/internal/dto/response"
	"movie-browser/internal/usecase"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

type TrailerHandler struct {
	service usecase.TrailerService
	log     *zap.Logger
}

func NewTrailerHandler(service usecase.TrailerService, log *zap.Logger) *TrailerHandler {
	return &TrailerHandler{
		service: service,
		log:     log.With(zap.String("handler", "trailer")),
	}
}

// GetTrailer handles GET /api/trailer?movieId=&title=&year=
func (h *TrailerHandler) GetTrailer(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.TrailerRequest{
		MovieID: strings.TrimSpace(query.Get("movieId")),
		Title:   strings.TrimSpace(query.Get("title")),
		Year:    strings.TrimSpace(query.Get("year")),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Trailer request validation failed", zap.Any("errors", validationErrors))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resolution := h.service.Resolve(r.Context(), req.MovieID, req.Title, req.Year)

	utils.WriteJSON(w, http.StatusOK, response.TrailerToResponse(req.MovieID, req.Title, req.Year, resolution))
}
