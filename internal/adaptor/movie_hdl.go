package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"movie-browser/internal/dto/request"
	"movie-browser/internal/usecase"
	"movie-browser/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// Search handles GET /api/search?q=
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	req := request.SearchRequest{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	if req.Query == "" {
		utils.ResponseResults(w, []any{})
		return
	}

	utils.ResponseResults(w, h.service.Search(r.Context(), req.Query))
}

// GetVideos handles GET /api/videos?movieId=
func (h *MovieHandler) GetVideos(w http.ResponseWriter, r *http.Request) {
	req := request.VideosRequest{MovieID: strings.TrimSpace(r.URL.Query().Get("movieId"))}
	if req.MovieID == "" {
		utils.ResponseResults(w, []any{})
		return
	}

	utils.ResponseResults(w, h.service.GetVideos(r.Context(), req.MovieID))
}

// GetPopular handles GET /api/movies/popular
func (h *MovieHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	movies := h.service.GetPopular(r.Context())
	utils.ResponseSuccess(w, "Popular movies retrieved successfully", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	req := request.MovieIDRequest{MovieID: chi.URLParam(r, "id")}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	bundle, err := h.service.GetMovieBundle(r.Context(), req.MovieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", bundle)
}

// handleServiceError maps service errors to responses
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	handleServiceError(h.log, w, err, operation)
}

func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidMovieID), errors.Is(err, usecase.ErrInvalidGenreID):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
