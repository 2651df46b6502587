package adaptor

import (
	"net/http"

	"movie-browser/internal/dto/request"
	"movie-browser/internal/usecase"
	"movie-browser/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.MovieService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /api/genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Genres retrieved successfully", h.service.GetGenres(r.Context()))
}

// GetGenreMovies handles GET /api/genres/{id}/movies
func (h *GenreHandler) GetGenreMovies(w http.ResponseWriter, r *http.Request) {
	req := request.GenreIDRequest{GenreID: chi.URLParam(r, "id")}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	page, err := h.service.GetGenreMovies(r.Context(), req.GenreID)
	if err != nil {
		handleServiceError(h.log, w, err, "get genre movies")
		return
	}

	utils.ResponseSuccess(w, "Genre movies retrieved successfully", page)
}
