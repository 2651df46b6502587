package adaptor

import (
	"movie-browser/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Genre   *GenreHandler
	Trailer *TrailerHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Genre:   NewGenreHandler(service.Movie, log),
		Trailer: NewTrailerHandler(service.Trailer, log),
	}
}
