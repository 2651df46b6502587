package wire

import (
	"movie-browser/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTrailer(r chi.Router, trailerHandler *adaptor.TrailerHandler) {
	// GET /api/trailer?movieId=&title=&year=
	r.Get("/api/trailer", trailerHandler.GetTrailer)
}
