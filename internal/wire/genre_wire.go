package wire

import (
	"movie-browser/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	r.Route("/api/genres", func(r chi.Router) {
		r.Get("/", genreHandler.GetGenres)                 // GET /api/genres
		r.Get("/{id}/movies", genreHandler.GetGenreMovies) // GET /api/genres/{id}/movies
	})
}
