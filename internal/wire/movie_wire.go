package wire

import (
	"movie-browser/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/search?q= - TMDB title search, bare results list
	r.Get("/api/search", movieHandler.Search)

	// GET /api/videos?movieId= - TMDB video list, bare results list
	r.Get("/api/videos", movieHandler.GetVideos)

	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/popular", movieHandler.GetPopular) // GET /api/movies/popular
		r.Get("/{id}", movieHandler.GetMovieByID)  // GET /api/movies/{id} - detail, videos and trailer
	})
}
