package response

import "movie-browser/internal/data/entity"

// DefaultGenreName labels a genre id that is missing from the genre list.
const DefaultGenreName = "Genre"

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type GenreMoviesResponse struct {
	Genre  GenreResponse          `json:"genre"`
	Movies []MovieSummaryResponse `json:"movies"`
}

// Helper converter
func GenreToResponse(genre entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func GenresToResponses(genres []entity.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		out[i] = GenreToResponse(genre)
	}
	return out
}
