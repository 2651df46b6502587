package response

import (
	"movie-browser/internal/data/entity"
	"movie-browser/pkg/utils"
)

// BackdropPlaceholder is served when TMDB has no backdrop for a movie.
const BackdropPlaceholder = "/banner.jpg"

const (
	posterSize   = "w500"
	backdropSize = "original"
)

type MovieSummaryResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	PosterURL   *string `json:"poster_url"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
	ReleaseYear *int    `json:"release_year"`
}

type MovieDetailResponse struct {
	MovieSummaryResponse
	Runtime             int             `json:"runtime"`
	Overview            string          `json:"overview"`
	Tagline             string          `json:"tagline,omitempty"`
	Budget              int64           `json:"budget"`
	Revenue             int64           `json:"revenue"`
	Genres              []GenreResponse `json:"genres"`
	ProductionCountries []string        `json:"production_countries"`
	ProductionCompanies []string        `json:"production_companies"`
	OriginalLanguage    string          `json:"original_language"`
	Status              string          `json:"status"`
	BackdropPath        *string         `json:"backdrop_path"`
	BackdropURL         string          `json:"backdrop_url"`
	Homepage            string          `json:"homepage,omitempty"`
	IMDbID              string          `json:"imdb_id,omitempty"`
}

type MovieBundleResponse struct {
	Movie   MovieDetailResponse `json:"movie"`
	Trailer *TrailerKeyResponse `json:"trailer"`
	Videos  []VideoResponse     `json:"videos"`
}

// Helper converters
func MovieToSummaryResponse(movie entity.MovieSummary, imageBaseURL string) MovieSummaryResponse {
	var posterURL *string
	if movie.PosterPath != nil && *movie.PosterPath != "" {
		u := imageBaseURL + "/" + posterSize + *movie.PosterPath
		posterURL = &u
	}

	return MovieSummaryResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		PosterPath:  movie.PosterPath,
		PosterURL:   posterURL,
		VoteAverage: movie.VoteAverage,
		ReleaseDate: movie.ReleaseDate,
		ReleaseYear: utils.YearFromDate(movie.ReleaseDate),
	}
}

func MoviesToSummaryResponses(movies []entity.MovieSummary, imageBaseURL string) []MovieSummaryResponse {
	out := make([]MovieSummaryResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToSummaryResponse(movie, imageBaseURL)
	}
	return out
}

func MovieToDetailResponse(movie *entity.MovieDetail, imageBaseURL string) MovieDetailResponse {
	backdropURL := BackdropPlaceholder
	if movie.BackdropPath != nil && *movie.BackdropPath != "" {
		backdropURL = imageBaseURL + "/" + backdropSize + *movie.BackdropPath
	}

	genres := make([]GenreResponse, len(movie.Genres))
	for i, genre := range movie.Genres {
		genres[i] = GenreToResponse(genre)
	}

	countries := make([]string, len(movie.ProductionCountries))
	for i, country := range movie.ProductionCountries {
		countries[i] = country.Name
	}

	companies := make([]string, len(movie.ProductionCompanies))
	for i, company := range movie.ProductionCompanies {
		companies[i] = company.Name
	}

	return MovieDetailResponse{
		MovieSummaryResponse: MovieToSummaryResponse(movie.MovieSummary, imageBaseURL),
		Runtime:              movie.Runtime,
		Overview:             movie.Overview,
		Tagline:              movie.Tagline,
		Budget:               movie.Budget,
		Revenue:              movie.Revenue,
		Genres:               genres,
		ProductionCountries:  countries,
		ProductionCompanies:  companies,
		OriginalLanguage:     movie.OriginalLanguage,
		Status:               movie.Status,
		BackdropPath:         movie.BackdropPath,
		BackdropURL:          backdropURL,
		Homepage:             movie.Homepage,
		IMDbID:               movie.IMDbID,
	}
}
