package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-browser/internal/data/entity"
	"movie-browser/internal/dto/response"
	"movie-browser/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMovieService struct {
	calls    []string
	search   []entity.MovieSummary
	videos   []entity.Video
	bundle   *response.MovieBundleResponse
	genres   []response.GenreResponse
	genrePg  *response.GenreMoviesResponse
	err      error
	popular  []response.MovieSummaryResponse
	lastArgs []string
}

func (f *fakeMovieService) record(name string, args ...string) {
	f.calls = append(f.calls, name)
	f.lastArgs = args
}

func (f *fakeMovieService) GetPopular(context.Context) []response.MovieSummaryResponse {
	f.record("GetPopular")
	return f.popular
}

func (f *fakeMovieService) Search(_ context.Context, query string) []entity.MovieSummary {
	f.record("Search", query)
	return f.search
}

func (f *fakeMovieService) GetVideos(_ context.Context, movieID string) []entity.Video {
	f.record("GetVideos", movieID)
	return f.videos
}

func (f *fakeMovieService) GetMovieDetail(_ context.Context, movieID string) (*response.MovieDetailResponse, error) {
	f.record("GetMovieDetail", movieID)
	if f.err != nil {
		return nil, f.err
	}
	return &f.bundle.Movie, nil
}

func (f *fakeMovieService) GetMovieBundle(_ context.Context, movieID string) (*response.MovieBundleResponse, error) {
	f.record("GetMovieBundle", movieID)
	return f.bundle, f.err
}

func (f *fakeMovieService) GetGenres(context.Context) []response.GenreResponse {
	f.record("GetGenres")
	return f.genres
}

func (f *fakeMovieService) GetGenreMovies(_ context.Context, genreID string) (*response.GenreMoviesResponse, error) {
	f.record("GetGenreMovies", genreID)
	return f.genrePg, f.err
}

type fakeTrailerService struct {
	resolution entity.TrailerResolution
	args       []string
}

func (f *fakeTrailerService) Resolve(_ context.Context, movieID, title, releaseYear string) entity.TrailerResolution {
	f.args = []string{movieID, title, releaseYear}
	return f.resolution
}

func (f *fakeTrailerService) ResolveFromVideos(context.Context, []entity.Video, string, string) entity.TrailerResolution {
	return f.resolution
}

func newTestRouter(movies *fakeMovieService, trailers *fakeTrailerService) http.Handler {
	h := NewHandler(&usecase.Service{Movie: movies, Trailer: trailers}, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/search", h.Movie.Search)
	r.Get("/api/videos", h.Movie.GetVideos)
	r.Get("/api/movies/popular", h.Movie.GetPopular)
	r.Get("/api/movies/{id}", h.Movie.GetMovieByID)
	r.Get("/api/genres", h.Genre.GetGenres)
	r.Get("/api/genres/{id}/movies", h.Genre.GetGenreMovies)
	r.Get("/api/trailer", h.Trailer.GetTrailer)
	return r
}

func serve(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSearch_MissingQueryReturnsEmptyResults(t *testing.T) {
	movies := &fakeMovieService{}
	router := newTestRouter(movies, &fakeTrailerService{})

	for _, target := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
		rec := serve(t, router, target)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
	}
	assert.Empty(t, movies.calls)
}

func TestSearch_ReturnsGatewayResults(t *testing.T) {
	movies := &fakeMovieService{search: []entity.MovieSummary{{ID: 438631, Title: "Dune", ReleaseDate: "2021-09-15"}}}
	router := newTestRouter(movies, &fakeTrailerService{})

	rec := serve(t, router, "/api/search?q=dune")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"dune"}, movies.lastArgs)
	results := decode(t, rec)["results"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "Dune", results[0].(map[string]any)["title"])
}

func TestSearch_GatewayFailureIsEmptyList(t *testing.T) {
	router := newTestRouter(&fakeMovieService{search: nil}, &fakeTrailerService{})

	rec := serve(t, router, "/api/search?q=dune")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
}

func TestVideos(t *testing.T) {
	movies := &fakeMovieService{videos: []entity.Video{{ID: "v1", Key: "k1", Site: "YouTube", Type: "Trailer"}}}
	router := newTestRouter(movies, &fakeTrailerService{})

	rec := serve(t, router, "/api/videos")
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
	assert.Empty(t, movies.calls)

	rec = serve(t, router, "/api/videos?movieId=27205")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"27205"}, movies.lastArgs)
	results := decode(t, rec)["results"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "k1", results[0].(map[string]any)["key"])
}

func TestGetMovieByID(t *testing.T) {
	bundle := &response.MovieBundleResponse{
		Movie: response.MovieDetailResponse{
			MovieSummaryResponse: response.MovieSummaryResponse{ID: 27205, Title: "Inception"},
			BackdropURL:          response.BackdropPlaceholder,
		},
		Trailer: &response.TrailerKeyResponse{Key: "abc", Source: "tmdb", EmbedURL: "https://www.youtube.com/embed/abc"},
		Videos:  []response.VideoResponse{},
	}

	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"found", "/api/movies/27205", nil, http.StatusOK},
		{"not found", "/api/movies/999", usecase.ErrMovieNotFound, http.StatusNotFound},
		{"non numeric", "/api/movies/abc", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies := &fakeMovieService{bundle: bundle, err: tt.err}
			router := newTestRouter(movies, &fakeTrailerService{})

			rec := serve(t, router, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantStatus == http.StatusOK, body["status"])
			if tt.wantStatus == http.StatusOK {
				data := body["data"].(map[string]any)
				assert.Equal(t, "abc", data["trailer"].(map[string]any)["key"])
			}
		})
	}
}

func TestGetPopular(t *testing.T) {
	movies := &fakeMovieService{popular: []response.MovieSummaryResponse{{ID: 1, Title: "A"}}}
	router := newTestRouter(movies, &fakeTrailerService{})

	rec := serve(t, router, "/api/movies/popular")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"GetPopular"}, movies.calls)
	assert.Len(t, decode(t, rec)["data"].([]any), 1)
}

func TestGenres(t *testing.T) {
	movies := &fakeMovieService{
		genres:  []response.GenreResponse{{ID: 28, Name: "Action"}},
		genrePg: &response.GenreMoviesResponse{Genre: response.GenreResponse{ID: 28, Name: "Action"}, Movies: []response.MovieSummaryResponse{}},
	}
	router := newTestRouter(movies, &fakeTrailerService{})

	rec := serve(t, router, "/api/genres")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["data"].([]any), 1)

	rec = serve(t, router, "/api/genres/28/movies")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"28"}, movies.lastArgs)

	rec = serve(t, router, "/api/genres/action/movies")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTrailer(t *testing.T) {
	trailers := &fakeTrailerService{resolution: entity.TrailerResolution{Key: "YoHD9XEInc0", Source: entity.TrailerSourceSearch}}
	router := newTestRouter(&fakeMovieService{}, trailers)

	rec := serve(t, router, "/api/trailer?movieId=27205&title=Inception&year=2010")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"27205", "Inception", "2010"}, trailers.args)
	assert.JSONEq(t, `{
		"movie_id": "27205",
		"title": "Inception",
		"year": "2010",
		"trailer_video_id": "YoHD9XEInc0",
		"source": "search",
		"embed_url": "https://www.youtube.com/embed/YoHD9XEInc0",
		"success": true,
		"message": "Trailer found!"
	}`, rec.Body.String())
}

func TestGetTrailer_NotFound(t *testing.T) {
	router := newTestRouter(&fakeMovieService{}, &fakeTrailerService{})

	rec := serve(t, router, "/api/trailer?movieId=1&title=Nothing")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Nil(t, body["trailer_video_id"])
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No trailer found", body["message"])
}

func TestGetTrailer_Validation(t *testing.T) {
	tests := []struct {
		name   string
		target string
		field  string
	}{
		{"missing movie id", "/api/trailer?title=Inception", "MovieID"},
		{"non numeric movie id", "/api/trailer?movieId=abc&title=Inception", "MovieID"},
		{"missing title", "/api/trailer?movieId=1", "Title"},
		{"bad year", "/api/trailer?movieId=1&title=Inception&year=10", "Year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trailers := &fakeTrailerService{}
			router := newTestRouter(&fakeMovieService{}, trailers)

			rec := serve(t, router, tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, trailers.args)
			errs := decode(t, rec)["errors"].(map[string]any)
			assert.Contains(t, errs, tt.field)
		})
	}
}
