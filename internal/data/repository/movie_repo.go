package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movie-browser/internal/data/entity"
	"movie-browser/pkg/httpclient"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

//go:generate mockgen -source=movie_repo.go -destination=mocks/mock_movie_repo.go -package=mocks

// MovieRepository never returns errors: every failure is logged and turned
// into an empty list or a nil detail.
type MovieRepository interface {
	Popular(ctx context.Context) []entity.MovieSummary
	FindByID(ctx context.Context, movieID string) *entity.MovieDetail
	Search(ctx context.Context, query string) []entity.MovieSummary
	FindByGenre(ctx context.Context, genreID string) []entity.MovieSummary
}

type movieListPayload struct {
	Page         int                    `json:"page"`
	Results      *[]entity.MovieSummary `json:"results"`
	TotalPages   int                    `json:"total_pages"`
	TotalResults int                    `json:"total_results"`
}

type movieRepository struct {
	tmdb *tmdbClient
	log  *zap.Logger
}

func NewMovieRepository(httpc *http.Client, cfg utils.TMDBConfig, log *zap.Logger) MovieRepository {
	log = log.With(zap.String("repository", "movie"))
	return &movieRepository{
		tmdb: newTMDBClient(httpc, cfg, log),
		log:  log,
	}
}

func (r *movieRepository) Popular(ctx context.Context) []entity.MovieSummary {
	params := url.Values{"page": {"1"}}
	return r.list(ctx, "/movie/popular", params, httpclient.OneHour, "popular")
}

func (r *movieRepository) FindByID(ctx context.Context, movieID string) *entity.MovieDetail {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return nil
	}

	var movie entity.MovieDetail
	err := r.tmdb.get(ctx, "/movie/"+url.PathEscape(movieID), nil, httpclient.OneHour, &movie)
	if err == nil && movie.ID == 0 {
		err = fmt.Errorf("%w: movie detail without id", ErrMalformedPayload)
	}
	if err != nil {
		if IsNotFound(err) {
			r.log.Warn("Movie not found on TMDB", zap.String("movie_id", movieID))
		} else {
			r.log.Error("Failed to fetch movie detail",
				zap.Error(err),
				zap.String("movie_id", movieID),
			)
		}
		return nil
	}

	if movie.Genres == nil {
		movie.Genres = []entity.Genre{}
	}
	return &movie
}

func (r *movieRepository) Search(ctx context.Context, query string) []entity.MovieSummary {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.MovieSummary{}
	}
	params := url.Values{
		"query": {query},
		"page":  {"1"},
	}
	return r.list(ctx, "/search/movie", params, httpclient.Revalidate, "search")
}

func (r *movieRepository) FindByGenre(ctx context.Context, genreID string) []entity.MovieSummary {
	genreID = strings.TrimSpace(genreID)
	if genreID == "" {
		return []entity.MovieSummary{}
	}
	params := url.Values{
		"with_genres": {genreID},
		"page":        {"1"},
		"sort_by":     {"popularity.desc"},
	}
	return r.list(ctx, "/discover/movie", params, httpclient.OneHour, "discover")
}

func (r *movieRepository) list(ctx context.Context, path string, params url.Values, maxAge time.Duration, operation string) []entity.MovieSummary {
	var payload movieListPayload
	err := r.tmdb.get(ctx, path, params, maxAge, &payload)
	if err == nil && payload.Results == nil {
		err = fmt.Errorf("%w: %s without results", ErrMalformedPayload, path)
	}
	if err != nil {
		r.log.Error("Failed to fetch movie list",
			zap.Error(err),
			zap.String("operation", operation),
		)
		return []entity.MovieSummary{}
	}

	movies := *payload.Results
	if movies == nil {
		movies = []entity.MovieSummary{}
	}

	r.log.Debug("Movie list fetched",
		zap.String("operation", operation),
		zap.Int("count", len(movies)),
	)
	return movies
}
