package repository

import (
	"context"
	"fmt"
	"net/http"

	"movie-browser/internal/data/entity"
	"movie-browser/pkg/httpclient"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

//go:generate mockgen -source=genre_repo.go -destination=mocks/mock_genre_repo.go -package=mocks

type GenreRepository interface {
	FindAll(ctx context.Context) []entity.Genre
}

type genreListPayload struct {
	Genres *[]entity.Genre `json:"genres"`
}

type genreRepository struct {
	tmdb *tmdbClient
	log  *zap.Logger
}

func NewGenreRepository(httpc *http.Client, cfg utils.TMDBConfig, log *zap.Logger) GenreRepository {
	log = log.With(zap.String("repository", "genre"))
	return &genreRepository{
		tmdb: newTMDBClient(httpc, cfg, log),
		log:  log,
	}
}

func (r *genreRepository) FindAll(ctx context.Context) []entity.Genre {
	var payload genreListPayload
	err := r.tmdb.get(ctx, "/genre/movie/list", nil, httpclient.OneDay, &payload)
	if err == nil && payload.Genres == nil {
		err = fmt.Errorf("%w: genre list without genres", ErrMalformedPayload)
	}
	if err != nil {
		r.log.Error("Failed to fetch genres", zap.Error(err))
		return []entity.Genre{}
	}

	genres := *payload.Genres
	if genres == nil {
		genres = []entity.Genre{}
	}
	return genres
}
