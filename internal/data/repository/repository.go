package repository

import (
	"net/http"

	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

type Repository struct {
	Movie  MovieRepository
	Genre  GenreRepository
	Video  VideoRepository
	Search VideoSearchRepository
}

func NewRepository(httpc *http.Client, config *utils.Config, log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMovieRepository(httpc, config.TMDB, log),
		Genre:  NewGenreRepository(httpc, config.TMDB, log),
		Video:  NewVideoRepository(httpc, config.TMDB, log),
		Search: NewVideoSearchRepository(httpc, config, log),
	}
}
