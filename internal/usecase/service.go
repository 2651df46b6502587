package usecase

import (
	"movie-browser/internal/data/repository"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Trailer TrailerService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	trailer := NewTrailerService(repo, config, log)
	return &Service{
		Movie:   NewMovieService(repo, trailer, config, log),
		Trailer: trailer,
	}
}
