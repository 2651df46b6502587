package repository

import (
	"context"
	"net/http"

	"movie-browser/internal/data/entity"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

//go:generate mockgen -source=search_repo.go -destination=mocks/mock_search_repo.go -package=mocks

// VideoSearchRepository queries the video platform by free text. Unlike the
// TMDB repositories it reports failures, so the trailer cascade can log them
// and move on to its next query.
type VideoSearchRepository interface {
	Name() string
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

// NewVideoSearchRepository picks the search strategy named in config.
func NewVideoSearchRepository(httpc *http.Client, config *utils.Config, log *zap.Logger) VideoSearchRepository {
	switch config.Trailer.Strategy {
	case utils.TrailerStrategyInvidious:
		return NewInvidiousSearchRepository(httpc, config.Invidious, config.YouTube.MaxResults, log)
	case utils.TrailerStrategyNone:
		return noopSearchRepository{}
	case utils.TrailerStrategyYouTube, "":
		return NewYouTubeSearchRepository(httpc, config.YouTube, log)
	default:
		log.Warn("Unknown trailer search strategy, falling back to youtube",
			zap.String("strategy", config.Trailer.Strategy))
		return NewYouTubeSearchRepository(httpc, config.YouTube, log)
	}
}

type noopSearchRepository struct{}

func (noopSearchRepository) Name() string { return utils.TrailerStrategyNone }

func (noopSearchRepository) Search(context.Context, string) ([]entity.SearchResult, error) {
	return nil, nil
}
