package usecase

import (
	"context"
	"errors"
	"time"

	"movie-browser/internal/data/entity"
	"movie-browser/internal/data/repository"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

const defaultSearchTimeout = 8 * time.Second

// TrailerService resolves one embeddable trailer key per movie. It never
// fails: a zero TrailerResolution means no trailer was found.
type TrailerService interface {
	Resolve(ctx context.Context, movieID, title, releaseYear string) entity.TrailerResolution
	ResolveFromVideos(ctx context.Context, videos []entity.Video, title, releaseYear string) entity.TrailerResolution
}

type trailerService struct {
	repo          *repository.Repository
	searchTimeout time.Duration
	log           *zap.Logger
}

func NewTrailerService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) TrailerService {
	timeout := config.Trailer.SearchTimeout
	if timeout <= 0 {
		timeout = defaultSearchTimeout
	}
	return &trailerService{
		repo:          repo,
		searchTimeout: timeout,
		log:           log.With(zap.String("service", "trailer")),
	}
}

func (s *trailerService) Resolve(ctx context.Context, movieID, title, releaseYear string) entity.TrailerResolution {
	videos := s.repo.Video.FindByMovieID(ctx, movieID)
	resolution := s.ResolveFromVideos(ctx, videos, title, releaseYear)

	s.log.Info("Trailer resolved",
		zap.String("movie_id", movieID),
		zap.String("title", title),
		zap.String("key", resolution.Key),
		zap.String("source", string(resolution.Source)),
	)
	return resolution
}

func (s *trailerService) ResolveFromVideos(ctx context.Context, videos []entity.Video, title, releaseYear string) entity.TrailerResolution {
	// Provider order is treated as relevance order.
	for _, v := range videos {
		if v.IsPlayableTrailer() {
			return entity.TrailerResolution{Key: v.Key, Source: entity.TrailerSourceTMDB}
		}
	}

	if s.repo.Search == nil {
		return entity.TrailerResolution{}
	}

	queries := trailerQueries(title, releaseYear)
	if len(queries) == 0 {
		s.log.Debug("Skipping trailer search without title")
		return entity.TrailerResolution{}
	}

	for _, query := range queries {
		results := s.search(ctx, query)

		key, verified, ok := pickSearchResult(results)
		if !ok {
			continue
		}

		source := entity.TrailerSourceSearch
		if !verified {
			source = entity.TrailerSourceSearchUnverified
		}
		return entity.TrailerResolution{Key: key, Source: source, Query: query}
	}

	s.log.Info("No trailer found",
		zap.String("title", title),
		zap.String("year", releaseYear),
		zap.String("strategy", s.repo.Search.Name()),
	)
	return entity.TrailerResolution{}
}

// search runs one query under its own timeout. Errors count as zero results.
func (s *trailerService) search(ctx context.Context, query string) []entity.SearchResult {
	searchCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	start := time.Now()
	results, err := s.repo.Search.Search(searchCtx, query)
	if err != nil {
		s.log.Warn("Trailer search failed",
			zap.Error(err),
			zap.String("query", query),
			zap.Duration("duration", time.Since(start)),
			zap.Bool("timeout", errors.Is(err, context.DeadlineExceeded)),
		)
		return nil
	}

	s.log.Debug("Trailer search",
		zap.String("query", query),
		zap.Int("count", len(results)),
	)
	return results
}
