package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"movie-browser/internal/data/entity"
	"movie-browser/pkg/httpclient"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

//go:generate mockgen -source=video_repo.go -destination=mocks/mock_video_repo.go -package=mocks

type VideoRepository interface {
	FindByMovieID(ctx context.Context, movieID string) []entity.Video
}

type videoListPayload struct {
	ID      int64           `json:"id"`
	Results *[]entity.Video `json:"results"`
}

type videoRepository struct {
	tmdb *tmdbClient
	log  *zap.Logger
}

func NewVideoRepository(httpc *http.Client, cfg utils.TMDBConfig, log *zap.Logger) VideoRepository {
	log = log.With(zap.String("repository", "video"))
	return &videoRepository{
		tmdb: newTMDBClient(httpc, cfg, log),
		log:  log,
	}
}

// FindByMovieID returns the videos TMDB attaches to a movie in provider order.
func (r *videoRepository) FindByMovieID(ctx context.Context, movieID string) []entity.Video {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return []entity.Video{}
	}

	var payload videoListPayload
	err := r.tmdb.get(ctx, "/movie/"+url.PathEscape(movieID)+"/videos", nil, httpclient.OneDay, &payload)
	if err == nil && payload.Results == nil {
		err = fmt.Errorf("%w: video list without results", ErrMalformedPayload)
	}
	if err != nil {
		r.log.Error("Failed to fetch movie videos",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return []entity.Video{}
	}

	videos := *payload.Results
	if videos == nil {
		videos = []entity.Video{}
	}
	return videos
}
