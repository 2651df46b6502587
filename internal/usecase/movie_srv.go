package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"movie-browser/internal/data/entity"
	"movie-browser/internal/data/repository"
	"movie-browser/internal/dto/response"
	"movie-browser/pkg/utils"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var (
	ErrInvalidMovieID = errors.New("invalid movie id")
	ErrInvalidGenreID = errors.New("invalid genre id")
	ErrMovieNotFound  = errors.New("movie not found")
)

type MovieService interface {
	GetPopular(ctx context.Context) []response.MovieSummaryResponse
	Search(ctx context.Context, query string) []entity.MovieSummary
	GetVideos(ctx context.Context, movieID string) []entity.Video
	GetMovieDetail(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
	GetMovieBundle(ctx context.Context, movieID string) (*response.MovieBundleResponse, error)
	GetGenres(ctx context.Context) []response.GenreResponse
	GetGenreMovies(ctx context.Context, genreID string) (*response.GenreMoviesResponse, error)
}

type movieService struct {
	repo         *repository.Repository
	trailer      TrailerService
	imageBaseURL string
	log          *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	trailer TrailerService,
	config *utils.Config,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:         repo,
		trailer:      trailer,
		imageBaseURL: config.TMDB.ImageBaseURL,
		log:          log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetPopular(ctx context.Context) []response.MovieSummaryResponse {
	movies := s.repo.Movie.Popular(ctx)

	s.log.Info("Popular movies retrieved", zap.Int("count", len(movies)))
	return response.MoviesToSummaryResponses(movies, s.imageBaseURL)
}

func (s *movieService) Search(ctx context.Context, query string) []entity.MovieSummary {
	movies := s.repo.Movie.Search(ctx, query)

	s.log.Debug("Movie search",
		zap.String("query", query),
		zap.Int("count", len(movies)),
	)
	return movies
}

func (s *movieService) GetVideos(ctx context.Context, movieID string) []entity.Video {
	return s.repo.Video.FindByMovieID(ctx, movieID)
}

func (s *movieService) GetMovieDetail(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	if err := checkID(movieID); err != nil {
		s.log.Warn("Invalid movie ID format", zap.String("movie_id", movieID))
		return nil, fmt.Errorf("%w: %s", ErrInvalidMovieID, movieID)
	}

	movie := s.repo.Movie.FindByID(ctx, movieID)
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	detail := response.MovieToDetailResponse(movie, s.imageBaseURL)
	return &detail, nil
}

// GetMovieBundle fetches detail and videos concurrently, then resolves the
// trailer from the fetched videos so the video list is requested once.
func (s *movieService) GetMovieBundle(ctx context.Context, movieID string) (*response.MovieBundleResponse, error) {
	if err := checkID(movieID); err != nil {
		s.log.Warn("Invalid movie ID format", zap.String("movie_id", movieID))
		return nil, fmt.Errorf("%w: %s", ErrInvalidMovieID, movieID)
	}

	var (
		movie  *entity.MovieDetail
		videos []entity.Video
	)

	p := pool.New()
	p.Go(func() {
		movie = s.repo.Movie.FindByID(ctx, movieID)
	})
	p.Go(func() {
		videos = s.repo.Video.FindByMovieID(ctx, movieID)
	})
	p.Wait()

	if movie == nil {
		return nil, ErrMovieNotFound
	}

	year := ""
	if y := utils.YearFromDate(movie.ReleaseDate); y != nil {
		year = strconv.Itoa(*y)
	}
	trailer := s.trailer.ResolveFromVideos(ctx, videos, movie.Title, year)

	s.log.Info("Movie bundle retrieved",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
		zap.Int("video_count", len(videos)),
		zap.String("trailer_source", string(trailer.Source)),
	)

	return &response.MovieBundleResponse{
		Movie:   response.MovieToDetailResponse(movie, s.imageBaseURL),
		Trailer: response.TrailerToKeyResponse(trailer),
		Videos:  response.VideosToResponses(videos),
	}, nil
}

func (s *movieService) GetGenres(ctx context.Context) []response.GenreResponse {
	return response.GenresToResponses(s.repo.Genre.FindAll(ctx))
}

func (s *movieService) GetGenreMovies(ctx context.Context, genreID string) (*response.GenreMoviesResponse, error) {
	if err := checkID(genreID); err != nil {
		s.log.Warn("Invalid genre ID format", zap.String("genre_id", genreID))
		return nil, fmt.Errorf("%w: %s", ErrInvalidGenreID, genreID)
	}

	var (
		genres []entity.Genre
		movies []entity.MovieSummary
	)

	p := pool.New()
	p.Go(func() {
		genres = s.repo.Genre.FindAll(ctx)
	})
	p.Go(func() {
		movies = s.repo.Movie.FindByGenre(ctx, genreID)
	})
	p.Wait()

	id, _ := strconv.ParseInt(genreID, 10, 64)
	genre := entity.Genre{ID: id, Name: response.DefaultGenreName}
	for _, g := range genres {
		if g.ID == id {
			genre.Name = g.Name
			break
		}
	}

	s.log.Info("Genre movies retrieved",
		zap.Int64("genre_id", id),
		zap.String("genre", genre.Name),
		zap.Int("count", len(movies)),
	)

	return &response.GenreMoviesResponse{
		Genre:  response.GenreToResponse(genre),
		Movies: response.MoviesToSummaryResponses(movies, s.imageBaseURL),
	}, nil
}

// checkID accepts positive decimal TMDB identifiers.
func checkID(id string) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return err
	}
	if n <= 0 {
		return errors.New("id must be positive")
	}
	return nil
}
