// internal/wire/wire.go
package wire

import (
	"net/http"
	"sync"
	"time"

	"movie-browser/internal/adaptor"
	"movie-browser/internal/data/repository"
	"movie-browser/internal/usecase"
	"movie-browser/pkg/middleware"
	"movie-browser/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const limiterCleanupInterval = time.Minute

// App holds the wired router and its background jobs
type App struct {
	Router *chi.Mux

	done      chan struct{}
	closeOnce sync.Once
}

// Close stops background jobs started by Wiring
func (a *App) Close() {
	a.closeOnce.Do(func() { close(a.done) })
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	app := &App{done: make(chan struct{})}
	app.Router = setupRouter(app, handler, config, logger)

	return app
}

// setupRouter configures the chi router
func setupRouter(
	app *App,
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	if config.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst)
		go limiter.RunCleanup(limiterCleanupInterval, app.done)
		r.Use(middleware.RateLimit(limiter, logger))
	}

	// Apply routes
	wireMovie(r, handler.Movie)
	wireGenre(r, handler.Genre)
	wireTrailer(r, handler.Trailer)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
