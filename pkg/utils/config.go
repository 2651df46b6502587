package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	TMDB      TMDBConfig
	HTTP      HTTPConfig
	Trailer   TrailerConfig
	YouTube   YouTubeConfig
	Invidious InvidiousConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type TMDBConfig struct {
	APIKey         string
	BaseURL        string
	ImageBaseURL   string
	Language       string
	AcceptLanguage string
}

type HTTPConfig struct {
	Timeout time.Duration
	// CacheSize is the number of responses the fetch cache keeps; 0 disables it.
	CacheSize int
}

type TrailerConfig struct {
	Strategy      string
	SearchTimeout time.Duration
}

type YouTubeConfig struct {
	APIKey     string
	BaseURL    string
	MaxResults int
}

type InvidiousConfig struct {
	Instances []string
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type CORSConfig struct {
	AllowedOrigins []string
}

const (
	TrailerStrategyYouTube   = "youtube"
	TrailerStrategyInvidious = "invidious"
	TrailerStrategyNone      = "none"
)

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads an optional env file and overlays the process environment.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-browser")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	v.SetDefault("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p")
	v.SetDefault("TMDB_LANGUAGE", "en-US")
	v.SetDefault("TMDB_ACCEPT_LANGUAGE", "en-US,en;q=0.9")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	v.SetDefault("FETCH_CACHE_SIZE", 256)
	v.SetDefault("TRAILER_SEARCH_STRATEGY", TrailerStrategyYouTube)
	v.SetDefault("TRAILER_SEARCH_TIMEOUT_SECONDS", 8)
	v.SetDefault("YOUTUBE_BASE_URL", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("YOUTUBE_MAX_RESULTS", 5)
	v.SetDefault("INVIDIOUS_INSTANCES", "https://yewtu.be,https://inv.nadeko.net")
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	// The env file is optional; the process environment is enough in containers.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	apiKey := v.GetString("TMDB_API_KEY")
	if apiKey == "" {
		apiKey = v.GetString("NEXT_PUBLIC_TMDB_API_KEY")
	}

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		TMDB: TMDBConfig{
			APIKey:         apiKey,
			BaseURL:        strings.TrimRight(v.GetString("TMDB_BASE_URL"), "/"),
			ImageBaseURL:   strings.TrimRight(v.GetString("TMDB_IMAGE_BASE_URL"), "/"),
			Language:       v.GetString("TMDB_LANGUAGE"),
			AcceptLanguage: v.GetString("TMDB_ACCEPT_LANGUAGE"),
		},
		HTTP: HTTPConfig{
			Timeout:   time.Duration(v.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
			CacheSize: v.GetInt("FETCH_CACHE_SIZE"),
		},
		Trailer: TrailerConfig{
			Strategy:      strings.ToLower(strings.TrimSpace(v.GetString("TRAILER_SEARCH_STRATEGY"))),
			SearchTimeout: time.Duration(v.GetInt("TRAILER_SEARCH_TIMEOUT_SECONDS")) * time.Second,
		},
		YouTube: YouTubeConfig{
			APIKey:     v.GetString("YOUTUBE_API_KEY"),
			BaseURL:    strings.TrimRight(v.GetString("YOUTUBE_BASE_URL"), "/"),
			MaxResults: v.GetInt("YOUTUBE_MAX_RESULTS"),
		},
		Invidious: InvidiousConfig{
			Instances: SplitList(v.GetString("INVIDIOUS_INSTANCES")),
		},
		RateLimit: RateLimitConfig{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins: SplitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}

// SplitList splits a comma separated value, dropping blanks.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, strings.TrimRight(part, "/"))
	}
	return out
}
