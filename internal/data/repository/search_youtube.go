package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"movie-browser/internal/data/entity"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

const defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"

type youtubeSearchPayload struct {
	Items *[]struct {
		ID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

type youtubeSearchRepository struct {
	httpc *http.Client
	cfg   utils.YouTubeConfig
	log   *zap.Logger
}

// NewYouTubeSearchRepository searches through the YouTube Data API v3.
func NewYouTubeSearchRepository(httpc *http.Client, cfg utils.YouTubeConfig, log *zap.Logger) VideoSearchRepository {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultYouTubeBaseURL
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 5
	}
	return &youtubeSearchRepository{
		httpc: httpc,
		cfg:   cfg,
		log:   log.With(zap.String("repository", "youtube_search")),
	}
}

func (r *youtubeSearchRepository) Name() string { return utils.TrailerStrategyYouTube }

func (r *youtubeSearchRepository) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	params := url.Values{
		"part":            {"snippet"},
		"type":            {"video"},
		"videoEmbeddable": {"true"},
		"maxResults":      {strconv.Itoa(r.cfg.MaxResults)},
		"q":               {query},
		"key":             {r.cfg.APIKey},
	}
	reqURL := r.cfg.BaseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPStatusError{
			URL:        utils.RedactURL(reqURL),
			StatusCode: resp.StatusCode,
			Body:       utils.Truncate(string(body), maxErrorBody),
		}
	}

	var payload youtubeSearchPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode youtube search: %v", ErrMalformedPayload, err)
	}
	if payload.Items == nil {
		return nil, fmt.Errorf("%w: youtube search without items", ErrMalformedPayload)
	}

	results := make([]entity.SearchResult, 0, len(*payload.Items))
	for _, item := range *payload.Items {
		videoID := strings.TrimSpace(item.ID.VideoID)
		if videoID == "" {
			continue
		}
		// Snippet text comes back HTML-escaped.
		results = append(results, entity.SearchResult{
			VideoID:      videoID,
			Title:        html.UnescapeString(item.Snippet.Title),
			ChannelTitle: html.UnescapeString(item.Snippet.ChannelTitle),
		})
	}

	r.log.Debug("YouTube search finished",
		zap.String("query", query),
		zap.Int("count", len(results)),
	)
	return results, nil
}
