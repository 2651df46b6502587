package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"movie-browser/pkg/httpclient"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

// maxErrorBody caps how much of a failed response ends up in logs.
const maxErrorBody = 512

// tmdbClient issues single GET requests against the TMDB v3 API.
type tmdbClient struct {
	httpc *http.Client
	cfg   utils.TMDBConfig
	log   *zap.Logger
}

func newTMDBClient(httpc *http.Client, cfg utils.TMDBConfig, log *zap.Logger) *tmdbClient {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if cfg.Language == "" {
		cfg.Language = "en-US"
	}
	if cfg.AcceptLanguage == "" {
		cfg.AcceptLanguage = "en-US,en;q=0.9"
	}
	return &tmdbClient{httpc: httpc, cfg: cfg, log: log}
}

func (c *tmdbClient) endpoint(path string, params url.Values) string {
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("api_key", c.cfg.APIKey)
	q.Set("language", c.cfg.Language)
	return c.cfg.BaseURL + path + "?" + q.Encode()
}

// get performs one GET and decodes a 2xx JSON body into out.
func (c *tmdbClient) get(ctx context.Context, path string, params url.Values, maxAge time.Duration, out any) error {
	reqURL := c.endpoint(path, params)

	req, err := http.NewRequestWithContext(httpclient.WithFreshness(ctx, maxAge), http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.cfg.AcceptLanguage)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request %s: %w", path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("TMDB response",
		zap.String("url", utils.RedactURL(reqURL)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPStatusError{
			URL:        utils.RedactURL(reqURL),
			StatusCode: resp.StatusCode,
			Body:       utils.Truncate(string(body), maxErrorBody),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrMalformedPayload, path, err)
	}

	return nil
}
