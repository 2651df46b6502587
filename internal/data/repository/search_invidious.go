package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"movie-browser/internal/data/entity"
	"movie-browser/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

const invidiousUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// ErrNoInstances is returned when the invidious strategy has nothing to query.
var ErrNoInstances = errors.New("no invidious instances configured")

type invidiousSearchRepository struct {
	httpc      *http.Client
	instances  []string
	maxResults int
	log        *zap.Logger
}

// NewInvidiousSearchRepository searches anonymous Invidious front-ends and
// parses their HTML result page. Instances are tried in order until one
// answers.
func NewInvidiousSearchRepository(httpc *http.Client, cfg utils.InvidiousConfig, maxResults int, log *zap.Logger) VideoSearchRepository {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if maxResults <= 0 {
		maxResults = 5
	}
	return &invidiousSearchRepository{
		httpc:      httpc,
		instances:  cfg.Instances,
		maxResults: maxResults,
		log:        log.With(zap.String("repository", "invidious_search")),
	}
}

func (r *invidiousSearchRepository) Name() string { return utils.TrailerStrategyInvidious }

func (r *invidiousSearchRepository) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	if len(r.instances) == 0 {
		return nil, ErrNoInstances
	}

	attempt := 0
	return retry.DoWithData(
		func() ([]entity.SearchResult, error) {
			instance := r.instances[attempt%len(r.instances)]
			attempt++
			return r.searchInstance(ctx, instance, query)
		},
		retry.Attempts(uint(len(r.instances))),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			r.log.Warn("Invidious instance failed",
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
}

func (r *invidiousSearchRepository) searchInstance(ctx context.Context, instance, query string) ([]entity.SearchResult, error) {
	params := url.Values{
		"q":    {query},
		"type": {"video"},
	}
	reqURL := strings.TrimRight(instance, "/") + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", invidiousUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := r.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invidious search %s: %w", instance, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPStatusError{
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Body:       utils.Truncate(string(body), maxErrorBody),
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse invidious page: %v", ErrMalformedPayload, err)
	}

	results := parseInvidiousResults(doc, r.maxResults)
	r.log.Debug("Invidious search finished",
		zap.String("instance", instance),
		zap.String("query", query),
		zap.Int("count", len(results)),
	)
	return results, nil
}

// parseInvidiousResults reads the video cards of an Invidious search page.
func parseInvidiousResults(doc *goquery.Document, limit int) []entity.SearchResult {
	var results []entity.SearchResult
	seen := make(map[string]bool)

	doc.Find("div.h-box").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		link := card.Find(`a[href^="/watch?v="]`).First()
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		videoID := videoIDFromWatchHref(href)
		if videoID == "" || seen[videoID] {
			return true
		}
		seen[videoID] = true

		title := normSpace(link.Find(`p[dir="auto"]`).First().Text())
		if title == "" {
			title = normSpace(link.Text())
		}

		results = append(results, entity.SearchResult{
			VideoID:      videoID,
			Title:        title,
			ChannelTitle: normSpace(card.Find("p.channel-name").First().Text()),
		})
		return len(results) < limit
	})

	return results
}

func videoIDFromWatchHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(u.Query().Get("v"))
}

func normSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
