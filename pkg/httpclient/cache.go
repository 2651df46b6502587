package httpclient

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// maxCachedBody bounds a single cached payload.
const maxCachedBody = 4 << 20

type cachedResponse struct {
	status    int
	header    http.Header
	body      []byte
	expiresAt time.Time
}

// CacheTransport honours the freshness hint carried by each request context.
// Requests without a hint, or with Revalidate, always go to the network.
type CacheTransport struct {
	Base  http.RoundTripper
	cache *lru.Cache[string, cachedResponse]
	log   *zap.Logger
	now   func() time.Time
}

func NewCacheTransport(base http.RoundTripper, size int, log *zap.Logger) (*CacheTransport, error) {
	if base == nil {
		return nil, errors.New("nil base transport")
	}
	cache, err := lru.New[string, cachedResponse](size)
	if err != nil {
		return nil, err
	}
	return &CacheTransport{
		Base:  base,
		cache: cache,
		log:   log.With(zap.String("component", "fetch_cache")),
		now:   time.Now,
	}, nil
}

func (t *CacheTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	maxAge, hinted := FreshnessFromContext(req.Context())
	if !hinted || req.Method != http.MethodGet {
		return t.Base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	if maxAge == Revalidate {
		r.Header.Set("Cache-Control", "no-cache")
		return t.Base.RoundTrip(r)
	}
	r.Header.Set("Cache-Control", "max-age="+strconv.Itoa(int(maxAge.Seconds())))

	key := cacheKey(r)
	if entry, ok := t.cache.Get(key); ok {
		if t.now().Before(entry.expiresAt) {
			t.log.Debug("Fetch cache hit", zap.String("path", r.URL.Path))
			return entry.response(r), nil
		}
		t.cache.Remove(key)
	}

	resp, err := t.Base.RoundTrip(r)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCachedBody+1))
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if len(body) > maxCachedBody {
		return resp, nil
	}

	t.cache.Add(key, cachedResponse{
		status:    resp.StatusCode,
		header:    resp.Header.Clone(),
		body:      body,
		expiresAt: t.now().Add(maxAge),
	})
	return resp, nil
}

func (c cachedResponse) response(req *http.Request) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", c.status, http.StatusText(c.status)),
		StatusCode:    c.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        c.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(c.body)),
		ContentLength: int64(len(c.body)),
		Request:       req,
	}
}

func cacheKey(req *http.Request) string {
	return req.URL.String() + "|" + req.Header.Get("Accept-Language")
}
