package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"movie-browser/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCountingServer(t *testing.T, status int) (*httptest.Server, *atomic.Int32, *atomic.Value) {
	t.Helper()
	var hits atomic.Int32
	var lastCacheControl atomic.Value
	lastCacheControl.Store("")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		lastCacheControl.Store(r.Header.Get("Cache-Control"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits, &lastCacheControl
}

func doGet(t *testing.T, c *http.Client, ctx context.Context, url string) string {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestCacheTransport_ServesWithinFreshnessWindow(t *testing.T) {
	srv, hits, cc := newCountingServer(t, http.StatusOK)

	tr, err := NewCacheTransport(http.DefaultTransport, 8, zap.NewNop())
	require.NoError(t, err)
	c := &http.Client{Transport: tr}

	ctx := WithFreshness(context.Background(), OneHour)
	assert.Equal(t, `{"results":[]}`, doGet(t, c, ctx, srv.URL+"/movie/popular"))
	assert.Equal(t, `{"results":[]}`, doGet(t, c, ctx, srv.URL+"/movie/popular"))

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, "max-age=3600", cc.Load())
}

func TestCacheTransport_ExpiredEntryRefetches(t *testing.T) {
	srv, hits, _ := newCountingServer(t, http.StatusOK)

	tr, err := NewCacheTransport(http.DefaultTransport, 8, zap.NewNop())
	require.NoError(t, err)
	now := time.Now()
	tr.now = func() time.Time { return now }
	c := &http.Client{Transport: tr}

	ctx := WithFreshness(context.Background(), OneHour)
	doGet(t, c, ctx, srv.URL+"/genre/movie/list")
	now = now.Add(2 * time.Hour)
	doGet(t, c, ctx, srv.URL+"/genre/movie/list")

	assert.Equal(t, int32(2), hits.Load())
}

func TestCacheTransport_RevalidateNeverCached(t *testing.T) {
	srv, hits, cc := newCountingServer(t, http.StatusOK)

	tr, err := NewCacheTransport(http.DefaultTransport, 8, zap.NewNop())
	require.NoError(t, err)
	c := &http.Client{Transport: tr}

	ctx := WithFreshness(context.Background(), Revalidate)
	doGet(t, c, ctx, srv.URL+"/search/movie?query=x")
	doGet(t, c, ctx, srv.URL+"/search/movie?query=x")

	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, "no-cache", cc.Load())
}

func TestCacheTransport_NoHintPassesThrough(t *testing.T) {
	srv, hits, cc := newCountingServer(t, http.StatusOK)

	tr, err := NewCacheTransport(http.DefaultTransport, 8, zap.NewNop())
	require.NoError(t, err)
	c := &http.Client{Transport: tr}

	doGet(t, c, context.Background(), srv.URL+"/search")
	doGet(t, c, context.Background(), srv.URL+"/search")

	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, "", cc.Load())
}

func TestCacheTransport_ErrorsAreNotCached(t *testing.T) {
	srv, hits, _ := newCountingServer(t, http.StatusUnauthorized)

	tr, err := NewCacheTransport(http.DefaultTransport, 8, zap.NewNop())
	require.NoError(t, err)
	c := &http.Client{Transport: tr}

	ctx := WithFreshness(context.Background(), OneDay)
	doGet(t, c, ctx, srv.URL+"/movie/1/videos")
	doGet(t, c, ctx, srv.URL+"/movie/1/videos")

	assert.Equal(t, int32(2), hits.Load())
}

func TestNewClient_CacheSwitch(t *testing.T) {
	c, err := NewClient(utils.HTTPConfig{}, zap.NewNop())
	require.NoError(t, err)
	_, isCache := c.Transport.(*CacheTransport)
	assert.False(t, isCache)
	assert.Equal(t, defaultTimeout, c.Timeout)

	c, err = NewClient(utils.HTTPConfig{CacheSize: 16}, zap.NewNop())
	require.NoError(t, err)
	_, isCache = c.Transport.(*CacheTransport)
	assert.True(t, isCache)
}
