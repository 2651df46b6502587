package httpclient

import (
	"context"
	"time"
)

// Freshness hints used by the TMDB gateway.
const (
	Revalidate time.Duration = 0
	OneHour                  = time.Hour
	OneDay                   = 24 * time.Hour
)

type freshnessKey struct{}

// WithFreshness attaches the maximum staleness a request accepts. Revalidate
// means the response must never be served from cache.
func WithFreshness(ctx context.Context, maxAge time.Duration) context.Context {
	if maxAge < 0 {
		maxAge = Revalidate
	}
	return context.WithValue(ctx, freshnessKey{}, maxAge)
}

// FreshnessFromContext reports the hint set by WithFreshness.
func FreshnessFromContext(ctx context.Context) (time.Duration, bool) {
	maxAge, ok := ctx.Value(freshnessKey{}).(time.Duration)
	return maxAge, ok
}
