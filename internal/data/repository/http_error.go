package repository

import (
	"errors"
	"fmt"
	"strings"
)

// HTTPStatusError is returned when an upstream answers with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d - %s", e.StatusCode, body)
}

// ErrMalformedPayload marks a 2xx response whose body does not match the
// expected shape.
var ErrMalformedPayload = errors.New("malformed payload")

// IsNotFound reports whether err carries a 404 from upstream.
func IsNotFound(err error) bool {
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 404
}
