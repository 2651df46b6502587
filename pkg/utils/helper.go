package utils

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// YearFromDate returns the leading year of a YYYY-MM-DD date, or nil when
// the date is blank or malformed.
func YearFromDate(date string) *int {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return nil
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return nil
	}
	return &year
}

// RedactURL hides credential query parameters before a URL is logged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = RedactQuery(u.RawQuery)
	return u.String()
}

// RedactQuery masks api_key and key values in a raw query string.
func RedactQuery(rawQuery string) string {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return rawQuery
	}
	redacted := false
	for _, key := range []string{"api_key", "key"} {
		if q.Has(key) {
			q.Set(key, "REDACTED")
			redacted = true
		}
	}
	if !redacted {
		return rawQuery
	}
	return q.Encode()
}

// Truncate shortens s to at most n bytes without splitting a rune.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
