package usecase

import (
	"strings"

	"movie-browser/internal/data/entity"

	"golang.org/x/text/cases"
)

// Title fragments that mark a search hit as a trailer.
var trailerTitleMarkers = []string{"official trailer", "trailer", "teaser"}

// Channel name fragments of studios and distributors that publish trailers.
var studioChannelFragments = []string{
	"warner bros",
	"universal pictures",
	"sony pictures",
	"paramount",
	"disney",
	"marvel",
	"pixar",
	"20th century",
	"searchlight",
	"lionsgate",
	"netflix",
	"a24",
	"focus features",
	"dreamworks",
	"columbia pictures",
	"mgm",
	"amazon",
	"apple tv",
	"hbo",
	"neon",
	"blumhouse",
	"legendary",
	"studiocanal",
	"movieclips trailers",
}

// trailerQueries lists the search phrasings from most to least specific.
// A blank year collapses the year-specific variants; duplicates are dropped.
func trailerQueries(title, year string) []string {
	title = strings.TrimSpace(title)
	year = strings.TrimSpace(year)
	if title == "" {
		return nil
	}

	variants := []string{
		joinQuery(title, year, "official trailer"),
		joinQuery(title, year, "trailer"),
		joinQuery(title, year, "teaser trailer"),
		joinQuery(title, "official trailer"),
	}

	queries := make([]string, 0, len(variants))
	seen := make(map[string]bool, len(variants))
	for _, q := range variants {
		if seen[q] {
			continue
		}
		seen[q] = true
		queries = append(queries, q)
	}
	return queries
}

func joinQuery(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// looksOfficial reports whether a search hit is titled like a trailer or was
// uploaded by a known studio channel.
func looksOfficial(result entity.SearchResult) bool {
	fold := cases.Fold()
	title := fold.String(result.Title)
	for _, marker := range trailerTitleMarkers {
		if strings.Contains(title, marker) {
			return true
		}
	}

	channel := fold.String(result.ChannelTitle)
	if channel == "" {
		return false
	}
	for _, fragment := range studioChannelFragments {
		if strings.Contains(channel, fragment) {
			return true
		}
	}
	return false
}

// pickSearchResult prefers the first official-looking hit and otherwise falls
// back to the first raw hit. ok is false when results is empty.
func pickSearchResult(results []entity.SearchResult) (key string, verified bool, ok bool) {
	var first string
	for _, r := range results {
		if strings.TrimSpace(r.VideoID) == "" {
			continue
		}
		if looksOfficial(r) {
			return r.VideoID, true, true
		}
		if first == "" {
			first = r.VideoID
		}
	}
	if first == "" {
		return "", false, false
	}
	return first, false, true
}
