package video

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"skillpath-backend/utilities"
)

const (
	DefaultLimit = 6
	MaxLimit     = 12
)

// ResolveOptions tune a single resolution call.
type ResolveOptions struct {
	Limit    int
	Category string
}

// Searcher is the resolution contract consumed by the lesson builder and
// the search proxy route.
type Searcher interface {
	Resolve(title string, opts ResolveOptions) ([]VideoRecord, error)
}

// Resolver walks an ordered provider cascade: the first provider returning a
// non-empty, well-formed result wins; partial results are never merged
// across providers. A fixed catalog backs the cascade so the result is
// never empty.
type Resolver struct {
	providers []SearchProvider
	fallback  SearchProvider
}

func NewResolver(providers ...SearchProvider) *Resolver {
	return &Resolver{
		providers: providers,
		fallback:  NewCatalogProvider(),
	}
}

// NewDefaultResolver wires the standard cascade against the configured
// Piped and Invidious endpoints.
func NewDefaultResolver(pipedURL, invidiousURL string, timeout time.Duration) *Resolver {
	client := &http.Client{Timeout: timeout}
	return NewResolver(
		NewPipedProvider(pipedURL, client),
		NewInvidiousProvider(invidiousURL, client),
	)
}

func (r *Resolver) Resolve(title string, opts ResolveOptions) ([]VideoRecord, error) {
	title = strings.TrimSpace(title)
	if len(title) < 2 {
		return nil, errors.New("search title must be at least 2 characters")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	query := buildQuery(title, opts.Category)

	for _, provider := range r.providers {
		records, err := provider.Search(query, limit)
		if err != nil {
			utilities.Warn("video provider %s failed for %q: %v", provider.Name(), query, err)
			continue
		}
		if len(records) == 0 {
			utilities.Warn("video provider %s returned no results for %q", provider.Name(), query)
			continue
		}
		return normalize(records, limit), nil
	}

	utilities.Info("all video providers failed for %q, using catalog fallback", query)
	records, _ := r.fallback.Search(query, limit)
	return normalize(records, limit), nil
}

// buildQuery biases the search toward instructional content: the category
// hint is folded in when the title doesn't already carry it, and "tutorial"
// is appended when absent.
func buildQuery(title, category string) string {
	query := title
	if category != "" && !strings.Contains(strings.ToLower(title), strings.ToLower(category)) {
		query += " " + category
	}
	if !strings.Contains(strings.ToLower(query), "tutorial") {
		query += " tutorial"
	}
	return query
}

func normalize(records []VideoRecord, limit int) []VideoRecord {
	if len(records) > limit {
		records = records[:limit]
	}
	for i := range records {
		if records[i].Thumbnail == "" && records[i].ID != "" {
			records[i].Thumbnail = DefaultThumbnail(records[i].ID)
		}
	}
	return records
}

// DefaultThumbnail derives the predictable CDN thumbnail for a video id.
func DefaultThumbnail(videoID string) string {
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", videoID)
}
