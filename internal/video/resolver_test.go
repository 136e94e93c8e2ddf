package video

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name    string
	records []VideoRecord
	err     error
	calls   int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Search(query string, limit int) ([]VideoRecord, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	if len(p.records) > limit {
		return p.records[:limit], nil
	}
	return p.records, nil
}

func stubRecords(n int) []VideoRecord {
	records := make([]VideoRecord, n)
	for i := range records {
		records[i] = VideoRecord{ID: fmt.Sprintf("vid-%d", i), Title: fmt.Sprintf("Video %d", i)}
	}
	return records
}

func TestResolveFirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", records: stubRecords(3)}
	second := &stubProvider{name: "second", records: stubRecords(3)}
	resolver := NewResolver(first, second)

	records, err := resolver.Resolve("go concurrency", ResolveOptions{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "vid-0", records[0].ID)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "second provider should not be consulted")
}

func TestResolveFallsThroughOnErrorAndEmpty(t *testing.T) {
	failing := &stubProvider{name: "failing", err: errors.New("boom")}
	empty := &stubProvider{name: "empty"}
	working := &stubProvider{name: "working", records: stubRecords(2)}
	resolver := NewResolver(failing, empty, working)

	records, err := resolver.Resolve("rust ownership", ResolveOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, empty.calls)
	assert.Equal(t, 1, working.calls)
}

func TestResolveNonEmptyGuarantee(t *testing.T) {
	// Every provider fails; the catalog must still produce results.
	resolver := NewResolver(
		&stubProvider{name: "a", err: errors.New("down")},
		&stubProvider{name: "b", err: errors.New("down")},
	)

	records, err := resolver.Resolve("sql", ResolveOptions{Limit: 4})
	require.NoError(t, err)
	assert.NotEmpty(t, records)
	for _, r := range records {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Thumbnail)
	}
}

func TestResolveProvidersTriedAtMostOnce(t *testing.T) {
	failing := &stubProvider{name: "failing", err: errors.New("down")}
	resolver := NewResolver(failing)

	_, err := resolver.Resolve("docker", ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, failing.calls)
}

func TestResolveRejectsShortTitle(t *testing.T) {
	resolver := NewResolver(&stubProvider{name: "any", records: stubRecords(1)})

	_, err := resolver.Resolve("  a ", ResolveOptions{})
	assert.Error(t, err)
}

func TestResolveLimitClamping(t *testing.T) {
	provider := &stubProvider{name: "big", records: stubRecords(20)}
	resolver := NewResolver(provider)

	records, err := resolver.Resolve("kubernetes", ResolveOptions{Limit: 50})
	require.NoError(t, err)
	assert.Len(t, records, MaxLimit)

	provider.records = stubRecords(20)
	records, err = resolver.Resolve("kubernetes", ResolveOptions{Limit: 0})
	require.NoError(t, err)
	assert.Len(t, records, DefaultLimit)
}

func TestResolveDefaultsThumbnail(t *testing.T) {
	provider := &stubProvider{name: "bare", records: []VideoRecord{{ID: "abc123"}}}
	resolver := NewResolver(provider)

	records, err := resolver.Resolve("git basics", ResolveOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", records[0].Thumbnail)
}

func TestBuildQuery(t *testing.T) {
	assert.Equal(t, "react hooks tutorial", buildQuery("react hooks", ""))
	assert.Equal(t, "React Tutorial for Beginners", buildQuery("React Tutorial for Beginners", ""))
	assert.Equal(t, "closures JavaScript tutorial", buildQuery("closures", "JavaScript"))
	assert.Equal(t, "JavaScript closures tutorial", buildQuery("JavaScript closures", "javascript"))
}

func TestVideoIDFromWatchURL(t *testing.T) {
	assert.Equal(t, "dQw4w9WgXcQ", videoIDFromWatchURL("/watch?v=dQw4w9WgXcQ"))
	assert.Equal(t, "", videoIDFromWatchURL("/playlist?list=PL123"))
}
