package video

// VideoRecord is the normalized shape every provider's response is mapped
// into before leaving this package.
type VideoRecord struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	ChannelTitle    string `json:"channel_title,omitempty"`
	Thumbnail       string `json:"thumbnail"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	ViewCount       int64  `json:"view_count,omitempty"`
}

// SearchProvider is one step of the resolution cascade. Implementations own
// their request shape and response schema; the resolver only sees records.
type SearchProvider interface {
	Name() string
	Search(query string, limit int) ([]VideoRecord, error)
}
