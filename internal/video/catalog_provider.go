package video

// catalogProvider is the deterministic last resort: a fixed set of
// known-good general programming videos, so resolution never comes back
// empty even under total provider failure.
type catalogProvider struct{}

func NewCatalogProvider() SearchProvider {
	return &catalogProvider{}
}

func (p *catalogProvider) Name() string { return "catalog" }

var fallbackCatalog = []VideoRecord{
	{
		ID:              "zOjov-2OZ0E",
		Title:           "Introduction to Programming and Computer Science - Full Course",
		ChannelTitle:    "freeCodeCamp.org",
		DurationSeconds: 6652,
		ViewCount:       3200000,
	},
	{
		ID:              "PkZNo7MFNFg",
		Title:           "Learn JavaScript - Full Course for Beginners",
		ChannelTitle:    "freeCodeCamp.org",
		DurationSeconds: 12137,
		ViewCount:       18000000,
	},
	{
		ID:              "rfscVS0vtbw",
		Title:           "Learn Python - Full Course for Beginners",
		ChannelTitle:    "freeCodeCamp.org",
		DurationSeconds: 16093,
		ViewCount:       46000000,
	},
	{
		ID:              "mU6anWqZJcc",
		Title:           "Learn Web Development - Full Course for Beginners",
		ChannelTitle:    "freeCodeCamp.org",
		DurationSeconds: 7453,
		ViewCount:       5100000,
	},
}

func (p *catalogProvider) Search(query string, limit int) ([]VideoRecord, error) {
	if limit > len(fallbackCatalog) {
		limit = len(fallbackCatalog)
	}
	records := make([]VideoRecord, limit)
	copy(records, fallbackCatalog[:limit])
	return records, nil
}
