package video

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// pipedProvider queries a Piped instance's search API.
type pipedProvider struct {
	baseURL string
	client  *http.Client
}

func NewPipedProvider(baseURL string, client *http.Client) SearchProvider {
	return &pipedProvider{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (p *pipedProvider) Name() string { return "piped" }

type pipedSearchResponse struct {
	Items []struct {
		URL          string `json:"url"` // "/watch?v=<id>"
		Title        string `json:"title"`
		Thumbnail    string `json:"thumbnail"`
		UploaderName string `json:"uploaderName"`
		Duration     int    `json:"duration"`
		Views        int64  `json:"views"`
	} `json:"items"`
}

func (p *pipedProvider) Search(query string, limit int) ([]VideoRecord, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&filter=videos", p.baseURL, url.QueryEscape(query))

	resp, err := p.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("piped request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("piped returned status %d", resp.StatusCode)
	}

	var parsed pipedSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("piped response malformed: %w", err)
	}

	var records []VideoRecord
	for _, item := range parsed.Items {
		id := videoIDFromWatchURL(item.URL)
		if id == "" {
			continue
		}
		records = append(records, VideoRecord{
			ID:              id,
			Title:           item.Title,
			ChannelTitle:    item.UploaderName,
			Thumbnail:       item.Thumbnail,
			DurationSeconds: item.Duration,
			ViewCount:       item.Views,
		})
		if len(records) >= limit {
			break
		}
	}
	return records, nil
}

// videoIDFromWatchURL extracts the id from a "/watch?v=<id>" path.
func videoIDFromWatchURL(watchURL string) string {
	parsed, err := url.Parse(watchURL)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("v")
}
