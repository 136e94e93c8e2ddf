package video

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// invidiousProvider queries an Invidious instance's v1 search API.
type invidiousProvider struct {
	baseURL string
	client  *http.Client
}

func NewInvidiousProvider(baseURL string, client *http.Client) SearchProvider {
	return &invidiousProvider{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (p *invidiousProvider) Name() string { return "invidious" }

type invidiousSearchItem struct {
	VideoID         string `json:"videoId"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	VideoThumbnails []struct {
		Quality string `json:"quality"`
		URL     string `json:"url"`
	} `json:"videoThumbnails"`
	LengthSeconds int   `json:"lengthSeconds"`
	ViewCount     int64 `json:"viewCount"`
}

func (p *invidiousProvider) Search(query string, limit int) ([]VideoRecord, error) {
	endpoint := fmt.Sprintf("%s/api/v1/search?q=%s&type=video", p.baseURL, url.QueryEscape(query))

	resp, err := p.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invidious request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invidious returned status %d", resp.StatusCode)
	}

	var items []invidiousSearchItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("invidious response malformed: %w", err)
	}

	var records []VideoRecord
	for _, item := range items {
		if item.VideoID == "" {
			continue
		}
		records = append(records, VideoRecord{
			ID:              item.VideoID,
			Title:           item.Title,
			ChannelTitle:    item.Author,
			Thumbnail:       bestThumbnail(item),
			DurationSeconds: item.LengthSeconds,
			ViewCount:       item.ViewCount,
		})
		if len(records) >= limit {
			break
		}
	}
	return records, nil
}

func bestThumbnail(item invidiousSearchItem) string {
	for _, t := range item.VideoThumbnails {
		if t.Quality == "high" {
			return t.URL
		}
	}
	if len(item.VideoThumbnails) > 0 {
		return item.VideoThumbnails[0].URL
	}
	return ""
}
