package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SpCohen93/PPai-Backend/internal/model"
)

func init() {
	Register("youtube", &YouTube{})
}

// YouTube implements Provider for the YouTube Data API v3 search endpoint.
type YouTube struct{}

func (y *YouTube) Name() string       { return "youtube" }
func (y *YouTube) HTTPMethod() string { return http.MethodGet }

func (y *YouTube) DefaultAPIBase() string {
	return "https://www.googleapis.com/youtube/v3"
}

func (y *YouTube) ValidateEnvironment(apiKey, apiBase string) (http.Header, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: API key required")
	}
	h := http.Header{}
	h.Set("Accept", "application/json")
	return h, nil
}

func (y *YouTube) GetCompleteURL(apiBase, apiKey string, params Params) string {
	if apiBase == "" {
		apiBase = y.DefaultAPIBase()
	}

	num := params.MaxResults
	if num <= 0 || num > 10 {
		num = 10
	}

	v := url.Values{}
	v.Set("part", "snippet")
	v.Set("type", "video")
	v.Set("maxResults", fmt.Sprintf("%d", num))
	v.Set("q", params.Query)
	v.Set("key", apiKey)
	return apiBase + "/search?" + v.Encode()
}

func (y *YouTube) TransformRequest(_ Params) any { return nil }

func (y *YouTube) TransformResponse(body []byte) (*model.SearchResponse, error) {
	var raw struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title        string `json:"title"`
				ChannelTitle string `json:"channelTitle"`
				Thumbnails   struct {
					Default *thumbnail `json:"default"`
					Medium  *thumbnail `json:"medium"`
					High    *thumbnail `json:"high"`
				} `json:"thumbnails"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("youtube: parse response: %w", err)
	}

	results := make([]model.VideoResult, 0, len(raw.Items))
	for _, item := range raw.Items {
		results = append(results, model.VideoResult{
			Title:   item.Snippet.Title,
			URL:     "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Channel: item.Snippet.ChannelTitle,
			Thumbnails: model.Thumbnails{
				Default: thumbnailURL(item.Snippet.Thumbnails.Default),
				Medium:  thumbnailURL(item.Snippet.Thumbnails.Medium),
				High:    thumbnailURL(item.Snippet.Thumbnails.High),
			},
		})
	}
	return &model.SearchResponse{Results: results}, nil
}

type thumbnail struct {
	URL string `json:"url"`
}

func thumbnailURL(t *thumbnail) *string {
	if t == nil || t.URL == "" {
		return nil
	}
	return &t.URL
}
