package model

// AICommandRequest is the body of POST /v1/ai/command.
type AICommandRequest struct {
	Prompt  string         `json:"prompt"`
	Context map[string]any `json:"context,omitempty"`
}

// AICommandResponse wraps the generated text returned to the client.
type AICommandResponse struct {
	Result string `json:"result"`
}

// SearchRequest is the body of POST /v1/search/youtube.
type SearchRequest struct {
	Query string `json:"query"`
}

// Thumbnails holds thumbnail URLs at the three resolutions YouTube returns.
// Absent resolutions stay nil and marshal as JSON null; all three keys are
// always present on the wire.
type Thumbnails struct {
	Default *string `json:"default"`
	Medium  *string `json:"medium"`
	High    *string `json:"high"`
}

// VideoResult is a single shaped search result.
type VideoResult struct {
	Title      string     `json:"title"`
	URL        string     `json:"url"`
	Channel    string     `json:"channel"`
	Thumbnails Thumbnails `json:"thumbnails"`
}

// SearchResponse is the container for shaped search results.
type SearchResponse struct {
	Results []VideoResult `json:"results"`
}
