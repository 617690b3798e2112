package search

import (
	"net/http"

	"github.com/SpCohen93/PPai-Backend/internal/model"
)

// Provider defines the interface for video-search provider implementations.
// Each provider translates between the proxy's search contract and a specific
// upstream API.
type Provider interface {
	// Name returns the provider identifier (e.g. "youtube").
	Name() string

	// HTTPMethod returns "GET" or "POST" for the upstream API.
	HTTPMethod() string

	// ValidateEnvironment checks required credentials and returns request headers.
	ValidateEnvironment(apiKey, apiBase string) (http.Header, error)

	// GetCompleteURL builds the full upstream URL from base URL, server-held
	// API key, and query params.
	GetCompleteURL(apiBase, apiKey string, params Params) string

	// TransformRequest builds the upstream request body (for POST providers).
	// Returns nil for GET providers that use query params only.
	TransformRequest(params Params) any

	// TransformResponse parses the upstream response into the client-facing shape.
	TransformResponse(body []byte) (*model.SearchResponse, error)

	// DefaultAPIBase returns the default upstream URL for this provider.
	DefaultAPIBase() string
}

// Params holds the normalized search parameters from the incoming request.
type Params struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}
