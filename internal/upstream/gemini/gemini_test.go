package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpCohen93/PPai-Backend/internal/model"
)

func TestGenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "Hello, "}, {"text": "world"}]}, "finishReason": "STOP"}
			]
		}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "gemini-1.5-flash")
	text, err := c.GenerateText(context.Background(), "say hello")
	require.NoError(t, err)

	// Multi-part candidate text is concatenated
	assert.Equal(t, "Hello, world", text)
	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	contents := gotBody["contents"].([]any)
	require.Len(t, contents, 1)
	first := contents[0].(map[string]any)
	assert.Equal(t, "user", first["role"])
	parts := first["parts"].([]any)
	require.Len(t, parts, 1)
	assert.Equal(t, "say hello", parts[0].(map[string]any)["text"])
}

func TestGenerateText_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "quota exceeded", "status": "RESOURCE_EXHAUSTED", "code": 429}}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "gemini-1.5-flash")
	_, err := c.GenerateText(context.Background(), "hi")
	require.Error(t, err)

	var apiErr *model.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "quota exceeded", apiErr.Message)
	assert.Equal(t, "gemini", apiErr.Provider)
	assert.ErrorIs(t, err, model.ErrRateLimit)
}

func TestGenerateText_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "gemini-1.5-flash")
	_, err := c.GenerateText(context.Background(), "hi")
	require.Error(t, err)
}

func TestBuildURL_NoKey(t *testing.T) {
	c := New("", "https://example.com/v1beta", "gemini-1.5-flash")
	assert.Equal(t, "https://example.com/v1beta/models/gemini-1.5-flash:generateContent", c.buildURL("generateContent"))
}
