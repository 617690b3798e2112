package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SpCohen93/PPai-Backend/internal/model"
	"github.com/SpCohen93/PPai-Backend/internal/search"
)

// YouTubeSearch handles POST /v1/search/youtube. It resolves the youtube
// search provider from the registry, forwards the query with the server-held
// key, and returns the shaped result list.
func (h *Handlers) YouTubeSearch(w http.ResponseWriter, r *http.Request) {
	var req model.SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, msgInvalidJSON)
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, msgMissingQuery)
		return
	}

	apiKey := h.Config.Upstream.YouTube.APIKey
	apiBase := h.Config.Upstream.YouTube.APIBase
	if apiKey == "" {
		serverError(w, model.CodeServerError, msgServerConfig,
			errors.New("youtube api key not configured"))
		return
	}

	provider, err := search.Get("youtube")
	if err != nil {
		serverError(w, model.CodeServerError, msgServerConfig, err)
		return
	}

	headers, err := provider.ValidateEnvironment(apiKey, apiBase)
	if err != nil {
		serverError(w, model.CodeServerError, msgServerConfig, err)
		return
	}

	params := search.Params{Query: query}
	upstreamURL := provider.GetCompleteURL(apiBase, apiKey, params)

	var upstreamReq *http.Request
	if provider.HTTPMethod() == http.MethodPost {
		reqBody := provider.TransformRequest(params)
		bodyBytes, _ := json.Marshal(reqBody)
		upstreamReq, err = http.NewRequestWithContext(r.Context(), http.MethodPost, upstreamURL, bytes.NewReader(bodyBytes))
	} else {
		upstreamReq, err = http.NewRequestWithContext(r.Context(), http.MethodGet, upstreamURL, nil)
	}
	if err != nil {
		serverError(w, model.CodeUpstreamError, msgUpstreamFailed, err)
		return
	}
	for k, vs := range headers {
		for _, v := range vs {
			upstreamReq.Header.Set(k, v)
		}
	}

	resp, err := h.HTTPClient.Do(upstreamReq)
	if err != nil {
		serverError(w, model.CodeUpstreamError, msgUpstreamFailed, err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		serverError(w, model.CodeUpstreamError, msgUpstreamFailed, err)
		return
	}

	if resp.StatusCode >= 400 {
		serverError(w, model.CodeUpstreamError, msgUpstreamFailed,
			fmt.Errorf("youtube upstream status %d: %s", resp.StatusCode, body))
		return
	}

	searchResp, err := provider.TransformResponse(body)
	if err != nil {
		serverError(w, model.CodeUpstreamError, msgUpstreamFailed, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResp)
}
