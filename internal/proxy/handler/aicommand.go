package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/SpCohen93/PPai-Backend/internal/model"
)

// AICommand handles POST /v1/ai/command. It forwards the user prompt to the
// generative-text upstream and wraps the plain-text answer as {"result": ...}.
func (h *Handlers) AICommand(w http.ResponseWriter, r *http.Request) {
	var req model.AICommandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, msgInvalidJSON)
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, msgMissingPrompt)
		return
	}

	if h.Config.Upstream.Gemini.APIKey == "" {
		serverError(w, model.CodeServerError, msgServerConfig,
			errors.New("gemini api key not configured"))
		return
	}

	text, err := h.Gemini.GenerateText(r.Context(), buildPrompt(prompt, req.Context))
	if err != nil {
		serverError(w, model.CodeUpstreamError, msgUpstreamFailed, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AICommandResponse{Result: text})
}

// buildPrompt prepends the JSON-serialized context object, when present, to
// the user prompt. The concatenation format is part of the client contract
// and is kept as-is.
func buildPrompt(prompt string, context map[string]any) string {
	if context == nil {
		return prompt
	}
	blob, err := json.Marshal(context)
	if err != nil {
		return prompt
	}
	return "Context: " + string(blob) + "\n\n" + prompt
}
