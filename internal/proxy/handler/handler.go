package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/SpCohen93/PPai-Backend/internal/config"
	"github.com/SpCohen93/PPai-Backend/internal/model"
)

// Client-visible messages. 500-class messages are deliberately generic;
// the diagnostic detail stays in server logs keyed by a reference id.
const (
	msgInvalidJSON    = "Invalid JSON in request body"
	msgMissingPrompt  = `Missing or invalid "prompt" field`
	msgMissingQuery   = `Missing or invalid "query" field`
	msgServerConfig   = "Server configuration error"
	msgUpstreamFailed = "Upstream request failed"
)

// TextGenerator is the generative-text upstream used by AICommand.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Handlers holds all HTTP handler dependencies. Everything here is read-only
// after construction; handlers share no mutable state across requests.
type Handlers struct {
	Config     *config.ProxyConfig
	Gemini     TextGenerator
	HTTPClient *http.Client
}

// New wires handlers with a default upstream HTTP client.
func New(cfg *config.ProxyConfig, gen TextGenerator) *Handlers {
	return &Handlers{
		Config: cfg,
		Gemini: gen,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// decodeJSON decodes the request body as JSON into v.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// serverError logs the real failure under a reference id and returns a
// generic 500 body that never leaks upstream or configuration detail.
func serverError(w http.ResponseWriter, code, publicMsg string, err error) {
	ref := uuid.NewString()
	log.Printf("server error ref=%s: %v", ref, err)
	writeError(w, http.StatusInternalServerError, code, publicMsg)
}
