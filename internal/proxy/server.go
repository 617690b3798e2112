package proxy

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/SpCohen93/PPai-Backend/internal/license"
	"github.com/SpCohen93/PPai-Backend/internal/model"
	"github.com/SpCohen93/PPai-Backend/internal/proxy/handler"
	"github.com/SpCohen93/PPai-Backend/internal/proxy/middleware"
)

// Server holds dependencies for the HTTP proxy server.
type Server struct {
	Router            chi.Router
	Handlers          *handler.Handlers
	LicenseMiddleware func(http.Handler) http.Handler
}

// ServerConfig holds configuration for creating a new Server.
type ServerConfig struct {
	Handlers  *handler.Handlers
	Whitelist *license.Whitelist
}

// NewServer creates a chi router with all routes configured.
func NewServer(cfg ServerConfig) *Server {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)

	// CORS runs before routing so OPTIONS preflight and error responses
	// (401/405/500) all carry the fixed header set.
	r.Use(middleware.NewCORSMiddleware())

	s := &Server{
		Router:            r,
		Handlers:          cfg.Handlers,
		LicenseMiddleware: middleware.NewLicenseMiddleware(cfg.Whitelist),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.Router

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorBody(w, http.StatusNotFound, "not_found", "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorBody(w, http.StatusMethodNotAllowed, model.CodeMethodNotAllowed, "Method not allowed")
	})

	// Health endpoints (no auth)
	r.Get("/health", s.Handlers.HealthCheck)
	r.Get("/health/liveness", s.Handlers.HealthLiveness)

	// Proxy endpoints. The license guard is attached per-route so that a
	// wrong method yields 405 before any token inspection.
	r.Group(func(r chi.Router) {
		r.Use(s.LicenseMiddleware)
		r.Post("/v1/ai/command", s.Handlers.AICommand)
		r.Post("/v1/search/youtube", s.Handlers.YouTubeSearch)
	})
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Error: code, Message: message})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
