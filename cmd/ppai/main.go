package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/SpCohen93/PPai-Backend/internal/config"
	"github.com/SpCohen93/PPai-Backend/internal/license"
	"github.com/SpCohen93/PPai-Backend/internal/proxy"
	"github.com/SpCohen93/PPai-Backend/internal/proxy/handler"
	"github.com/SpCohen93/PPai-Backend/internal/upstream/gemini"

	// Search providers (self-register via init())
	_ "github.com/SpCohen93/PPai-Backend/internal/search"
)

func main() {
	configPath := flag.String("config", "ppai_config.yaml", "path to proxy config YAML")
	flag.Parse()

	// Optional .env for local development; env vars win over YAML either way
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	whitelist := license.NewWhitelist(cfg.GeneralSettings.LicenseTokens, cfg.GeneralSettings.DevMode)
	log.Printf("license whitelist: %d token(s), dev_mode=%v", whitelist.Len(), cfg.GeneralSettings.DevMode)

	geminiClient := gemini.New(
		cfg.Upstream.Gemini.APIKey,
		cfg.Upstream.Gemini.APIBase,
		cfg.Upstream.Gemini.Model,
	)

	srv := proxy.NewServer(proxy.ServerConfig{
		Handlers:  handler.New(cfg, geminiClient),
		Whitelist: whitelist,
	})

	addr := fmt.Sprintf(":%d", cfg.GeneralSettings.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("ppai backend listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
