package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort        = 8787
	defaultGeminiBase  = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel = "gemini-1.5-flash"
	defaultYouTubeBase = "https://www.googleapis.com/youtube/v3"
)

// Load reads a ppai_config.yaml file and returns a ProxyConfig with all
// environment variables resolved. A missing file is not an error: the proxy
// can run on environment variables alone.
func Load(path string) (*ProxyConfig, error) {
	var cfg ProxyConfig

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvironmentVariables(&cfg)
	resolveEnvVars(&cfg)
	overlayEnv(&cfg)
	setDefaults(&cfg)
	Validate(&cfg)

	return &cfg, nil
}

// applyEnvironmentVariables sets OS env vars from the config's
// environment_variables section.
func applyEnvironmentVariables(cfg *ProxyConfig) {
	for k, v := range cfg.EnvironmentVariables {
		os.Setenv(k, ResolveEnvVar(v))
	}
}

func resolveEnvVars(cfg *ProxyConfig) {
	cfg.GeneralSettings.LicenseTokens = ResolveEnvVar(cfg.GeneralSettings.LicenseTokens)
	cfg.Upstream.Gemini.APIKey = ResolveEnvVar(cfg.Upstream.Gemini.APIKey)
	cfg.Upstream.Gemini.APIBase = ResolveEnvVar(cfg.Upstream.Gemini.APIBase)
	cfg.Upstream.YouTube.APIKey = ResolveEnvVar(cfg.Upstream.YouTube.APIKey)
	cfg.Upstream.YouTube.APIBase = ResolveEnvVar(cfg.Upstream.YouTube.APIBase)
}

// overlayEnv lets direct environment variables override YAML values.
func overlayEnv(cfg *ProxyConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.GeneralSettings.Port = port
		}
	}
	if v := os.Getenv("PPAI_DEV_MODE"); v != "" {
		cfg.GeneralSettings.DevMode = v == "true" || v == "1"
	}
	if v := os.Getenv("LICENSE_TOKENS"); v != "" {
		cfg.GeneralSettings.LicenseTokens = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Upstream.Gemini.APIKey = v
	}
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		cfg.Upstream.YouTube.APIKey = v
	}
}

func setDefaults(cfg *ProxyConfig) {
	if cfg.GeneralSettings.Port == 0 {
		cfg.GeneralSettings.Port = defaultPort
	}
	if cfg.Upstream.Gemini.APIBase == "" {
		cfg.Upstream.Gemini.APIBase = defaultGeminiBase
	}
	if cfg.Upstream.Gemini.Model == "" {
		cfg.Upstream.Gemini.Model = defaultGeminiModel
	}
	if cfg.Upstream.YouTube.APIBase == "" {
		cfg.Upstream.YouTube.APIBase = defaultYouTubeBase
	}
}
