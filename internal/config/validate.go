package config

import (
	"log"
	"sort"
)

// Validate checks the config for unrecognized fields and risky settings,
// logging warnings instead of failing the load.
func Validate(cfg *ProxyConfig) {
	warnOverflow("config", cfg.Overflow)
	warnOverflow("general_settings", cfg.GeneralSettings.Overflow)
	warnOverflow("upstream", cfg.Upstream.Overflow)
	warnOverflow("upstream.gemini", cfg.Upstream.Gemini.Overflow)
	warnOverflow("upstream.youtube", cfg.Upstream.YouTube.Overflow)

	if cfg.GeneralSettings.LicenseTokens == "" && !cfg.GeneralSettings.DevMode {
		log.Printf("[WARNING] no license tokens configured — all requests will be rejected")
	}
	if cfg.Upstream.Gemini.APIKey == "" {
		log.Printf("[WARNING] gemini api key not configured — /v1/ai/command will return 500")
	}
	if cfg.Upstream.YouTube.APIKey == "" {
		log.Printf("[WARNING] youtube api key not configured — /v1/search/youtube will return 500")
	}
}

func warnOverflow(section string, overflow map[string]any) {
	if len(overflow) == 0 {
		return
	}
	keys := make([]string, 0, len(overflow))
	for k := range overflow {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		log.Printf("[WARNING] Unrecognized config field %s.%s — field will be ignored", section, k)
	}
}
