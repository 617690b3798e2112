// Package license implements the bearer-token whitelist guarding the proxy.
//
// The whitelist is loaded once at process start from a comma-separated
// configuration value and is immutable for the process lifetime. There is no
// expiry, revocation, or rate limiting.
package license

import (
	"log"
	"strings"
)

// Failure reasons returned to clients in 401 bodies.
const (
	ReasonMissingToken = "Missing authorization token"
	ReasonInvalidToken = "Invalid license token"
)

// CheckResult is the outcome of validating a single request's token.
type CheckResult struct {
	Valid  bool
	Reason string
}

// ExtractToken parses an Authorization header value. The header must be
// exactly two space-separated fields with the first equal to the literal
// scheme "Bearer"; any other shape yields no token.
func ExtractToken(headerValue string) (string, bool) {
	parts := strings.Split(headerValue, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// Whitelist is the immutable set of valid license tokens.
type Whitelist struct {
	tokens  map[string]struct{}
	ordered []string
	devMode bool
}

// NewWhitelist parses a comma-separated token list, trimming each entry and
// dropping empties. When the resulting list is empty and devMode is set, all
// validation passes unconditionally; the bypass is logged here once rather
// than per request.
func NewWhitelist(csv string, devMode bool) *Whitelist {
	wl := &Whitelist{
		tokens:  make(map[string]struct{}),
		devMode: devMode,
	}
	for _, raw := range strings.Split(csv, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if _, dup := wl.tokens[token]; dup {
			continue
		}
		wl.tokens[token] = struct{}{}
		wl.ordered = append(wl.ordered, token)
	}
	if len(wl.ordered) == 0 && devMode {
		log.Printf("[WARNING] license whitelist is empty and dev mode is enabled — all tokens will be accepted")
	}
	return wl
}

// Len returns the number of whitelisted tokens.
func (wl *Whitelist) Len() int {
	return len(wl.ordered)
}

// Tokens returns the whitelisted tokens in configuration order.
func (wl *Whitelist) Tokens() []string {
	out := make([]string, len(wl.ordered))
	copy(out, wl.ordered)
	return out
}

// Validate checks a token against the whitelist. The dev-mode bypass applies
// only when the whitelist is empty AND dev mode was explicitly enabled; an
// empty whitelist without the flag fails closed.
func (wl *Whitelist) Validate(token string, hasToken bool) CheckResult {
	if len(wl.ordered) == 0 && wl.devMode {
		return CheckResult{Valid: true}
	}
	if !hasToken {
		return CheckResult{Valid: false, Reason: ReasonMissingToken}
	}
	if _, ok := wl.tokens[token]; ok {
		return CheckResult{Valid: true}
	}
	return CheckResult{Valid: false, Reason: ReasonInvalidToken}
}
