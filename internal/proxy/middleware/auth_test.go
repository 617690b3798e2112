package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpCohen93/PPai-Backend/internal/license"
	"github.com/SpCohen93/PPai-Backend/internal/model"
)

func guardedHandler(wl *license.Whitelist, called *bool) http.Handler {
	mw := NewLicenseMiddleware(wl)
	return mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}))
}

func TestLicenseMiddleware_MissingToken(t *testing.T) {
	called := false
	h := guardedHandler(license.NewWhitelist("tok-a", false), &called)

	req := httptest.NewRequest(http.MethodPost, "/v1/ai/command", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)

	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, model.CodeUnauthorized, body.Error)
	assert.Equal(t, "Missing authorization token", body.Message)
}

func TestLicenseMiddleware_InvalidToken(t *testing.T) {
	called := false
	h := guardedHandler(license.NewWhitelist("tok-a", false), &called)

	req := httptest.NewRequest(http.MethodPost, "/v1/ai/command", nil)
	req.Header.Set("Authorization", "Bearer tok-z")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)

	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Invalid license token", body.Message)
}

func TestLicenseMiddleware_ValidToken(t *testing.T) {
	called := false
	h := guardedHandler(license.NewWhitelist("tok-a,tok-b", false), &called)

	req := httptest.NewRequest(http.MethodPost, "/v1/ai/command", nil)
	req.Header.Set("Authorization", "Bearer tok-b")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
}

func TestLicenseMiddleware_DevModeBypass(t *testing.T) {
	called := false
	h := guardedHandler(license.NewWhitelist("", true), &called)

	req := httptest.NewRequest(http.MethodPost, "/v1/ai/command", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
}

func TestCORSMiddleware_StampsHeaders(t *testing.T) {
	mw := NewCORSMiddleware()
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/ai/command", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type, Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "POST, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSMiddleware_AnswersPreflight(t *testing.T) {
	mw := NewCORSMiddleware()
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler should not run for OPTIONS")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/ai/command", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
