package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"greeter/api"
	"greeter/config"
	"greeter/handler"
)

func newTestHandler(t *testing.T) *handler.ApiHandler {
	cfg := config.Config{
		Service: config.ServiceConfig{
			Name:    "greeter",
			Version: "1.0.0",
		},
		Cors: config.CorsConfig{
			Origins: []string{"http://localhost:3000"},
			Methods: []string{"GET", "OPTIONS"},
			Headers: []string{"Content-Type"},
			MaxAge:  86400,
		},
	}

	router := api.NewRouter(api.RouterParams{
		Config: cfg,
		Log:    zaptest.NewLogger(t),
	})

	return handler.NewApiHandler(handler.ApiHandlerParams{
		Handler: router,
		Config:  cfg,
		Log:     zaptest.NewLogger(t),
	})
}

func doRequest(t *testing.T, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rec, req)

	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	require.NoError(t, err)

	return body
}

func TestApiHandler_Hello(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/hello", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"message":"Hello world"}`, rec.Body.String())
}

func TestApiHandler_Hello_QueryStringIgnored(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/hello?name=world", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Hello world"}`, rec.Body.String())
}

func TestApiHandler_Health(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	body := parseBody(t, rec)
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "greeter", body["service"])
}

func TestApiHandler_MethodNotAllowed(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/hello", nil)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestApiHandler_NotFound(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/nope", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)

	body := parseBody(t, rec)
	require.Equal(t, "/nope", body["path"])
	require.Equal(t, http.MethodGet, body["method"])
}

func TestApiHandler_SecurityHeaders(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/hello", nil)

	header := rec.Header()
	require.Equal(t, "nosniff", header.Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", header.Get("X-Frame-Options"))
	require.Equal(t, "1; mode=block", header.Get("X-XSS-Protection"))
	require.Equal(t, "strict-origin-when-cross-origin", header.Get("Referrer-Policy"))
	require.Equal(t, "no-cache, no-store, must-revalidate", header.Get("Cache-Control"))
	require.Equal(t, "no-cache", header.Get("Pragma"))
	require.Equal(t, "0", header.Get("Expires"))
}

func TestApiHandler_CorsPreflight(t *testing.T) {
	rec := doRequest(t, http.MethodOptions, "/hello", http.Header{
		"Origin":                        []string{"http://localhost:3000"},
		"Access-Control-Request-Method": []string{"GET"},
	})

	require.Equal(t, http.StatusNoContent, rec.Code)

	header := rec.Header()
	require.Equal(t, "http://localhost:3000", header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "GET, OPTIONS", header.Get("Access-Control-Allow-Methods"))
	require.Equal(t, "86400", header.Get("Access-Control-Max-Age"))
}

func TestApiHandler_OptionsUnknownPath(t *testing.T) {
	rec := doRequest(t, http.MethodOptions, "/nope", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)

	body := parseBody(t, rec)
	require.Equal(t, "/nope", body["path"])
	require.Equal(t, http.MethodOptions, body["method"])
}

func TestApiHandler_CorsPreflightUnknownPath(t *testing.T) {
	rec := doRequest(t, http.MethodOptions, "/nope", http.Header{
		"Origin":                        []string{"http://localhost:3000"},
		"Access-Control-Request-Method": []string{"GET"},
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "/nope", parseBody(t, rec)["path"])
}

func TestApiHandler_OptionsWithoutPreflightHeaders(t *testing.T) {
	rec := doRequest(t, http.MethodOptions, "/hello", nil)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, http.MethodOptions, parseBody(t, rec)["method"])
}

func TestApiHandler_CorsDisallowedOrigin(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/hello", http.Header{
		"Origin": []string{"http://evil.example.com"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestApiHandler_CorsAllowedOrigin(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/hello", http.Header{
		"Origin": []string{"http://localhost:3000"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Values("Vary"), "Origin")
}
