package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"greeter/api"
	"greeter/config"
)

func newTestRouter(t *testing.T, debug bool) *api.Router {
	cfg := config.Config{
		Debug: debug,
		Service: config.ServiceConfig{
			Name:    "greeter",
			Version: "1.0.0",
		},
	}

	return api.NewRouter(api.RouterParams{
		Config: cfg,
		Log:    zaptest.NewLogger(t),
	})
}

func createRequest(method, path string, header http.Header) api.Request {
	return api.Request{
		Method: method,
		Path:   path,
		Header: header,
	}
}

func parseBody(t *testing.T, resp api.Response) map[string]any {
	var body map[string]any
	err := json.Unmarshal(resp.Body, &body)
	require.NoError(t, err)

	return body
}

func TestRouter_Hello(t *testing.T) {
	router := newTestRouter(t, false)

	resp := router.Handle(context.Background(), createRequest(http.MethodGet, "/hello", nil))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.JSONEq(t, `{"message":"Hello world"}`, string(resp.Body))
}

func TestRouter_Hello_IgnoresHeaders(t *testing.T) {
	router := newTestRouter(t, false)

	plain := router.Handle(context.Background(), createRequest(http.MethodGet, "/hello", nil))
	decorated := router.Handle(context.Background(), createRequest(http.MethodGet, "/hello", http.Header{
		"X-Request-Id": []string{"abc"},
		"Accept":       []string{"text/html"},
	}))

	require.Equal(t, plain.Body, decorated.Body)
}

func TestRouter_Hello_Idempotent(t *testing.T) {
	router := newTestRouter(t, false)

	first := router.Handle(context.Background(), createRequest(http.MethodGet, "/hello", nil))
	second := router.Handle(context.Background(), createRequest(http.MethodGet, "/hello", nil))

	require.Equal(t, first.Body, second.Body)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, false)

	resp := router.Handle(context.Background(), createRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body := parseBody(t, resp)
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "greeter", body["service"])
	require.Equal(t, "1.0.0", body["version"])

	_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
	require.NoError(t, err)
}

func TestRouter_Health_TimestampAdvances(t *testing.T) {
	router := newTestRouter(t, false)

	first := parseBody(t, router.Handle(context.Background(), createRequest(http.MethodGet, "/health", nil)))
	second := parseBody(t, router.Handle(context.Background(), createRequest(http.MethodGet, "/health", nil)))

	t1, err := time.Parse(time.RFC3339, first["timestamp"].(string))
	require.NoError(t, err)
	t2, err := time.Parse(time.RFC3339, second["timestamp"].(string))
	require.NoError(t, err)

	require.False(t, t2.Before(t1))
}

func TestRouter_HasRoute(t *testing.T) {
	router := newTestRouter(t, false)

	require.True(t, router.HasRoute("/hello"))
	require.True(t, router.HasRoute("/health"))
	require.False(t, router.HasRoute("/nope"))
}

func TestRouter_NotFound(t *testing.T) {
	router := newTestRouter(t, false)

	resp := router.Handle(context.Background(), createRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body := parseBody(t, resp)
	require.Equal(t, float64(http.StatusNotFound), body["status"])
	require.Equal(t, "Not Found", body["error"])
	require.Equal(t, "/nope", body["path"])
	require.Equal(t, http.MethodGet, body["method"])
	require.NotEmpty(t, body["message"])
	require.NotEmpty(t, body["timestamp"])
}

func TestRouter_NotFound_AnyMethod(t *testing.T) {
	router := newTestRouter(t, false)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		resp := router.Handle(context.Background(), createRequest(method, "/nope", nil))

		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, method, parseBody(t, resp)["method"])
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, false)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		for _, path := range []string{"/hello", "/health"} {
			resp := router.Handle(context.Background(), createRequest(method, path, nil))

			require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

			body := parseBody(t, resp)
			require.Equal(t, float64(http.StatusMethodNotAllowed), body["status"])
			require.Equal(t, "Method Not Allowed", body["error"])
			require.Equal(t, path, body["path"])
			require.Equal(t, method, body["method"])
		}
	}
}

func TestRouter_PanicRecovery(t *testing.T) {
	router := newTestRouter(t, false)

	router.Register(http.MethodGet, "/boom", func(context.Context) api.Response {
		panic("kaboom")
	})

	resp := router.Handle(context.Background(), createRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := parseBody(t, resp)
	require.Equal(t, float64(http.StatusInternalServerError), body["status"])
	require.Equal(t, "Internal Server Error", body["error"])
	require.Equal(t, "An internal server error occurred", body["message"])
	require.NotContains(t, string(resp.Body), "kaboom")
	require.NotContains(t, body, "path")

	// the router keeps serving after a handler panic
	resp = router.Handle(context.Background(), createRequest(http.MethodGet, "/hello", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_PanicRecovery_Debug(t *testing.T) {
	router := newTestRouter(t, true)

	router.Register(http.MethodGet, "/boom", func(context.Context) api.Response {
		panic("kaboom")
	})

	resp := router.Handle(context.Background(), createRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Contains(t, parseBody(t, resp)["message"], "kaboom")
}
