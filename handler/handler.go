package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"greeter/api"
	"greeter/config"
)

// ApiHandlerParams defines the dependencies for the http adapter.
type ApiHandlerParams struct {
	fx.In

	Handler api.Handler
	Config  config.Config
	Log     *zap.Logger
}

func NewApiHandler(params ApiHandlerParams) *ApiHandler {
	return &ApiHandler{
		handler: params.Handler,
		cors:    params.Config.Cors,
		log:     params.Log,
	}
}

// ApiHandler adapts the api handler to net/http. It converts the
// request, dispatches, and writes the response along with the security
// and cors headers every response carries.
type ApiHandler struct {
	handler api.Handler
	cors    config.CorsConfig
	log     *zap.Logger
}

// RouteChecker is implemented by handlers that can report whether a
// path is registered.
type RouteChecker interface {
	HasRoute(path string) bool
}

func (h *ApiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	h.writeCorsHeaders(w, r)

	// answer cors preflight for registered paths at the adapter; any
	// other OPTIONS request falls through to the router and gets its
	// not-found or method-not-allowed envelope
	if r.Method == http.MethodOptions && h.isPreflight(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	request := api.Request{
		Path:   r.URL.Path,
		Method: strings.ToUpper(r.Method),
		Header: r.Header,
	}

	response := h.handler.Handle(r.Context(), request)

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	writeSecurityHeaders(w.Header())

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		h.log.Debug("failed to write response", zap.Error(err))
	}

	h.log.Info("request handled",
		zap.String("method", request.Method),
		zap.String("path", request.Path),
		zap.Int("status", response.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
}

// isPreflight reports whether the request is a cors preflight for a
// path the dispatcher knows about.
func (h *ApiHandler) isPreflight(r *http.Request) bool {
	if r.Header.Get("Access-Control-Request-Method") == "" {
		return false
	}

	if !allowedOrigin(h.cors.Origins, r.Header.Get("Origin")) {
		return false
	}

	if checker, ok := h.handler.(RouteChecker); ok {
		return checker.HasRoute(r.URL.Path)
	}

	return true
}

func (h *ApiHandler) writeCorsHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" || !allowedOrigin(h.cors.Origins, origin) {
		return
	}

	header := w.Header()
	header.Set("Access-Control-Allow-Origin", origin)
	header.Set("Access-Control-Allow-Methods", strings.Join(h.cors.Methods, ", "))
	header.Set("Access-Control-Allow-Headers", strings.Join(h.cors.Headers, ", "))
	header.Set("Access-Control-Max-Age", strconv.Itoa(h.cors.MaxAge))
	header.Add("Vary", "Origin")
}

func allowedOrigin(origins []string, origin string) bool {
	for _, o := range origins {
		if o == origin {
			return true
		}
	}

	return false
}

func writeSecurityHeaders(header http.Header) {
	header.Set("X-Content-Type-Options", "nosniff")
	header.Set("X-Frame-Options", "DENY")
	header.Set("X-XSS-Protection", "1; mode=block")
	header.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")
}
