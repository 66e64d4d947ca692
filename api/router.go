package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"greeter/config"
)

// RouterParams defines the dependencies for the router.
type RouterParams struct {
	fx.In

	// Config is the global application config
	Config config.Config

	// Log is the logger to use for the router
	Log *zap.Logger
}

// Router resolves a request to exactly one of three outcomes: the
// handler registered for the (method, path) pair, a method-not-allowed
// envelope when the path is known but the method is not, or a
// not-found envelope when the path is unknown.
type Router struct {
	// routes maps path -> method -> handler
	routes map[string]map[string]HandlerFunc

	debug bool

	log *zap.Logger
}

var _ Handler = (*Router)(nil)

// NewRouter creates a router with the service routes registered.
func NewRouter(params RouterParams) *Router {
	r := &Router{
		routes: make(map[string]map[string]HandlerFunc),
		debug:  params.Config.Debug,
		log:    params.Log,
	}

	r.Register(http.MethodGet, "/hello", HelloHandler())
	r.Register(http.MethodGet, "/health", HealthHandler(params.Config.Service))

	return r
}

// HasRoute reports whether any handler is registered for the path.
func (r *Router) HasRoute(path string) bool {
	_, ok := r.routes[path]
	return ok
}

// Register adds a handler for an exact (method, path) pair. The route
// table is populated at construction and read-only afterwards, so
// concurrent dispatches need no locking.
func (r *Router) Register(method, path string, handler HandlerFunc) {
	methods, ok := r.routes[path]
	if !ok {
		methods = make(map[string]HandlerFunc)
		r.routes[path] = methods
	}

	methods[method] = handler
}

// Handle resolves a request against the route table. Matching is
// exact-string on the path, there is no pattern matching. Panics from
// handlers are recovered here and converted to the 500 envelope; the
// detail is logged and reported, never sent to the client unless debug
// mode is on.
func (r *Router) Handle(ctx context.Context, req Request) (res Response) {
	log := r.log.With(
		zap.String("path", req.Path),
		zap.String("method", req.Method),
	)

	defer func() {
		if rec := recover(); rec != nil {
			err := recoveredError(rec)
			log.Error("handler panicked", zap.Error(err), zap.Stack("stack"))
			sentry.CaptureException(err)
			res = newInternalErrorResponse(err, r.debug)
		}
	}()

	methods, ok := r.routes[req.Path]
	if !ok {
		log.Debug("no route matched")
		return newNotFoundResponse(req)
	}

	handler, ok := methods[req.Method]
	if !ok {
		log.Debug("method not allowed")
		return newMethodNotAllowedResponse(req)
	}

	return handler(ctx)
}

func recoveredError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}

	return fmt.Errorf("panic: %v", v)
}
