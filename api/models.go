package api

import (
	"context"
	"net/http"
)

// Request represents an incoming request. It lives for a single
// dispatch and is never shared between requests.
type Request struct {
	Path   string
	Method string
	Header http.Header
}

// Response represents an outgoing response. Each response carries
// exactly one status code and one body, and the Content-Type header
// matches the body serialization.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Handler is the interface for handling api requests. It is the single
// dispatch point: routing misses and handler panics are both resolved
// behind it, callers only ever see a Response.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

// HandlerFunc is the signature route handlers implement. Handlers
// consume no request input; everything they need is bound at
// registration time.
type HandlerFunc func(ctx context.Context) Response
