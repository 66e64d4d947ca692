package handler

import (
	"greeter/internal/server"
)

// NewRootRoute mounts the adapter at the mux root, so every request
// goes through the api router and unmatched paths get the router's
// not-found envelope instead of the mux default.
func NewRootRoute(handler *ApiHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}
