package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"greeter/config"
	"greeter/util"
)

// helloBody is marshalled once, repeated /hello responses are
// byte-identical.
var helloBody = util.Must(json.Marshal(map[string]string{
	"message": "Hello world",
}))

// HelloHandler returns the greeting handler. It consumes no input and
// has no failure modes.
func HelloHandler() HandlerFunc {
	return func(context.Context) Response {
		return newResponse(http.StatusOK, helloBody)
	}
}

type healthBody struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// HealthHandler returns the health-check handler. The timestamp is
// captured on every call, never cached.
func HealthHandler(service config.ServiceConfig) HandlerFunc {
	return func(context.Context) Response {
		body := util.Must(json.Marshal(healthBody{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Service:   service.Name,
			Version:   service.Version,
		}))

		return newResponse(http.StatusOK, body)
	}
}
