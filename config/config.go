package config

import "greeter/util/conf"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Debug controls whether internal error responses carry the
	// failure detail. Non-debug responses stay generic.
	Debug bool `conf:"debug"`

	// Service identifies the service in health responses
	Service ServiceConfig `conf:"service"`

	// Cors is the cross-origin resource sharing policy
	Cors CorsConfig `conf:"cors"`
}

// ServiceConfig is the identity reported by the health endpoint.
type ServiceConfig struct {
	Name    string `conf:"name"`
	Version string `conf:"version"`
}

// CorsConfig is the cross-origin policy applied by the http adapter.
// Origins is an exact-match allow list.
type CorsConfig struct {
	Origins []string `conf:"origins"`
	Methods []string `conf:"methods"`
	Headers []string `conf:"headers"`
	MaxAge  int      `conf:"max_age"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":       "info",
	"log_format":      "production",
	"debug":           false,
	"service.name":    "greeter",
	"service.version": "1.0.0",
	"cors.origins":    []string{"http://localhost:3000", "http://127.0.0.1:3000"},
	"cors.methods":    []string{"GET", "OPTIONS"},
	"cors.headers":    []string{"Content-Type", "Authorization", "X-Requested-With"},
	"cors.max_age":    86400,
}
