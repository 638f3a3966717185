// Package config loads application configuration from the environment, with
// optional .env file support for local development.
package config

import "time"

// Server holds the HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"5000"`
}

// RateLimit holds the boundary rate limiter settings.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1s"`
}

// App is the root application configuration.
type App struct {
	Env       string    `envconfig:"APP_ENV" default:"development"`
	LogLevel  string    `envconfig:"LOG_LEVEL" default:"info"`
	Server    Server    `envconfig:"SERVER"`
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
}
