package config

import (
	"strconv"
	"time"

	"github.com/gobuffalo/envy"
)

type Config struct {
	ProjectID     string
	Port          string
	LogLevel      string
	RenderTimeout time.Duration
}

// New reads configuration from the environment. envy also picks up a local
// .env file, which is how the service is configured in development.
func New() *Config {
	return &Config{
		ProjectID:     envy.Get("PROJECTID", ""),
		Port:          envy.Get("PORT", "8080"),
		LogLevel:      envy.Get("LOGLEVEL", "info"),
		RenderTimeout: getRenderTimeout(envy.Get("RENDERTIMEOUT", "10")),
	}
}

// getRenderTimeout interprets the value as whole seconds. Anything
// unparseable or non-positive falls back to 10s.
func getRenderTimeout(raw string) time.Duration {
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		secs = 10
	}
	return time.Duration(secs) * time.Second
}
