package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds the website configuration, read from the environment.
type Config struct {
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:""`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	Chat      ChatConfig
	Views     ViewsConfig
	RateLimit RateLimitConfig

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ChatConfig configures the embedded n8n chat widget.
type ChatConfig struct {
	// Webhook the widget posts messages to. Left empty, the widget itself
	// reports the problem in the browser.
	WebhookURL string `env:"N8N_WEBHOOK_URL"`

	ScriptURL string `env:"CHAT_WIDGET_SCRIPT_URL" envDefault:"https://cdn.jsdelivr.net/npm/@n8n/chat/dist/chat.bundle.es.js"`
	StyleURL  string `env:"CHAT_WIDGET_STYLE_URL" envDefault:"https://cdn.jsdelivr.net/npm/@n8n/chat/dist/style.css"`

	LoadPreviousSession bool `env:"CHAT_LOAD_PREVIOUS_SESSION" envDefault:"true"`
	EnableStreaming     bool `env:"CHAT_ENABLE_STREAMING" envDefault:"false"`
}

// ViewsConfig controls how long idle page views are kept.
type ViewsConfig struct {
	TTL           time.Duration `env:"VIEW_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"VIEW_SWEEP_INTERVAL" envDefault:"1m"`
}

// RateLimitConfig bounds interaction requests per page view.
type RateLimitConfig struct {
	RequestsPerMinute int `env:"VIEW_RATE_LIMIT_RPM" envDefault:"120"`
	Burst             int `env:"VIEW_RATE_LIMIT_BURST" envDefault:"20"`
}

// NewConfig parses the environment into a Config.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid WEBSITE_PORT %d", c.Port)
	}
	if c.Views.TTL <= 0 {
		return fmt.Errorf("VIEW_TTL must be positive, got %s", c.Views.TTL)
	}
	if c.Views.SweepInterval <= 0 {
		return fmt.Errorf("VIEW_SWEEP_INTERVAL must be positive, got %s", c.Views.SweepInterval)
	}
	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("view rate limit must be positive, got %d/min burst %d",
			c.RateLimit.RequestsPerMinute, c.RateLimit.Burst)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
