// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full environment-driven configuration. Rendering knobs
// (browser executable, viewport, user agent, headless) live here rather
// than in pipeline logic so a deployment can swap transports without a
// rebuild.
type Config struct {
	ListingURL string `envconfig:"SOURCE_LISTING_URL" default:"https://tix.africa/discover/all?country=nigeria"`
	SourceID   string `envconfig:"SOURCE_ID" default:"tix.africa"`

	ListingTimeoutSec int `envconfig:"SCRAPER_LISTING_TIMEOUT_SEC" default:"60"`
	DetailTimeoutSec  int `envconfig:"SCRAPER_DETAIL_TIMEOUT_SEC" default:"30"`
	DetailDelayMs     int `envconfig:"SCRAPER_DETAIL_DELAY_MS" default:"2000"`

	BrowserExecutable string `envconfig:"BROWSER_EXECUTABLE" default:""`
	ViewportWidth     int    `envconfig:"BROWSER_VIEWPORT_WIDTH" default:"1920"`
	ViewportHeight    int    `envconfig:"BROWSER_VIEWPORT_HEIGHT" default:"1080"`
	UserAgent         string `envconfig:"BROWSER_USER_AGENT" default:""`
	Headless          bool   `envconfig:"BROWSER_HEADLESS" default:"true"`

	MongoURI string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB  string `envconfig:"MONGO_DB" default:"naija_events"`

	APIAddr   string `envconfig:"API_ADDR" default:":8080"`
	PeakMonth int    `envconfig:"SCHEDULER_PEAK_MONTH" default:"12"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"INFO"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}
	if cfg.PeakMonth < 1 || cfg.PeakMonth > 12 {
		return nil, fmt.Errorf("invalid peak month: %d", cfg.PeakMonth)
	}
	return &cfg, nil
}

// ListingTimeout returns the run-level listing load bound.
func (c *Config) ListingTimeout() time.Duration {
	return time.Duration(c.ListingTimeoutSec) * time.Second
}

// DetailTimeout returns the per-event detail load bound.
func (c *Config) DetailTimeout() time.Duration {
	return time.Duration(c.DetailTimeoutSec) * time.Second
}

// DetailDelay returns the fixed pause between detail fetches.
func (c *Config) DetailDelay() time.Duration {
	return time.Duration(c.DetailDelayMs) * time.Millisecond
}
