// Package config defines the generator's settings and how they are loaded.
package config

import (
	"time"

	"github.com/Zachdehooge/dewpoint-map/internal/fetcher"
	"github.com/Zachdehooge/dewpoint-map/internal/mapview"
)

// Config contains process configuration.
type Config struct {
	// Source is a GeoJSON file path or http(s) URL.
	Source string `koanf:"source"`

	// Output is the HTML file written on every generation.
	Output string `koanf:"output"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// FetchTimeout bounds a remote load.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`

	// BreakerTimeout is how long the source circuit breaker stays open.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`

	// IntervalSeconds is the regeneration period in watch mode.
	IntervalSeconds int `koanf:"interval"`

	// Map viewport and base tiles.
	CenterLat   float64 `koanf:"center_lat"`
	CenterLon   float64 `koanf:"center_lon"`
	Zoom        int     `koanf:"zoom"`
	TileURL     string  `koanf:"tile_url"`
	MinZoom     int     `koanf:"min_zoom"`
	MaxZoom     int     `koanf:"max_zoom"`
	Attribution string  `koanf:"attribution"`
}

// MinInterval is the shortest watch period accepted.
const MinInterval = 30

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Source:          fetcher.DefaultSource,
		Output:          "dewpoints.html",
		LogLevel:        "info",
		FetchTimeout:    15 * time.Second,
		BreakerTimeout:  5 * time.Minute,
		IntervalSeconds: 300,
		CenterLat:       mapview.DefaultLat,
		CenterLon:       mapview.DefaultLon,
		Zoom:            mapview.DefaultZoom,
		TileURL:         mapview.DefaultTileURL,
		MinZoom:         0,
		MaxZoom:         20,
		Attribution:     mapview.DefaultAttribution,
	}
}

// MapOptions converts the viewport settings for mapview.New.
func (c *Config) MapOptions() mapview.Options {
	return mapview.Options{
		Lat:         c.CenterLat,
		Lon:         c.CenterLon,
		Zoom:        c.Zoom,
		TileURL:     c.TileURL,
		MinZoom:     c.MinZoom,
		MaxZoom:     c.MaxZoom,
		Attribution: c.Attribution,
	}
}

// Interval returns the watch period, raised to MinInterval if shorter.
func (c *Config) Interval() time.Duration {
	seconds := c.IntervalSeconds
	if seconds < MinInterval {
		seconds = MinInterval
	}
	return time.Duration(seconds) * time.Second
}
