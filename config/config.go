package config

import (
	"encoding/json"
	"os"
	"time"
)

// Config holds runtime configuration for rendering and display.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Annotation parameters
	Stroke int `json:"stroke"`

	// Display bounds for the plot window preview
	MaxPreviewW int `json:"max_preview_w"`
	MaxPreviewH int `json:"max_preview_h"`

	// Timeout for fetching hosted images, in milliseconds
	HTTPTimeoutMS int `json:"http_timeout_ms"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		Stroke:        1,
		MaxPreviewW:   1024,
		MaxPreviewH:   768,
		HTTPTimeoutMS: 10000,
	}
}

// Validate clamps values to safe ranges.
func (c *Config) Validate() error {
	if c.Stroke < 1 {
		c.Stroke = 1
	}
	if c.MaxPreviewW < 100 {
		c.MaxPreviewW = 1024
	}
	if c.MaxPreviewH < 100 {
		c.MaxPreviewH = 768
	}
	if c.HTTPTimeoutMS <= 0 {
		c.HTTPTimeoutMS = 10000
	}
	return nil
}

// HTTPTimeout returns the hosted-image fetch timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMS) * time.Millisecond
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
