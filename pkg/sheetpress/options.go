// Package sheetpress compresses spreadsheet content and formatting into
// a compact JSON encoding sized for a language-model context window.
package sheetpress

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/encoder"
)

// Options configures encoding behavior.
type Options struct {
	// K overrides the neighborhood radius around structural anchors.
	// If nil, the configuration's value (default 2) applies.
	K *int
	// Config replaces the full pipeline configuration. If nil,
	// encoder.DefaultConfig() applies.
	Config *encoder.Config
}

// DefaultOptions returns default encoding options.
func DefaultOptions() Options {
	return Options{}
}

// EffectiveConfig resolves the options into a concrete configuration.
func (o Options) EffectiveConfig() encoder.Config {
	cfg := encoder.DefaultConfig()
	if o.Config != nil {
		cfg = *o.Config
	}
	if o.K != nil {
		cfg.K = *o.K
	}
	return cfg
}

// LoadConfig reads a pipeline configuration from a YAML file. Fields not
// present in the file keep their defaults.
func LoadConfig(path string) (encoder.Config, error) {
	cfg := encoder.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
