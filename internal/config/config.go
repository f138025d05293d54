// Package config loads project configuration for modelspec. It is decoupled
// from CLI concerns so other tools can load the same configuration.
package config

import (
	"fmt"

	"github.com/leapstack-labs/modelspec/pkg/dialect"
	"github.com/leapstack-labs/modelspec/pkg/kind"
)

// Config holds the project configuration.
type Config struct {
	// ModelsDir is the directory scanned for .sql model files.
	ModelsDir string `koanf:"models_dir"`

	// Dialect names the SQL dialect used when rendering kinds.
	Dialect string `koanf:"dialect"`

	// DefaultKind is the kind mapping applied to models that declare none.
	DefaultKind map[string]any `koanf:"default_kind"`

	// Strict fails validation on the first error instead of collecting all.
	Strict bool `koanf:"strict"`

	Verbose bool `koanf:"verbose"`
}

// Validate checks the configuration against the dialect registry and the
// kind classifier.
func (c *Config) Validate() error {
	if c.ModelsDir == "" {
		return fmt.Errorf("models_dir is required")
	}
	if c.Dialect != "" {
		if _, ok := dialect.Get(c.Dialect); !ok {
			return fmt.Errorf("unknown dialect %q, available: %v", c.Dialect, dialect.List())
		}
	}
	if c.DefaultKind != nil {
		if _, err := kind.Classify(kind.FromMap(c.DefaultKind)); err != nil {
			return fmt.Errorf("invalid default_kind: %w", err)
		}
	}
	return nil
}

// ResolveDefaultKind classifies the configured default kind, falling back to
// a plain view.
func (c *Config) ResolveDefaultKind() (kind.Kind, error) {
	if c.DefaultKind == nil {
		return kind.NewView(false), nil
	}
	return kind.Classify(kind.FromMap(c.DefaultKind))
}
