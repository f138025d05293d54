// Package commands implements the modelspec subcommands.
package commands

import (
	"fmt"

	"github.com/leapstack-labs/modelspec/internal/config"
	"github.com/leapstack-labs/modelspec/internal/loader"
)

// cfg is the loaded project configuration, set by the root command before
// any subcommand runs.
var cfg *config.Config

// SetConfig stores the loaded configuration for the subcommands.
func SetConfig(c *config.Config) {
	cfg = c
}

// loadModels discovers all models under the configured models directory.
func loadModels() ([]*loader.Model, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	defaultKind, err := cfg.ResolveDefaultKind()
	if err != nil {
		return nil, err
	}
	l := loader.New(cfg.ModelsDir, loader.WithDefaultKind(defaultKind))
	return l.Load()
}
