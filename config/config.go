/*
Package config holds the configuration of the styling engine.

Configuration is read from TOML, e.g.

    [tracing]
    "uicascade.cascade" = "debug"
    "uicascade.selector" = "error"

    [resolver]
    check_tree = true

    [metrics]
    enabled = true
    namespace = "ui"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/tracing"
)

// Config is the configuration of the styling engine.
type Config struct {
	Tracing  map[string]string `toml:"tracing"` // tracer key => level
	Resolver ResolverConfig    `toml:"resolver"`
	Metrics  MetricsConfig     `toml:"metrics"`
}

// ResolverConfig configures the cascade resolver.
type ResolverConfig struct {
	CheckTree bool `toml:"check_tree"` // verify tree consistency before full resolution
}

// MetricsConfig configures the export of resolver metrics.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Namespace string `toml:"namespace"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Tracing:  map[string]string{},
		Resolver: ResolverConfig{CheckTree: true},
		Metrics:  MetricsConfig{Namespace: "uicascade"},
	}
}

// Load reads a configuration from a TOML file. Values not present in the
// file keep their defaults.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return c, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}
	return c, c.validate()
}

// Decode reads a configuration from a TOML string.
func Decode(s string) (Config, error) {
	c := Default()
	if _, err := toml.Decode(s, &c); err != nil {
		return c, fmt.Errorf("cannot decode configuration: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	for key, level := range c.Tracing {
		if _, err := ParseLevel(level); err != nil {
			return fmt.Errorf("tracer %s: %w", key, err)
		}
	}
	return nil
}

// Apply sets the trace levels of the configured tracers.
func (c Config) Apply() error {
	for key, level := range c.Tracing {
		l, err := ParseLevel(level)
		if err != nil {
			return fmt.Errorf("tracer %s: %w", key, err)
		}
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

// ParseLevel converts a level name ("debug", "info", "error") to a trace level.
// An empty name selects the error level.
func ParseLevel(s string) (tracing.TraceLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "":
		return tracing.LevelError, nil
	case "debug", "info", "error":
		return tracing.TraceLevelFromString(name), nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}
