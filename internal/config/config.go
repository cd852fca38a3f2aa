// Package config loads esgraph settings from a YAML file, ESGRAPH_* environment
// variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
	"github.com/LegacyCodeHQ/esgraph/depgraph/resolve"
)

// Sentinel validation errors.
var (
	ErrInvalidTraversal   = errors.New("graph.traversal must be lifo or fifo")
	ErrInvalidParsePolicy = errors.New("graph.on_parse_error must be abort or skip")
	ErrInvalidExtension   = errors.New("resolver.extensions entries must start with a dot")
	ErrNoExtensions       = errors.New("resolver.extensions must not be empty")
	ErrInvalidCacheSize   = errors.New("resolver.cache_size must not be negative")
	ErrInvalidLogLevel    = errors.New("log.level must be debug, info, warn or error")
)

// configName is the config file name without extension.
const configName = ".esgraph"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for esgraph settings.
const envPrefix = "ESGRAPH"

// Config holds all esgraph settings.
type Config struct {
	Resolver ResolverConfig `mapstructure:"resolver"`
	Graph    GraphConfig    `mapstructure:"graph"`
	Log      LogConfig      `mapstructure:"log"`
}

// ResolverConfig holds path resolution settings.
type ResolverConfig struct {
	Extensions []string `mapstructure:"extensions"`
	CacheSize  int      `mapstructure:"cache_size"`
}

// GraphConfig holds traversal settings.
type GraphConfig struct {
	Traversal    string `mapstructure:"traversal"`
	OnParseError string `mapstructure:"on_parse_error"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Resolver: ResolverConfig{
			Extensions: slices.Clone(resolve.DefaultExtensions),
			CacheSize:  0,
		},
		Graph: GraphConfig{
			Traversal:    "lifo",
			OnParseError: "abort",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads configuration from file, env vars, and defaults.
// If configPath is non-empty it is used as the explicit config file path;
// otherwise .esgraph.yaml is searched in the working directory and $HOME.
// A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("resolver.extensions", defaults.Resolver.Extensions)
	v.SetDefault("resolver.cache_size", defaults.Resolver.CacheSize)
	v.SetDefault("graph.traversal", defaults.Graph.Traversal)
	v.SetDefault("graph.on_parse_error", defaults.Graph.OnParseError)
	v.SetDefault("log.level", defaults.Log.Level)
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if len(c.Resolver.Extensions) == 0 {
		return ErrNoExtensions
	}
	for _, ext := range c.Resolver.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}
	if c.Resolver.CacheSize < 0 {
		return ErrInvalidCacheSize
	}
	if _, err := c.Traversal(); err != nil {
		return err
	}
	if _, err := c.ParseErrorPolicy(); err != nil {
		return err
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// Traversal maps graph.traversal to a depgraph.Traversal.
func (c *Config) Traversal() (depgraph.Traversal, error) {
	switch strings.ToLower(c.Graph.Traversal) {
	case "lifo", "":
		return depgraph.LIFO, nil
	case "fifo":
		return depgraph.FIFO, nil
	default:
		return depgraph.LIFO, fmt.Errorf("%w: %q", ErrInvalidTraversal, c.Graph.Traversal)
	}
}

// ParseErrorPolicy maps graph.on_parse_error to a depgraph.ParseErrorPolicy.
func (c *Config) ParseErrorPolicy() (depgraph.ParseErrorPolicy, error) {
	switch strings.ToLower(c.Graph.OnParseError) {
	case "abort", "":
		return depgraph.AbortOnParseError, nil
	case "skip":
		return depgraph.SkipParseErrors, nil
	default:
		return depgraph.AbortOnParseError, fmt.Errorf("%w: %q", ErrInvalidParsePolicy, c.Graph.OnParseError)
	}
}

// BuilderOptions turns the configuration into depgraph builder options.
func (c *Config) BuilderOptions() ([]depgraph.Option, error) {
	traversal, err := c.Traversal()
	if err != nil {
		return nil, err
	}
	policy, err := c.ParseErrorPolicy()
	if err != nil {
		return nil, err
	}

	return []depgraph.Option{
		depgraph.WithTraversal(traversal),
		depgraph.WithParseErrorPolicy(policy),
		depgraph.WithResolverOptions(
			resolve.WithExtensions(c.Resolver.Extensions),
			resolve.WithCacheSize(c.Resolver.CacheSize),
		),
	}, nil
}
