// Package config loads the orbitr service configuration.
//
// Configuration lives in a YAML file. Values absent from the file keep their
// defaults, and the merged result is checked against an embedded CUE schema
// before use.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSource string

// DefaultPath is the config file read when no path is given.
const DefaultPath = "orbitr.yaml"

// Config represents the orbitr service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

// ServerConfig contains HTTP settings.
type ServerConfig struct {
	Listen      string `yaml:"listen" json:"listen"`
	FrontendDir string `yaml:"frontend_dir" json:"frontend_dir"` // empty disables static serving
}

// StorageConfig contains record store settings.
type StorageConfig struct {
	Path      string `yaml:"path" json:"path"`
	OnCorrupt string `yaml:"on_corrupt" json:"on_corrupt"` // "recover" or "fail"
	Seed      bool   `yaml:"seed" json:"seed"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":5000",
		},
		Storage: StorageConfig{
			Path:      "instance/rso_store.json",
			OnCorrupt: "recover",
			Seed:      true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path, falling back to DefaultPath when
// path is empty. A missing file yields the defaults. The result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against the embedded CUE schema.
func (c *Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("failed to compile config schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	value := def.Unify(ctx.Encode(c))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SlogLevel maps the configured level to a slog.Level.
// Unknown values map to Info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
