// pkg/core/config.go
package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/linkbridge/pkg/directive"
	"github.com/arc-language/linkbridge/pkg/libpath"
)

// SystemRootEnv overrides the configured system library root
const SystemRootEnv = "LINKBRIDGE_SYSTEM_ROOT"

// Config holds linkbridge configuration
type Config struct {
	SystemRoot      string  `yaml:"system_root"`
	Markers         Markers `yaml:"markers"`
	FrameworkSearch bool    `yaml:"framework_search"`
	Debug           bool    `yaml:"debug"`
}

// Markers are the output keys
type Markers struct {
	Search string `yaml:"search"`
	Link   string `yaml:"link"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		SystemRoot: getDefaultSystemRoot(),
		Markers: Markers{
			Search: directive.CargoMarkers.Search,
			Link:   directive.CargoMarkers.Link,
		},
	}
}

// DefaultPath returns $HOME/.config/linkbridge/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "linkbridge", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Fields the file leaves empty
// keep their defaults, and a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Markers.Search == "" || cfg.Markers.Link == "" {
		return nil, fmt.Errorf("parsing config: markers need both search and link keys")
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// EmitterConfig converts the configuration for directive.New
func (c *Config) EmitterConfig(logger *log.Logger) *directive.Config {
	return &directive.Config{
		SystemRoot:      c.SystemRoot,
		Markers:         directive.Markers{Search: c.Markers.Search, Link: c.Markers.Link},
		FrameworkSearch: c.FrameworkSearch,
		Logger:          logger,
		Debug:           c.Debug,
	}
}

func getDefaultSystemRoot() string {
	if root := os.Getenv(SystemRootEnv); root != "" {
		return root
	}
	return libpath.DefaultSystemRoot
}
