package app

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration loaded from YAML.
type Config struct {
	// Backend parameters
	Backend struct {
		// BaseURL is the processing backend address
		BaseURL string `yaml:"baseURL"`

		// TimeoutSeconds bounds every backend round trip. Artifact
		// transfers for large volumes can be slow, so the default is
		// generous.
		TimeoutSeconds int `yaml:"timeoutSeconds"`
	} `yaml:"backend"`

	// Display parameters
	Display struct {
		// WindowCenter and WindowWidth form the startup intensity window
		WindowCenter float64 `yaml:"windowCenter"`
		WindowWidth  float64 `yaml:"windowWidth"`

		// MeshColor is the surface fill color as a hex string
		MeshColor string `yaml:"meshColor"`

		// RenderFPS is the 3D viewport refresh rate
		RenderFPS int `yaml:"renderFPS"`
	} `yaml:"display"`

	// Log parameters
	Log struct {
		// Level is a logrus level name (debug, info, warn, error)
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Backend.BaseURL = "http://localhost:5000"
	cfg.Backend.TimeoutSeconds = 300

	cfg.Display.WindowCenter = 40
	cfg.Display.WindowWidth = 400
	cfg.Display.MeshColor = "#ccA18c"
	cfg.Display.RenderFPS = 30

	cfg.Log.Level = "info"

	return cfg
}

// LoadConfig loads configuration from a YAML file. If the file doesn't
// exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if cfg.Display.WindowWidth <= 0 {
		return nil, fmt.Errorf("windowWidth must be positive, got %v", cfg.Display.WindowWidth)
	}
	return cfg, nil
}

// MeshFillColor parses the configured mesh color, falling back to the
// built-in tissue tone on a bad hex string.
func (c *Config) MeshFillColor() colorful.Color {
	col, err := colorful.Hex(c.Display.MeshColor)
	if err != nil {
		return colorful.Color{R: 0.8, G: 0.63, B: 0.55}
	}
	return col
}
