package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Station types.
const (
	StationTable   = "table"
	StationConsole = "console"
)

// Station is the static configuration of one rentable station. The hourly
// rate is the starting value; the operator can change it at runtime through
// the dashboard.
type Station struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	RatePerHour float64 `yaml:"rate_per_hour"`
}

// Config holds venue-wide settings.
type Config struct {
	DatabasePath string    `yaml:"database_path"`
	LogPath      string    `yaml:"log_path"`
	Stations     []Station `yaml:"stations"`
}

// Default returns the built-in venue layout: three tables and two consoles.
func Default() Config {
	return Config{
		Stations: []Station{
			{Name: "Table 1", Type: StationTable, RatePerHour: 60.0},
			{Name: "Table 2", Type: StationTable, RatePerHour: 60.0},
			{Name: "Table 3", Type: StationTable, RatePerHour: 60.0},
			{Name: "PlayStation 1", Type: StationConsole, RatePerHour: 40.0},
			{Name: "PlayStation 2", Type: StationConsole, RatePerHour: 40.0},
		},
	}
}

// Load reads a yaml config file on top of the defaults. An empty path or a
// missing file at the default location just yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = defaultPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	seen := make(map[string]bool)
	for _, s := range c.Stations {
		if s.Name == "" {
			return fmt.Errorf("config: station with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("config: duplicate station %q", s.Name)
		}
		seen[s.Name] = true
		if s.Type != StationTable && s.Type != StationConsole {
			return fmt.Errorf("config: station %q has unknown type %q", s.Name, s.Type)
		}
		if s.RatePerHour < 0 {
			return fmt.Errorf("config: station %q has negative rate", s.Name)
		}
	}
	return nil
}

func defaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".spacevenue", "config.yaml")
}
