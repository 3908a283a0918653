package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Selectors describes where the diary page keeps its data.
// The defaults match the page layout as it is rendered today.
type Selectors struct {
	Container     string `yaml:"container"`
	Discriminator string `yaml:"discriminator"` // attribute on the container's first child
	ListItem      string `yaml:"list_item"`
	GridRow       string `yaml:"grid_row"`
	GridHeader    string `yaml:"grid_header"`
	GridLabel     string `yaml:"grid_label"`
}

// Config holds runtime configuration. File values are overridden by CLI flags.
type Config struct {
	Selectors      Selectors     `yaml:"selectors"`
	MinutesPerUnit float64       `yaml:"minutes_per_unit"`
	CacheDir       string        `yaml:"cache_dir"`
	MaxAge         time.Duration `yaml:"max_age"`
	DBPath         string        `yaml:"db_path"`
}

// DefaultSelectors returns the selectors for the current diary page layout.
func DefaultSelectors() Selectors {
	return Selectors{
		Container:     `[ng-if="data && data.snapshots"]`,
		Discriminator: "ng-switch-when",
		ListItem:      ".o-memo-container span",
		GridRow:       `[headers="minutesData.headers"]`,
		GridHeader:    ".o-header",
		GridLabel:     ".o-memo-container span",
	}
}

// DefaultConfig returns a Config with every field set.
func DefaultConfig() Config {
	return Config{
		Selectors:      DefaultSelectors(),
		MinutesPerUnit: 10,
		CacheDir:       ".diary-logs-cache",
		MaxAge:         time.Hour,
	}
}

// LoadConfig reads a YAML config file over the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores any selector or scale a config file blanked out.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	s := &c.Selectors
	if s.Container == "" {
		s.Container = def.Selectors.Container
	}
	if s.Discriminator == "" {
		s.Discriminator = def.Selectors.Discriminator
	}
	if s.ListItem == "" {
		s.ListItem = def.Selectors.ListItem
	}
	if s.GridRow == "" {
		s.GridRow = def.Selectors.GridRow
	}
	if s.GridHeader == "" {
		s.GridHeader = def.Selectors.GridHeader
	}
	if s.GridLabel == "" {
		s.GridLabel = def.Selectors.GridLabel
	}
	if c.MinutesPerUnit <= 0 {
		c.MinutesPerUnit = def.MinutesPerUnit
	}
}
