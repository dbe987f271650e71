package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"fieldkit/internal/eventbus"
	"fieldkit/internal/ui/autocomplete"
	"fieldkit/internal/ui/logic"
)

// Config represents the application configuration
type Config struct {
	Version      int                `toml:"version"`
	Autocomplete AutocompleteConfig `toml:"autocomplete"`
	Log          LogConfig          `toml:"log"`
	Demo         DemoConfig         `toml:"demo"`
}

// AutocompleteConfig holds default autocomplete props
type AutocompleteConfig struct {
	MaxSuggestions int    `toml:"max_suggestions"`
	MinCharsToShow int    `toml:"min_chars_to_show"`
	DebounceMs     int    `toml:"debounce_ms"`
	Filter         string `toml:"filter"`
	Combobox       bool   `toml:"combobox"`
	BlurGraceMs    int    `toml:"blur_grace_ms"`
}

// LogConfig selects where and how much the program logs
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DemoConfig tunes the demo form
type DemoConfig struct {
	Sort             string `toml:"sort"`               // option order of the select fields
	PackageLatencyMs int    `toml:"package_latency_ms"` // simulated latency of the package search
	CacheSize        int    `toml:"cache_size"`         // package search result cache
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the user's config directory
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns <user config dir>/fieldkit/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "fieldkit", "config.toml")
}

// Load loads the configuration, falling back to defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values. A missing file is reported with an
// error satisfying os.IsNotExist.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Autocomplete: AutocompleteConfig{
			MaxSuggestions: autocomplete.DefaultMaxSuggestions,
			MinCharsToShow: autocomplete.DefaultMinCharsToShow,
			DebounceMs:     autocomplete.DefaultDebounceMs,
			Filter:         string(logic.PolicyContains),
			Combobox:       true,
			BlurGraceMs:    autocomplete.DefaultBlurGraceMs,
		},
		Log: LogConfig{
			File:  "fieldkit.log",
			Level: "info",
		},
		Demo: DemoConfig{
			Sort:             logic.SortNone.String(),
			PackageLatencyMs: 400,
			CacheSize:        64,
		},
	}
}

// Validate checks values that cannot be normalized silently
func (c *Config) Validate() error {
	if _, err := logic.ParsePolicy(c.Autocomplete.Filter); err != nil {
		return err
	}
	if _, err := logic.ParseSortMode(c.Demo.Sort); err != nil {
		return err
	}
	if c.Autocomplete.MaxSuggestions < 0 {
		return fmt.Errorf("max_suggestions must not be negative, got %d", c.Autocomplete.MaxSuggestions)
	}
	return nil
}

// AutocompleteProps maps the file values onto autocomplete props.
// Callbacks, source and labels are left for the caller.
func (c *Config) AutocompleteProps() autocomplete.Props {
	p := autocomplete.DefaultProps()
	a := c.Autocomplete
	if a.MaxSuggestions > 0 {
		p.MaxSuggestions = a.MaxSuggestions
	}
	p.MinCharsToShow = a.MinCharsToShow
	p.DebounceMs = a.DebounceMs
	if policy, err := logic.ParsePolicy(a.Filter); err == nil {
		p.Filter = policy
	}
	p.Combobox = a.Combobox
	if a.BlurGraceMs > 0 {
		p.BlurGraceMs = a.BlurGraceMs
	}
	return p
}

// SortMode returns the parsed demo sort mode
func (c *Config) SortMode() logic.SortMode {
	mode, err := logic.ParseSortMode(c.Demo.Sort)
	if err != nil {
		return logic.SortNone
	}
	return mode
}
