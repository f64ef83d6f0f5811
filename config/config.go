package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/vshell/internal/util"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultVFSName labels the built-in tree used when no description file
	// is supplied.
	DefaultVFSName = "default"

	// DefaultLogLvl is the logger verbosity when none is configured.
	DefaultLogLvl = util.InfoLevel
)

// Config contains runtime configuration values for a shell run.
type Config struct {
	VFSPath    string        // Path to a tree description file (.csv, .json, .yaml); empty uses the built-in default tree
	ScriptPath string        // Path to a startup script run before interactive input; empty skips script mode
	VFSName    string        // Display label override for the tree (Default "default", or the description file's base name)
	User       string        // Session identity; empty falls back to the USER/USERNAME environment variables
	LogLvl     util.LogLevel // Logger verbosity (Default info)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions.
type ConfigOverride struct {
	VFSPath    *string        `yaml:"vfs,omitempty" json:"vfs,omitempty"`
	ScriptPath *string        `yaml:"script,omitempty" json:"script,omitempty"`
	VFSName    *string        `yaml:"vfs_name,omitempty" json:"vfs_name,omitempty"`
	User       *string        `yaml:"user,omitempty" json:"user,omitempty"`
	LogLvl     *util.LogLevel `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		VFSName: DefaultVFSName,
		LogLvl:  DefaultLogLvl,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.VFSPath != nil {
		c.VFSPath = *override.VFSPath
	}
	if override.ScriptPath != nil {
		c.ScriptPath = *override.ScriptPath
	}
	if override.VFSName != nil {
		c.VFSName = *override.VFSName
	}
	if override.User != nil {
		c.User = *override.User
	}
	if override.LogLvl != nil {
		c.LogLvl = *override.LogLvl
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without
// merging. Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with
// defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
