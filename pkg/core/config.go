// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/cudatool/pkg/build"
	"github.com/arc-language/cudatool/pkg/cuda"
)

// Config holds cudatool configuration
type Config struct {
	ToolkitPath string `yaml:"toolkit_path" toml:"toolkit_path"`
	NVCC        string `yaml:"nvcc" toml:"nvcc"`
	NVCCFlags   string `yaml:"nvcc_flags" toml:"nvcc_flags"`
	StaticFlags string `yaml:"static_flags" toml:"static_flags"`
	SharedFlags string `yaml:"shared_flags" toml:"shared_flags"`
	Debug       bool   `yaml:"debug" toml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ToolkitPath: os.Getenv("CUDATOOL_TOOLKIT_PATH"), // Empty means discover
		Debug:       false,
	}
}

// DefaultConfigPath returns $HOME/.config/cudatool/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cudatool", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Files ending in .toml are
// decoded as TOML, everything else as YAML.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var data []byte
	if isTOML(path) {
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		data = []byte(b.String())
	} else {
		var err error
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Apply sets the settings cuda.Generate honors when already present:
// the toolkit path override and the compiler name.
func (c *Config) Apply(env *build.Environment) {
	if c.ToolkitPath != "" {
		env.Set(cuda.ToolkitPathKey, c.ToolkitPath)
	}
	if c.NVCC != "" {
		env.Set(cuda.CompilerKey, c.NVCC)
	}
}

// ApplyFlags sets the configured flags. cuda.Generate resets the flag
// settings, so this runs after it.
func (c *Config) ApplyFlags(env *build.Environment) {
	if c.NVCCFlags != "" {
		env.Set(cuda.FlagsKey, c.NVCCFlags)
	}
	if c.StaticFlags != "" {
		env.Set(cuda.StaticFlagsKey, c.StaticFlags)
	}
	if c.SharedFlags != "" {
		env.Set(cuda.SharedFlagsKey, c.SharedFlags)
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
