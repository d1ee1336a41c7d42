// Package config loads and saves the assembler's TOML configuration file:
// a default, a load-with-fallback, and a save, scoped to the assembler's
// own settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds every user-tunable assembler setting.
type Config struct {
	Assemble struct {
		KeepExpanded    bool `toml:"keep_expanded"`
		MaxLineLength   int  `toml:"max_line_length"`
		MaxMacroNesting int  `toml:"max_macro_nesting"`
		StartAddress    int  `toml:"start_address"`
		WarningsAsErrors bool `toml:"warnings_as_errors"`
	} `toml:"assemble"`

	Output struct {
		ColorDiagnostics bool `toml:"color_diagnostics"`
		Listing          bool `toml:"listing"`
		Xref             bool `toml:"xref"`
	} `toml:"output"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Assemble.KeepExpanded = true
	cfg.Assemble.MaxLineLength = 80
	cfg.Assemble.MaxMacroNesting = 1
	cfg.Assemble.StartAddress = 100
	cfg.Assemble.WarningsAsErrors = false

	cfg.Output.ColorDiagnostics = true
	cfg.Output.Listing = false
	cfg.Output.Xref = false

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "asm12")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "asm12")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the given file, falling back to
// defaults when the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the given file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
