// Package config loads and saves the front end's TOML configuration:
// which C dialect is active, how deprecated spellings and numeric
// overflow are reported, and diagnostic display preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Dialect names a C standard. It is stored, saved and reported (the API
// health endpoint echoes it), but the lexer does not read it: the keyword
// set is the same for every value.
type Dialect string

const (
	DialectC17 Dialect = "c17"
	DialectC23 Dialect = "c23"
)

// Config is the front end's tunable behavior.
type Config struct {
	// Dialect settings
	Dialect struct {
		Standard             Dialect `toml:"standard"`
		WarnOnDeprecatedForms bool    `toml:"warn_on_deprecated_forms"`
		WarnOnUnderscoreKind  bool    `toml:"warn_on_underscore_keywords"`
	} `toml:"dialect"`

	// Numeric literal settings
	Numbers struct {
		OverflowPolicy   string `toml:"overflow_policy"` // "warn", "error"
		DefaultSigned    bool   `toml:"default_signed"`
		RejectLongDouble bool   `toml:"reject_long_double"`
	} `toml:"numbers"`

	// Diagnostic display settings
	Display struct {
		ColorOutput    bool   `toml:"color_output"`
		ContextLines   int    `toml:"context_lines"`
		MaxDiagnostics int    `toml:"max_diagnostics"`
		Phase          string `toml:"phase"` // label used in display_errors' banner
	} `toml:"display"`

	// Parser settings
	Parser struct {
		AllowTrailingCommaInList bool `toml:"allow_trailing_comma_in_list"`
		MaxNestingDepth          int  `toml:"max_nesting_depth"`
	} `toml:"parser"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Dialect.Standard = DialectC23
	cfg.Dialect.WarnOnDeprecatedForms = true
	cfg.Dialect.WarnOnUnderscoreKind = true

	cfg.Numbers.OverflowPolicy = "warn"
	cfg.Numbers.DefaultSigned = true
	cfg.Numbers.RejectLongDouble = true

	cfg.Display.ColorOutput = true
	cfg.Display.ContextLines = 2
	cfg.Display.MaxDiagnostics = 100
	cfg.Display.Phase = "parse"

	cfg.Parser.AllowTrailingCommaInList = true
	cfg.Parser.MaxNestingDepth = 256

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
		configDir = filepath.Join(configDir, "cfrontend")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "cfrontend")

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

// LoadFrom loads configuration from the specified file, falling back to
// defaults if the file does not exist.
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

// SaveTo saves configuration to the specified file.
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
