package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dialect.Standard != DialectC23 {
		t.Errorf("Expected Standard=%s, got %s", DialectC23, cfg.Dialect.Standard)
	}
	if !cfg.Dialect.WarnOnDeprecatedForms {
		t.Error("Expected WarnOnDeprecatedForms=true")
	}
	if !cfg.Dialect.WarnOnUnderscoreKind {
		t.Error("Expected WarnOnUnderscoreKind=true")
	}

	if cfg.Numbers.OverflowPolicy != "warn" {
		t.Errorf("Expected OverflowPolicy=warn, got %s", cfg.Numbers.OverflowPolicy)
	}
	if !cfg.Numbers.DefaultSigned {
		t.Error("Expected DefaultSigned=true")
	}

	if cfg.Display.ContextLines != 2 {
		t.Errorf("Expected ContextLines=2, got %d", cfg.Display.ContextLines)
	}
	if cfg.Display.Phase != "parse" {
		t.Errorf("Expected Phase=parse, got %s", cfg.Display.Phase)
	}

	if cfg.Parser.MaxNestingDepth != 256 {
		t.Errorf("Expected MaxNestingDepth=256, got %d", cfg.Parser.MaxNestingDepth)
	}
	if !cfg.Parser.AllowTrailingCommaInList {
		t.Error("Expected AllowTrailingCommaInList=true")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "cfrontend" && path != "config.toml" {
			t.Errorf("Expected path in cfrontend directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Dialect.Standard = DialectC17
	cfg.Numbers.OverflowPolicy = "error"
	cfg.Display.ColorOutput = false
	cfg.Parser.MaxNestingDepth = 64

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Dialect.Standard != DialectC17 {
		t.Errorf("Expected Standard=%s, got %s", DialectC17, loaded.Dialect.Standard)
	}
	if loaded.Numbers.OverflowPolicy != "error" {
		t.Errorf("Expected OverflowPolicy=error, got %s", loaded.Numbers.OverflowPolicy)
	}
	if loaded.Display.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
	if loaded.Parser.MaxNestingDepth != 64 {
		t.Errorf("Expected MaxNestingDepth=64, got %d", loaded.Parser.MaxNestingDepth)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.Dialect.Standard != DialectC23 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[numbers]
default_signed = "not a bool"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
