package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs, the database and logs.
const AppDir = ".glitch-memory"

// LoadMemory loads the memory game configuration.
// Search order: customPath -> ~/.glitch-memory/configs/memory.yaml -> ./configs/memory.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadMemory(customPath string) (MemoryConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseMemory(data)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("memory.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMemory(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "memory.yaml")); err == nil {
		if cfg, err := parseMemory(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMemory(defaultMemoryYAML)
	if err != nil {
		return DefaultMemoryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseMemory(data []byte) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MemoryConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// UserPath joins elem under ~/.glitch-memory. Falls back to the working
// directory when home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(append([]string{AppDir}, elem...)...)
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}
