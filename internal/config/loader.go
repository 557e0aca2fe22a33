package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EmbeddedSource is the source name reported when the embedded defaults are used.
const EmbeddedSource = "embedded"

// configBase is the file name searched for in the config directories.
const configBase = "paddleball"

// LoadPaddleball loads the simulation configuration for a variant and
// reports where it came from.
// Search order: customPath -> ~/.paddleball/configs/paddleball.{yaml,toml}
// -> ./configs/paddleball.{yaml,toml} -> embedded default.
// The variant preset is applied to the defaults first, so a file only needs
// to set the fields it changes and its values win over the preset.
func LoadPaddleball(customPath string, v Variant) (PaddleballConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := decodeFile(customPath, v)
		if err != nil {
			return cfg, customPath, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, customPath, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user and local config directories; unreadable files fall through
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := decodeFile(path, v)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return cfg, path, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg := DefaultPaddleballConfig()
	if err := yaml.Unmarshal(defaultPaddleballYAML, &cfg); err != nil {
		cfg = DefaultPaddleballConfig() // Fallback to hardcoded if embed fails
	}
	ApplyVariant(&cfg, v)
	return cfg, EmbeddedSource, nil
}

// decodeFile reads a YAML or TOML file (by extension) on top of the
// variant's defaults.
func decodeFile(path string, v Variant) (PaddleballConfig, error) {
	cfg := DefaultPaddleballConfig()
	ApplyVariant(&cfg, v)

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths returns the candidate config files in priority order.
func searchPaths() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".paddleball", "configs"))
	}
	dirs = append(dirs, "configs")

	paths := make([]string, 0, len(dirs)*2)
	for _, dir := range dirs {
		paths = append(paths,
			filepath.Join(dir, configBase+".yaml"),
			filepath.Join(dir, configBase+".toml"),
		)
	}
	return paths
}
