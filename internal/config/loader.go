package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "intruder.yaml"

// SourceEmbedded is reported by LoadIntruder when no file was found.
const SourceEmbedded = "embedded"

// LoadIntruder loads Space Intruder configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/intruder.yaml -> ./configs/intruder.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read or parsed is an error; the other locations are skipped silently.
func LoadIntruder(customPath string) (IntruderConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return IntruderConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseIntruder(data)
		if err != nil {
			return IntruderConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseIntruder(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parseIntruder(defaultIntruderYAML)
	if err != nil {
		return DefaultIntruderConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseIntruder decodes YAML over the hardcoded defaults.
func parseIntruder(data []byte) (IntruderConfig, error) {
	cfg := DefaultIntruderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return IntruderConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg IntruderConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(configFileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
