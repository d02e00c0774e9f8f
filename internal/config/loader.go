package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadVoidRunner loads Void Runner configuration.
// Search order: customPath -> ~/.arcade/configs/voidrunner.yaml -> ./configs/voidrunner.yaml -> embedded default
func LoadVoidRunner(customPath string) (VoidRunnerConfig, error) {
	cfg := DefaultVoidRunnerConfig()
	if err := load("voidrunner", customPath, &cfg); err != nil {
		return DefaultVoidRunnerConfig(), err
	}
	return cfg, nil
}

// LoadNeonCipher loads Neon Cipher configuration.
// Search order: customPath -> ~/.arcade/configs/neoncipher.yaml -> ./configs/neoncipher.yaml -> embedded default
func LoadNeonCipher(customPath string) (NeonCipherConfig, error) {
	cfg := DefaultNeonCipherConfig()
	if err := load("neoncipher", customPath, &cfg); err != nil {
		return DefaultNeonCipherConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultNeonCipherConfig(), err
	}
	return cfg, nil
}

// load decodes the first config found for gameID into out.
// out must already hold hard-coded defaults so that partial files only
// override the keys they mention.
func load(gameID, customPath string, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML; hard-coded defaults already in out if this fails
	//nolint:errcheck // out keeps the hard-coded defaults on a bad embed
	yaml.Unmarshal(GetDefaultYAML(gameID), out)
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
