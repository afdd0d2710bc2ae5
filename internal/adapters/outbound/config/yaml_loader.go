package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/routeguard/routeguard/internal/domain"
)

const fileName = ".routeguard.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .routeguard.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .routeguard.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before merging so typos in the user's raw input surface early.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return mergeDefaults(cfg), nil
}

// mergeDefaults fills unset scalar fields from the defaults. List fields are
// additive by design and stay as the user wrote them.
func mergeDefaults(cfg domain.ProjectConfig) domain.ProjectConfig {
	defaults := domain.DefaultConfig()
	if cfg.APIRoot == "" {
		cfg.APIRoot = defaults.APIRoot
	}
	if cfg.MiddlewareModule == "" {
		cfg.MiddlewareModule = defaults.MiddlewareModule
	}
	return cfg
}
