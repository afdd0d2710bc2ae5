package domain

import (
	"fmt"
	"strings"
)

// ProjectConfig holds project-level configuration loaded from .routeguard.yaml.
type ProjectConfig struct {
	// APIRoot is the directory (relative to the project) searched for route files.
	APIRoot string `yaml:"api_root"          json:"api_root,omitempty"`
	// ExcludePaths are path substrings skipped by the walker.
	ExcludePaths []string `yaml:"exclude_paths"     json:"exclude_paths,omitempty"`
	// SensitivePrefixes are extra normalized path prefixes treated as SENSITIVE.
	SensitivePrefixes []string `yaml:"sensitive_prefixes" json:"sensitive_prefixes,omitempty"`
	// HighTrafficRoots extend the built-in HIGH allowlist.
	HighTrafficRoots []string `yaml:"high_traffic_roots" json:"high_traffic_roots,omitempty"`
	// MiddlewareModule overrides the import path of the rate-limit middleware.
	MiddlewareModule string `yaml:"middleware_module" json:"middleware_module,omitempty"`
}

// DefaultConfig returns the configuration used when no .routeguard.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		APIRoot:          "app/api",
		MiddlewareModule: DefaultMiddlewareModule,
	}
}

// Validate catches typos in user-supplied raw input before merging.
func (c ProjectConfig) Validate() error {
	for _, p := range c.SensitivePrefixes {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("sensitive_prefixes entry %q must start with /", p)
		}
	}
	for _, p := range c.HighTrafficRoots {
		if !strings.HasPrefix(p, "/api/") {
			return fmt.Errorf("high_traffic_roots entry %q must start with /api/", p)
		}
	}
	return nil
}
