package siteconfig

import "fmt"

// Build merges override over the template defaults, resolves the base path
// and validates the result.
func Build(override UserConfig, basePath string) (Config, error) {
	cfg := ResolveBasePath(Merge(Defaults(), override), basePath)
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid site configuration: %w", err)
	}
	return cfg, nil
}
