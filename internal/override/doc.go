// Package override reads alternative site overrides from YAML, TOML or JSON
// files and decodes them into siteconfig.UserConfig.
package override
