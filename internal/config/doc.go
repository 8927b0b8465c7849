// Package config loads the runtime settings of the siteconfig tool from
// multiple sources (YAML file, environment variables including an optional
// dotenv file, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults.
package config
