// Package config handles configuration management for relayout.
// It supports loading configuration from multiple sources including
// embedded defaults, TOML files and environment variables.
package config
