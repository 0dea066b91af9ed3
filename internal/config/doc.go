// Package config manages user settings stored at ~/.linkshell/config.yaml,
// with environment overrides under the LINKSHELL_ prefix.
package config
