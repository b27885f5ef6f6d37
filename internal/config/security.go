// Package config loads the YAML configuration files the server reads at
// startup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SecurityConfig is the security section of the server configuration:
// where the session signing key lives, how long sessions last, and which
// endpoints skip the session guard.
type SecurityConfig struct {
	Security struct {
		Session struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"session"`
		PublicEndpoints []string `yaml:"public_endpoints"`
	} `yaml:"security"`
}

// LoadSecurityConfig reads and validates the security configuration.
// The path comes from a trusted source (CLI flag or hardcoded default),
// never from request input.
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by a trusted source, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Session.SecretEnv == "" {
		return fmt.Errorf("session secret_env is required")
	}
	if config.Security.Session.ExpiryHours <= 0 {
		return fmt.Errorf("session expiry_hours must be positive")
	}
	return nil
}

// GetSessionSecretEnv returns the environment variable holding the
// session signing key.
func (c *SecurityConfig) GetSessionSecretEnv() string {
	return c.Security.Session.SecretEnv
}

// GetSessionExpiryHours returns the session lifetime in hours.
func (c *SecurityConfig) GetSessionExpiryHours() int {
	return c.Security.Session.ExpiryHours
}

// GetPublicEndpoints returns the endpoints reachable without a session.
func (c *SecurityConfig) GetPublicEndpoints() []string {
	return c.Security.PublicEndpoints
}
