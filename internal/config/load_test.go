package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default
// values for port, log level, and token lifetime when no environment
// variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		// Set required fields
		"LEXICA_AUTH_TOKEN_SECRET": "thisisasecretkeythatis32charslong!!",
		// Explicitly unset the ones we want to test defaults for
		"LEXICA_SERVER_PORT":                 "",
		"LEXICA_SERVER_LOG_LEVEL":            "",
		"LEXICA_AUTH_TOKEN_LIFETIME_MINUTES": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes, "Default token lifetime should be 60 minutes")
	assert.False(t, cfg.Catalog.StrictBackrefs, "Backref audit should be lax by default")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from
// environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"LEXICA_SERVER_PORT":              "9090",
		"LEXICA_SERVER_LOG_LEVEL":         "debug",
		"LEXICA_CATALOG_PACK_DIR":         "/srv/lexica/packs",
		"LEXICA_CATALOG_STRICT_BACKREFS":  "true",
		"LEXICA_AUTH_TOKEN_SECRET":        "thisisasecretkeythatis32charslong!!",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, "/srv/lexica/packs", cfg.Catalog.PackDir, "Pack dir should be loaded from environment variables")
	assert.True(t, cfg.Catalog.StrictBackrefs, "Strict backrefs flag should be loaded from environment variables")
	assert.Equal(t, "thisisasecretkeythatis32charslong!!", cfg.Auth.TokenSecret, "Token secret should be loaded from environment variables")
}

// TestLoadValidationErrors verifies that the Load function correctly
// validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		expectError    bool
		errorSubstring string
	}{
		{
			name: "Missing token secret",
			envVars: map[string]string{
				"LEXICA_SERVER_PORT":       "9090",
				"LEXICA_SERVER_LOG_LEVEL":  "debug",
				"LEXICA_AUTH_TOKEN_SECRET": "",
			},
			expectError:    true,
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"LEXICA_SERVER_PORT":       "999999", // Port out of range
				"LEXICA_SERVER_LOG_LEVEL":  "debug",
				"LEXICA_AUTH_TOKEN_SECRET": "thisisasecretkeythatis32charslong!!",
			},
			expectError:    true,
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"LEXICA_SERVER_PORT":       "9090",
				"LEXICA_SERVER_LOG_LEVEL":  "invalid-level",
				"LEXICA_AUTH_TOKEN_SECRET": "thisisasecretkeythatis32charslong!!",
			},
			expectError:    true,
			errorSubstring: "validation failed",
		},
		{
			name: "Short token secret",
			envVars: map[string]string{
				"LEXICA_SERVER_PORT":       "9090",
				"LEXICA_SERVER_LOG_LEVEL":  "debug",
				"LEXICA_AUTH_TOKEN_SECRET": "tooshort",
			},
			expectError:    true,
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			if tc.expectError {
				assert.Error(t, err, "Load() should return an error with invalid configuration")
				if err != nil {
					assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
				}
				assert.Nil(t, cfg, "Config should be nil when an error occurs")
			} else {
				assert.NoError(t, err, "Load() should not return an error with valid configuration")
				assert.NotNil(t, cfg, "Load() should return a non-nil config")
			}
		})
	}
}
