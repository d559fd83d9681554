// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"EKACARE_CONFIG": "/path/to/config.json",

		"EKACARE_CLIENT_ID":     "client-1",
		"EKACARE_CLIENT_SECRET": "secret-1",

		"EKACARE_BASE_URL":        "https://api.eka.care",
		"EKACARE_REQUEST_TIMEOUT": "30s",

		"EKACARE_POLL_INTERVAL": "5s",
		"EKACARE_POLL_TIMEOUT":  "2m",

		"EKAMOCK_ADDRESS":          "localhost:9999",
		"EKAMOCK_PROCESSING_DELAY": "1s",
		"EKAMOCK_FAIL_DOCUMENTS":   "true",
		"EKAMOCK_TOKEN_SIGN_KEY":   "mock-key",
		"EKAMOCK_TOKEN_DURATION":   "1h",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "client-1", cfg.Auth.ClientID)
	assert.Equal(t, "secret-1", cfg.Auth.ClientSecret)

	assert.Equal(t, "https://api.eka.care", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)

	assert.Equal(t, 5*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 2*time.Minute, cfg.Poll.Timeout)

	assert.Equal(t, "localhost:9999", cfg.Mock.Address)
	assert.Equal(t, time.Second, cfg.Mock.ProcessingDelay)
	assert.True(t, cfg.Mock.FailDocuments)
	assert.Equal(t, "mock-key", cfg.Mock.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.Mock.TokenDuration)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Empty(t, cfg.Auth.ClientID)
	assert.Empty(t, cfg.API.BaseURL)
	assert.Zero(t, cfg.Poll.Interval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"EKACARE_POLL_INTERVAL": "not-a-duration"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
