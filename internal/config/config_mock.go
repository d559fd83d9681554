package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-eka-mr/models"
)

// Defaults applied by [GetMockConfig]. The sign key default is deliberately
// weak — the mock server is a local development tool, never a real service.
const (
	DefaultMockAddress         = "localhost:8080"
	DefaultMockProcessingDelay = 3 * time.Second
	DefaultMockTokenSignKey    = "eka-mock-dev-key"
	DefaultMockTokenDuration   = time.Hour
)

// MockConfig is the configuration view for the bundled mock API server.
type MockConfig struct {
	// Address is the TCP listen address in "host:port" format.
	Address string
	// ProcessingDelay is how long a document stays "pending".
	ProcessingDelay time.Duration
	// FailDocuments makes every document end in status "failed".
	FailDocuments bool
	// TokenSignKey signs and verifies issued JWT access tokens.
	TokenSignKey string
	// TokenDuration is the lifetime of issued access tokens.
	TokenDuration time.Duration
	// Credentials, when non-empty, restricts login to this exact pair.
	// With an empty pair the mock accepts any non-empty credentials.
	Credentials models.Credentials
}

// GetMockConfig builds and validates the mock server config view from the
// merged structured configuration.
func GetMockConfig() (*MockConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	mockCfg := &MockConfig{
		Address:         cfg.Mock.Address,
		ProcessingDelay: cfg.Mock.ProcessingDelay,
		FailDocuments:   cfg.Mock.FailDocuments,
		TokenSignKey:    cfg.Mock.TokenSignKey,
		TokenDuration:   cfg.Mock.TokenDuration,
		Credentials: models.Credentials{
			ClientID:     cfg.Auth.ClientID,
			ClientSecret: cfg.Auth.ClientSecret,
		},
	}
	mockCfg.applyDefaults()

	return mockCfg, mockCfg.validate()
}

func (cfg *MockConfig) applyDefaults() {
	if cfg.Address == "" {
		cfg.Address = DefaultMockAddress
	}
	if cfg.ProcessingDelay <= 0 {
		cfg.ProcessingDelay = DefaultMockProcessingDelay
	}
	if cfg.TokenSignKey == "" {
		cfg.TokenSignKey = DefaultMockTokenSignKey
	}
	if cfg.TokenDuration <= 0 {
		cfg.TokenDuration = DefaultMockTokenDuration
	}
}
