// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-eka-mr.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the Eka Care API client credentials.
	Auth Auth `envPrefix:"EKACARE_"`

	// API holds the remote endpoint address and transport timeouts.
	API API `envPrefix:"EKACARE_"`

	// Poll holds the result-polling settings.
	Poll Poll `envPrefix:"EKACARE_"`

	// Run holds per-invocation CLI settings (file, task, output mode).
	// Populated from flags only; there is no sensible env mapping for a
	// one-shot file path or output mode.
	Run Run

	// Mock holds settings for the bundled mock API server binary.
	Mock Mock `envPrefix:"EKAMOCK_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the EKACARE_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"EKACARE_CONFIG"`
}

// Auth holds the client credentials used by the account login exchange.
type Auth struct {
	// ClientID is the API client identifier.
	// Env: EKACARE_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the API client secret. Must be kept confidential.
	// Env: EKACARE_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`
}

// API holds remote endpoint settings for the outbound transport layer.
type API struct {
	// BaseURL is the root URL of the Eka Care API
	// (e.g. "https://api.eka.care"). A trailing slash is stripped.
	// Env: EKACARE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound HTTP calls
	// (e.g. "30s", "1m"). It bounds a single call, not the polling loop.
	// Env: EKACARE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Poll holds the submit-and-wait polling settings.
type Poll struct {
	// Interval is how long to sleep between result fetches (e.g. "10s").
	// Env: EKACARE_POLL_INTERVAL
	Interval time.Duration `env:"POLL_INTERVAL"`

	// Timeout is the wall-clock budget for the whole polling loop
	// (e.g. "5m"). Exceeding it aborts the wait with a timeout error.
	// Env: EKACARE_POLL_TIMEOUT
	Timeout time.Duration `env:"POLL_TIMEOUT"`
}

// Run holds per-invocation CLI settings.
type Run struct {
	// File is the path of the document to upload.
	File string

	// Task selects the processing pipeline: "smart", "pii" or "both".
	Task string

	// DocType is the document type query parameter ("lr" = lab report).
	DocType string

	// NoWait submits the document and exits without polling for a result.
	NoWait bool

	// Verbose prints the full result payloads instead of a summary.
	Verbose bool

	// Quiet suppresses all progress output; only errors are printed.
	Quiet bool

	// JSON prints the raw result JSON instead of human-readable text.
	JSON bool

	// CopyID copies the returned document id to the system clipboard.
	CopyID bool
}

// Mock holds settings for the bundled mock API server.
type Mock struct {
	// Address is the TCP address the mock server listens on,
	// in "host:port" format.
	// Env: EKAMOCK_ADDRESS
	Address string `env:"ADDRESS"`

	// ProcessingDelay is how long a submitted document stays "pending"
	// before the mock reports it completed.
	// Env: EKAMOCK_PROCESSING_DELAY
	ProcessingDelay time.Duration `env:"PROCESSING_DELAY"`

	// FailDocuments makes every submitted document end in status "failed"
	// instead of completing. Useful for exercising error paths.
	// Env: EKAMOCK_FAIL_DOCUMENTS
	FailDocuments bool `env:"FAIL_DOCUMENTS"`

	// TokenSignKey is the secret used to sign and verify the mock
	// server's JWT access tokens.
	// Env: EKAMOCK_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is how long issued access tokens remain valid.
	// Env: EKAMOCK_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}
