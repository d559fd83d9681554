package config

import "errors"

// Validation errors returned by the config view constructors when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingCredentials indicates that neither flags nor environment
	// variables supplied a client id/secret pair.
	ErrMissingCredentials = errors.New("missing client credentials")
	// ErrNoFileProvided indicates that no document file path was given.
	ErrNoFileProvided = errors.New("no file provided")
	// ErrInvalidAPIConfigs indicates invalid remote API settings
	// (for example, an empty base URL).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidPollConfigs indicates invalid polling settings
	// (for example, a negative poll interval).
	ErrInvalidPollConfigs = errors.New("invalid poll configuration")
	// ErrInvalidMockConfigs indicates invalid mock server settings
	// (for example, an empty listen address or sign key).
	ErrInvalidMockConfigs = errors.New("invalid mock server configuration")
)
