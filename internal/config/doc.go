// Package config loads and merges go-eka-mr configuration from environment
// variables, command-line flags, and an optional JSON file.
//
// The merged [StructuredConfig] is the single source of truth; binaries use
// the view constructors ([GetClientConfig], [GetMockConfig]) to obtain a
// validated, defaults-applied slice of it.
package config
