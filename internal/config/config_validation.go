// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the CLI config view satisfies its invariants.
//
// Credentials must be present (either flags or environment), a file must be
// given, and the polling settings must be positive. Task values are checked
// later by the document service so that library users get the same
// validation as CLI users.
func (cfg *ClientConfig) validate() error {
	if cfg.Credentials.ClientID == "" || cfg.Credentials.ClientSecret == "" {
		return ErrMissingCredentials
	}

	if cfg.API.BaseURL == "" {
		return ErrInvalidAPIConfigs
	}

	if cfg.Poll.Interval <= 0 || cfg.Poll.Timeout <= 0 {
		return ErrInvalidPollConfigs
	}

	if cfg.Run.File == "" {
		return ErrNoFileProvided
	}

	return nil
}

func (cfg *MockConfig) validate() error {
	if cfg.Address == "" || cfg.TokenSignKey == "" {
		return ErrInvalidMockConfigs
	}

	return nil
}
