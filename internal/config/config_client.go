package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-eka-mr/models"
)

// Default values applied by [GetClientConfig] when neither flags, env, nor
// the JSON file supply one. The polling defaults match the remote service's
// documented recommendations.
const (
	DefaultBaseURL        = "https://api.eka.care"
	DefaultRequestTimeout = 30 * time.Second
	DefaultPollInterval   = 10 * time.Second
	DefaultPollTimeout    = 5 * time.Minute
	DefaultDocType        = "lr"
)

// ClientAPI holds network settings used by the client transport layer.
type ClientAPI struct {
	// BaseURL is the root URL of the Eka Care API without a trailing slash.
	BaseURL string
	// RequestTimeout is the timeout for a single outbound request.
	RequestTimeout time.Duration
}

// ClientPoll holds the submit-and-wait polling settings.
type ClientPoll struct {
	// Interval is the sleep between result fetches.
	Interval time.Duration
	// Timeout is the wall-clock budget for the whole wait.
	Timeout time.Duration
}

// ClientConfig is the top-level CLI configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Credentials holds the client id/secret pair.
	Credentials models.Credentials
	// API contains remote endpoint settings.
	API ClientAPI
	// Poll contains polling settings.
	Poll ClientPoll
	// Run contains per-invocation settings.
	Run Run
}

// GetClientConfig builds and validates a CLI-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the CLI runtime, applies defaults, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Credentials: models.Credentials{
			ClientID:     cfg.Auth.ClientID,
			ClientSecret: cfg.Auth.ClientSecret,
		},
		API: ClientAPI{
			BaseURL:        strings.TrimRight(cfg.API.BaseURL, "/"),
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Poll: ClientPoll{
			Interval: cfg.Poll.Interval,
			Timeout:  cfg.Poll.Timeout,
		},
		Run: cfg.Run,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.RequestTimeout <= 0 {
		cfg.API.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Poll.Interval <= 0 {
		cfg.Poll.Interval = DefaultPollInterval
	}
	if cfg.Poll.Timeout <= 0 {
		cfg.Poll.Timeout = DefaultPollTimeout
	}
	if cfg.Run.DocType == "" {
		cfg.Run.DocType = DefaultDocType
	}
	if cfg.Run.Task == "" {
		cfg.Run.Task = string(models.TaskSmart)
	}
}
