package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted both as numbers (nanoseconds) and as strings like
// "10s" or "5m" via the [Duration] wrapper.
type StructuredJSONConfig struct {
	Auth struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"auth,omitempty"`

	API struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Poll struct {
		Interval Duration `json:"interval"`
		Timeout  Duration `json:"timeout"`
	} `json:"poll,omitempty"`

	Mock struct {
		Address         string   `json:"address"`
		ProcessingDelay Duration `json:"processing_delay"`
		FailDocuments   bool     `json:"fail_documents"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenDuration   Duration `json:"token_duration"`
	} `json:"mock,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			ClientID:     jsonCfg.Auth.ClientID,
			ClientSecret: jsonCfg.Auth.ClientSecret,
		},
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Poll: Poll{
			Interval: time.Duration(jsonCfg.Poll.Interval),
			Timeout:  time.Duration(jsonCfg.Poll.Timeout),
		},
		Mock: Mock{
			Address:         jsonCfg.Mock.Address,
			ProcessingDelay: time.Duration(jsonCfg.Mock.ProcessingDelay),
			FailDocuments:   jsonCfg.Mock.FailDocuments,
			TokenSignKey:    jsonCfg.Mock.TokenSignKey,
			TokenDuration:   time.Duration(jsonCfg.Mock.TokenDuration),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
