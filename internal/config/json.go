package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Adapter struct {
		APIURL         string   `json:"api_url"`
		AccessToken    string   `json:"access_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Account struct {
		ID string `json:"id"`
	} `json:"account,omitempty"`

	Sync struct {
		PageSize             int    `json:"page_size"`
		MaxChanges           int    `json:"max_changes"`
		MaxChangesIterations int    `json:"max_changes_iterations"`
		MailboxRole          string `json:"mailbox_role"`
	} `json:"sync,omitempty"`

	Workers struct {
		PoolSize     int      `json:"pool_size"`
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
		Adapter: Adapter{
			APIURL:         jsonCfg.Adapter.APIURL,
			AccessToken:    jsonCfg.Adapter.AccessToken,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Account: Account{ID: jsonCfg.Account.ID},
		Sync: Sync{
			PageSize:             jsonCfg.Sync.PageSize,
			MaxChanges:           jsonCfg.Sync.MaxChanges,
			MaxChangesIterations: jsonCfg.Sync.MaxChangesIterations,
			MailboxRole:          jsonCfg.Sync.MailboxRole,
		},
		Workers: Workers{
			PoolSize:     jsonCfg.Workers.PoolSize,
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		Log: Log{Level: jsonCfg.Log.Level},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
