// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_API_URL":         "https://mail.example.com/api",
		"ADAPTER_ACCESS_TOKEN":    "tok",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"ACCOUNT_ID": "acc",

		"SYNC_PAGE_SIZE":              "20",
		"SYNC_MAX_CHANGES":            "500",
		"SYNC_MAX_CHANGES_ITERATIONS": "7",
		"SYNC_MAILBOX_ROLE":           "inbox",

		"WORKERS_POOL_SIZE":     "2",
		"WORKERS_SYNC_INTERVAL": "1m",

		"LOG_LEVEL": "debug",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://mail.example.com/api", cfg.Adapter.APIURL)
	assert.Equal(t, "tok", cfg.Adapter.AccessToken)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "acc", cfg.Account.ID)
	assert.Equal(t, 20, cfg.Sync.PageSize)
	assert.Equal(t, 500, cfg.Sync.MaxChanges)
	assert.Equal(t, 7, cfg.Sync.MaxChangesIterations)
	assert.Equal(t, "inbox", cfg.Sync.MailboxRole)
	assert.Equal(t, 2, cfg.Workers.PoolSize)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "often")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnvFrom_IgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("ADAPTER_API_URL", "https://process.example.com/api")

	cfg := &StructuredConfig{}
	err := parseEnvFrom(cfg, map[string]string{
		"ACCOUNT_ID":     "acc",
		"SYNC_PAGE_SIZE": "50",
	})
	require.NoError(t, err)

	assert.Empty(t, cfg.Adapter.APIURL)
	assert.Equal(t, "acc", cfg.Account.ID)
	assert.Equal(t, 50, cfg.Sync.PageSize)
}

func TestParseEnvFrom_Errors(t *testing.T) {
	tests := map[string]map[string]string{
		"bad int":      {"SYNC_PAGE_SIZE": "twenty"},
		"bad duration": {"ADAPTER_REQUEST_TIMEOUT": "soon"},
	}
	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			err := parseEnvFrom(&StructuredConfig{}, environ)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "environment")
		})
	}
}
