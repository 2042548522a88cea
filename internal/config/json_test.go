package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"adapter": {
			"api_url": "https://mail.example.com/api",
			"access_token": "tok",
			"request_timeout": "20s"
		},
		"account": { "id": "acc" },
		"sync": {
			"page_size": 15,
			"max_changes": 200,
			"max_changes_iterations": 4,
			"mailbox_role": "inbox"
		},
		"workers": { "pool_size": 3, "sync_interval": "2m" },
		"log": { "level": "warn" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "https://mail.example.com/api", cfg.Adapter.APIURL)
	assert.Equal(t, "tok", cfg.Adapter.AccessToken)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "acc", cfg.Account.ID)
	assert.Equal(t, 15, cfg.Sync.PageSize)
	assert.Equal(t, 200, cfg.Sync.MaxChanges)
	assert.Equal(t, 4, cfg.Sync.MaxChangesIterations)
	assert.Equal(t, "inbox", cfg.Sync.MailboxRole)
	assert.Equal(t, 3, cfg.Workers.PoolSize)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers":{"sync_interval":1000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.SyncInterval)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":{"request_timeout":"soon"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
