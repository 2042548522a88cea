// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the sync
// client. It is populated by merging values from a .env file, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the JMAP API endpoint and the credentials sent with
	// every request.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Account identifies the single account this engine instance tracks.
	Account Account `envPrefix:"ACCOUNT_"`

	// Sync tunes query paging and delta re-fetch loops.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds the network pool size and the periodic sync interval.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// APIURL is the JMAP API endpoint batches are POSTed to
	// (e.g. "https://mail.example.com/jmap/api/").
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// AccessToken is the bearer token attached to every request.
	// Env: ADAPTER_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// RequestTimeout bounds one round trip (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Account identifies the synchronized account.
type Account struct {
	// ID is the JMAP account id.
	// Env: ACCOUNT_ID
	ID string `env:"ID"`
}

// Sync tunes the orchestrator.
type Sync struct {
	// PageSize is the number of items fetched per query page.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// MaxChanges is sent as the maxChanges hint of changes calls. Zero lets
	// the server decide.
	// Env: SYNC_MAX_CHANGES
	MaxChanges int `env:"MAX_CHANGES"`

	// MaxChangesIterations caps how many delta pages one refresh fetches
	// while the server keeps reporting more changes.
	// Env: SYNC_MAX_CHANGES_ITERATIONS
	MaxChangesIterations int `env:"MAX_CHANGES_ITERATIONS"`

	// MailboxRole is the role of the mailbox the headless client keeps a
	// query window for (e.g. "inbox").
	// Env: SYNC_MAILBOX_ROLE
	MailboxRole string `env:"MAILBOX_ROLE"`
}

// Workers holds background execution settings.
type Workers struct {
	// PoolSize is the number of concurrent network round trips.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`

	// SyncInterval is the period of the background refresh.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaults fills every field left empty by all sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{RequestTimeout: 30 * time.Second},
		Sync: Sync{
			PageSize:             30,
			MaxChangesIterations: 10,
			MailboxRole:          "inbox",
		},
		Workers: Workers{
			PoolSize:     2,
			SyncInterval: 5 * time.Minute,
		},
		Log: Log{Level: "info"},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. .env file in the working directory (does not override real env)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
