// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks that the merged [StructuredConfig] is usable at all.
// Settings required only by the client runtime are checked by
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return ErrInvalidLogConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.APIURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Account.ID == "" {
		return ErrInvalidAccountConfigs
	}

	if cfg.Sync.PageSize <= 0 || cfg.Sync.MaxChanges < 0 || cfg.Sync.MaxChangesIterations <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.PoolSize <= 0 || cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
