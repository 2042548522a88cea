// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom fills cfg from environ, a variable name to value map. Names
// come from the `env` and `envPrefix` tags of [StructuredConfig], so the
// adapter URL is read from ADAPTER_API_URL and the sync page size from
// SYNC_PAGE_SIZE. Unset variables leave their field at the zero value, which
// the builder treats as "not configured here".
func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error reading account config from environment: %w", err)
	}
	return nil
}
