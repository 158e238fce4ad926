// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// processEnvironment snapshots the variables of the running process.
func processEnvironment() map[string]string {
	return env.ToMap(os.Environ())
}

// parseEnv fills cfg from environ following the `env`/`envPrefix` tags of
// [StructuredConfig]. Variables that are not set leave their field zero so
// mergo keeps the value of an earlier source.
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	return nil
}
