// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces variables for deployments that share an environment
// with other services. TAXII_SERVER_ADDRESS overrides SERVER_ADDRESS.
const envPrefix = "TAXII_"

// parseEnv fills cfg from plain variables first and then from their
// [envPrefix] forms. Unset variables leave fields untouched, so a prefixed
// value wins only where it is present.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error getting %s env configs: %w", envPrefix, err)
	}

	return nil
}
