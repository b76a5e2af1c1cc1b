// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// secretFiles lists variables that name a file holding the value, the way
// docker and kubernetes mount secrets.
type secretFiles struct {
	TokenSignKey string `env:"APP_TOKEN_SIGN_KEY_FILE,file"`
}

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` tags of [StructuredConfig].
//
// APP_TOKEN_SIGN_KEY wins over APP_TOKEN_SIGN_KEY_FILE when both are set.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var secrets secretFiles
	if err := env.Parse(&secrets); err != nil {
		return fmt.Errorf("error reading secret files: %w", err)
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = strings.TrimSpace(secrets.TokenSignKey)
	}

	return nil
}
