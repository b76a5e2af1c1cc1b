// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// server invariants before it is used at startup: a signing secret, a
// database DSN and an HTTP address are mandatory.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.TokenSignKey) == "" {
		return ErrEmptyTokenSignKey
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
