// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if !cfg.Storage.UseRedis() {
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
			return fmt.Errorf("%w: sqlite dsn must point to a file", ErrInvalidStorageConfigs)
		}
	}

	if cfg.Adapter.HTTPAddress == "" {
		return fmt.Errorf("%w: empty server address", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.ReconcileInterval <= 0 {
		return fmt.Errorf("%w: reconcile interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
