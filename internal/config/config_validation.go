// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] for values no source may
// supply. Completeness is checked later by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.EWS.MaxThrottleRetries < 0 || cfg.EWS.RequestTimeout < 0 {
		return ErrInvalidEWSConfigs
	}
	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.EWS.Endpoint == "" {
		return ErrInvalidEWSConfigs
	}

	if cfg.EWS.Token == "" && cfg.EWS.Username == "" {
		return ErrInvalidEWSConfigs
	}

	if cfg.EWS.MaxThrottleRetries < 0 || cfg.EWS.RequestTimeout <= 0 {
		return ErrInvalidEWSConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
