// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"time"
)

const (
	defaultFallbackAddress = "http://localhost:8080"
	defaultProbeTimeout    = 3 * time.Second
	defaultRequestTimeout  = 15 * time.Second
	defaultStorageFilePath = "notes-client.json"
	defaultRefreshInterval = 5 * time.Minute
)

// applyDefaults fills unset fields after all sources have been merged. An
// empty PrimaryAddress is allowed: the gateway then skips the liveness probe
// and talks to the fallback directly.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.FallbackAddress == "" {
		cfg.Adapter.FallbackAddress = defaultFallbackAddress
	}
	if cfg.Adapter.ProbeTimeout == 0 {
		cfg.Adapter.ProbeTimeout = defaultProbeTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.FilePath == "" {
		cfg.Storage.FilePath = defaultStorageFilePath
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
}

// validate checks that the merged [ClientConfig] satisfies the invariants the
// client relies on at startup.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.FallbackAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.ProbeTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.FilePath) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
