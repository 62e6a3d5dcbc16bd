// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// ClientConfig is the top-level configuration container for the notes client.
// It is populated by merging environment variables, command-line flags, and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend addresses and timeouts used by the
	// HTTP gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged under the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the remote note gateway.
type Adapter struct {
	// PrimaryAddress is the preferred backend base URL. It is probed once
	// per process; when unreachable (or empty) the gateway falls back to
	// FallbackAddress.
	// Env: ADAPTER_ADDRESS
	PrimaryAddress string `env:"ADDRESS"`

	// FallbackAddress is the base URL used when the primary backend fails
	// the liveness probe. Typically a locally running backend.
	// Env: ADAPTER_FALLBACK_ADDRESS
	FallbackAddress string `env:"FALLBACK_ADDRESS"`

	// ProbeTimeout bounds the liveness probe request.
	// Env: ADAPTER_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// RequestTimeout is the timeout for every outbound gateway request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// FilePath is the path of the JSON key-value file holding the session,
	// per-user note caches, trash partitions, and reminders. The reserved
	// value ":memory:" keeps everything in process memory.
	// Env: STORAGE_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval defines how often the background refresh job
	// reconciles the local cache with the backend. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetClientConfig loads, merges, and validates the client configuration from
// all sources in priority order (earlier wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *ClientConfig with defaults applied, or an error
// if any source fails to load or the merged config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
