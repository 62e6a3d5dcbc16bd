// SPDX-License-Identifier: Apache-2.0

// Package config loads and merges the client configuration from environment
// variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (earlier sources win for non-zero
// fields): environment, flags, JSON. [GetClientConfig] is the single entry
// point; it returns a validated [ClientConfig] with defaults applied.
package config
