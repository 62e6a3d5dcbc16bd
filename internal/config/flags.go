package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a primary backend base URL
//	-fallback-address fallback backend base URL
//	-f local storage file path
//	-c/-config json file path with configs
//	-probe-timeout liveness probe timeout (e.g., "3s")
//	-request-timeout request timeout (e.g., "15s")
//	-refresh-interval background refresh interval (e.g., "5m")
func ParseFlags() *ClientConfig {
	var primaryAddress string
	var fallbackAddress string
	var storageFilePath string
	var jsonConfigPath string
	var probeTimeout time.Duration
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&primaryAddress, "a", "", "Primary backend base URL")
	flag.StringVar(&fallbackAddress, "fallback-address", "", "Fallback backend base URL")
	flag.StringVar(&storageFilePath, "f", "", "Local storage file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Liveness probe timeout (e.g., 3s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5m)")

	flag.Parse()

	return &ClientConfig{
		Adapter: Adapter{
			PrimaryAddress:  primaryAddress,
			FallbackAddress: fallbackAddress,
			ProbeTimeout:    probeTimeout,
			RequestTimeout:  requestTimeout,
		},
		Storage: Storage{
			FilePath: storageFilePath,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
