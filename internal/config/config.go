// Package config provides runtime configuration values for the simulator.
package config

import "os"

// Config holds configuration knobs for the shop process.
type Config struct {
	ServiceName  string
	Env          string
	AuditLogPath string
	MetricsAddr  string // empty disables the metrics endpoint
	SeedData     bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	switch v {
	case "":
		return def
	case "0", "false", "no":
		return false
	default:
		return true
	}
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		ServiceName:  getenv("SERVICE_NAME", "grocery-shop"),
		Env:          getenv("ENV", "dev"),
		AuditLogPath: getenv("AUDIT_LOG_PATH", "purchases.txt"),
		MetricsAddr:  getenv("METRICS_ADDR", ""),
		SeedData:     boolenv("SEED_DATA", true),
	}
}
