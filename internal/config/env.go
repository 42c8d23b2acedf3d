package config

import "os"

// Environment variables recognized by Load. Each overrides the corresponding
// config file value; godotenv loads them from a .env file when present.
const (
	EnvDataDir   = "EMPAPP_DATA_DIR"
	EnvDataFile  = "EMPAPP_DATA_FILE"
	EnvAuditFile = "EMPAPP_AUDIT_FILE"
	EnvLogLevel  = "EMPAPP_LOG_LEVEL"
	EnvLogFile   = "EMPAPP_LOG_FILE"
	EnvFormat    = "EMPAPP_FORMAT"
)

// applyEnvOverrides replaces config values with EMPAPP_* environment
// variables where set. Applied after the file merge, before validation.
func applyEnvOverrides(cfg *Config) *Config {
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.Data.File = v
	}
	if v := os.Getenv(EnvAuditFile); v != "" {
		cfg.Data.AuditFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Output.Format = v
	}
	return cfg
}
