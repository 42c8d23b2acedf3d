package config

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:       ".",
			File:      "employee_data.csv",
			AuditFile: "employees.db",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
		Output: OutputConfig{
			Format: "table",
		},
		Server: ServerConfig{
			Name:              "empapp",
			Version:           "1.0.0",
			InactivityTimeout: 30,
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Data = mergeDataConfig(loaded.Data, defaults.Data)
	result.Logging = mergeLoggingConfig(loaded.Logging, defaults.Logging)
	result.Output = mergeOutputConfig(loaded.Output, defaults.Output)
	result.Server = mergeServerConfig(loaded.Server, defaults.Server)

	return result
}

func mergeDataConfig(loaded, defaults DataConfig) DataConfig {
	result := DataConfig{}

	if loaded.Dir != "" {
		result.Dir = loaded.Dir
	} else {
		result.Dir = defaults.Dir
	}

	if loaded.File != "" {
		result.File = loaded.File
	} else {
		result.File = defaults.File
	}

	if loaded.AuditFile != "" {
		result.AuditFile = loaded.AuditFile
	} else {
		result.AuditFile = defaults.AuditFile
	}

	return result
}

func mergeLoggingConfig(loaded, defaults LoggingConfig) LoggingConfig {
	result := LoggingConfig{}

	if loaded.Level != "" {
		result.Level = loaded.Level
	} else {
		result.Level = defaults.Level
	}

	// An empty file is meaningful (log to stderr), so the loaded value is
	// taken as-is.
	result.File = loaded.File

	return result
}

func mergeOutputConfig(loaded, defaults OutputConfig) OutputConfig {
	result := OutputConfig{}

	if loaded.Format != "" {
		result.Format = loaded.Format
	} else {
		result.Format = defaults.Format
	}

	return result
}

func mergeServerConfig(loaded, defaults ServerConfig) ServerConfig {
	result := ServerConfig{}

	if loaded.Name != "" {
		result.Name = loaded.Name
	} else {
		result.Name = defaults.Name
	}

	if loaded.Version != "" {
		result.Version = loaded.Version
	} else {
		result.Version = defaults.Version
	}

	// YAML unmarshals a missing value as 0, so 0 here falls back to the
	// default. Disabling the watchdog is done with the serve command's
	// --timeout=0 flag, which bypasses the merge.
	if loaded.InactivityTimeout != 0 {
		result.InactivityTimeout = loaded.InactivityTimeout
	} else {
		result.InactivityTimeout = defaults.InactivityTimeout
	}

	return result
}

// ValidLevels lists the valid values for the logging level
var ValidLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

// IsValidLevel checks if the given logging level is valid
func IsValidLevel(level string) bool {
	for _, valid := range ValidLevels {
		if level == valid {
			return true
		}
	}
	return false
}

// ValidFormats lists the valid values for the output format
var ValidFormats = []string{"table", "yaml", "json"}

// IsValidFormat checks if the given format value is valid
func IsValidFormat(format string) bool {
	for _, valid := range ValidFormats {
		if format == valid {
			return true
		}
	}
	return false
}
