package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the empapp configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the empapp configuration directory
const ConfigDirName = ".empapp"

// Config holds all empapp configuration
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Server  ServerConfig  `yaml:"server"`
}

// DataConfig holds configuration for the record store and operations log
type DataConfig struct {
	Dir       string `yaml:"dir"`
	File      string `yaml:"file"`
	AuditFile string `yaml:"audit_file"`
}

// LoggingConfig holds configuration for application logging
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	Format string `yaml:"format"`
}

// ServerConfig holds configuration for the MCP server
type ServerConfig struct {
	Name              string `yaml:"name"`
	Version           string `yaml:"version"`
	InactivityTimeout int    `yaml:"inactivity_timeout"`
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// DataPath returns the record store path, Dir joined with File.
func (c *Config) DataPath() string {
	return filepath.Join(c.Data.Dir, c.Data.File)
}

// AuditPath returns the operations database path, Dir joined with AuditFile.
func (c *Config) AuditPath() string {
	return filepath.Join(c.Data.Dir, c.Data.AuditFile)
}

// Load reads config from .empapp/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking up
// the directory tree. EMPAPP_* environment variables (including those from a
// .env file, if present) override values from the file.
func Load(workDir string) (*Config, error) {
	// Best-effort .env so EMPAPP_* overrides work without exporting.
	_ = godotenv.Load()

	configDir, err := FindConfigDir(workDir)
	if err != nil {
		// No config dir found, run on defaults plus environment
		cfg := applyEnvOverrides(DefaultConfig())
		if err := Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults, applies environment overrides, and
// validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := applyEnvOverrides(DefaultConfig())
			if err := Validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Merge with defaults, then let the environment win
	merged := applyEnvOverrides(Merge(loaded, DefaultConfig()))

	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .empapp directory by walking up from startDir.
// Returns the path to the .empapp directory if found.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, config not found
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .empapp directory if it doesn't exist.
// Returns the path to the .empapp directory.
func EnsureConfigDir(workDir string) (string, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)

	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return configDir, nil
}

// Validate checks that config values are valid.
// Returns an error if validation fails.
func Validate(cfg *Config) error {
	if !IsValidLevel(cfg.Logging.Level) {
		return fmt.Errorf("%w: logging level must be one of %v, got %q",
			ErrInvalidConfig, ValidLevels, cfg.Logging.Level)
	}

	if !IsValidFormat(cfg.Output.Format) {
		return fmt.Errorf("%w: output format must be one of %v, got %q",
			ErrInvalidConfig, ValidFormats, cfg.Output.Format)
	}

	if cfg.Data.File == "" {
		return fmt.Errorf("%w: data file name must not be empty", ErrInvalidConfig)
	}

	if cfg.Data.AuditFile == "" {
		return fmt.Errorf("%w: audit file name must not be empty", ErrInvalidConfig)
	}

	if cfg.Server.InactivityTimeout < 0 {
		return fmt.Errorf("%w: inactivity_timeout must be non-negative, got %d",
			ErrInvalidConfig, cfg.Server.InactivityTimeout)
	}

	return nil
}

// SaveDefault writes the default configuration to .empapp/config.yaml in
// workDir. Creates the .empapp directory if it doesn't exist.
func SaveDefault(workDir string) (string, error) {
	configDir, err := EnsureConfigDir(workDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	// Add header comment
	header := "# empapp configuration\n# Values here merge over built-in defaults; EMPAPP_* environment variables win.\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return configPath, nil
}
