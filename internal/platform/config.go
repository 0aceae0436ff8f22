package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDirName is the directory under the user config dir holding jot's config.
	ConfigDirName = "jot"
	// ConfigFileName is the name of the config file.
	ConfigFileName = "config.yaml"
	// VaultEnv names the environment variable overriding the default vault.
	VaultEnv = "JOT_VAULT"
)

// Config holds the application settings.
type Config struct {
	// VaultsDir is where vaults addressed by bare name live.
	VaultsDir string `yaml:"vaults_dir"`
	// DefaultVault is a vault name (under VaultsDir) or a path used when no
	// vault is given and none is found above the working directory.
	DefaultVault string `yaml:"default_vault,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	vaultsDir := "jot"
	if home, err := os.UserHomeDir(); err == nil {
		vaultsDir = filepath.Join(home, "jot")
	}
	return &Config{
		VaultsDir: vaultsDir,
		LogLevel:  "info",
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.VaultsDir == "" {
		return fmt.Errorf("vaults_dir is required")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.VaultsDir != "" {
		c.VaultsDir = other.VaultsDir
	}
	if other.DefaultVault != "" {
		c.DefaultVault = other.DefaultVault
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

// Level returns the configured slog level, Info when unset.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// VaultPath resolves a vault reference: anything that looks like a path is
// used as is, a bare name is looked up under VaultsDir.
func (c *Config) VaultPath(ref string) string {
	if filepath.IsAbs(ref) || strings.ContainsRune(ref, filepath.Separator) || strings.HasPrefix(ref, ".") {
		return ref
	}
	return filepath.Join(c.VaultsDir, ref)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return level, nil
}

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger
	// ConfigDir overrides the directory searched for the config file.
	ConfigDir string
	// Getenv reads environment variables; os.Getenv by default.
	Getenv func(string) string
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	dir := ""
	if base, err := os.UserConfigDir(); err == nil {
		dir = filepath.Join(base, ConfigDirName)
	}
	return &Loader{logger: logger, ConfigDir: dir, Getenv: os.Getenv}
}

// Path returns the config file location.
func (l *Loader) Path() string {
	if l.ConfigDir == "" {
		return ""
	}
	return filepath.Join(l.ConfigDir, ConfigFileName)
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (<user config dir>/jot/config.yaml)
// 3. Environment (JOT_VAULT)
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	if path := l.Path(); path != "" {
		userConfig, err := LoadFromFile(path)
		switch {
		case err == nil:
			l.logger.Debug("Loaded user config", slog.String("path", path))
			config.Merge(userConfig)
		case errors.Is(err, fs.ErrNotExist):
			l.logger.Debug("No user config found", slog.String("path", path))
		default:
			return nil, err
		}
	}

	if vault := l.Getenv(VaultEnv); vault != "" {
		l.logger.Debug("Using vault from environment", slog.String("vault", vault))
		config.DefaultVault = vault
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
