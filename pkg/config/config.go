/*
Package config manages TOML config for the uncommon CLI and server.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/ebmartin/uncommon/internal/utils"
	"github.com/ebmartin/uncommon/pkg/analyze"
)

// Config holds the entire config structure
type Config struct {
	Ranker RankerConfig `toml:"ranker"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// RankerConfig tunes candidate selection.
type RankerConfig struct {
	MinLength      int      `toml:"min_length"`
	MaxResults     int      `toml:"max_results"`
	ExtraStopwords []string `toml:"extra_stopwords"`
}

// StoreConfig selects the personal dictionary backend.
type StoreConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `toml:"backend"`
	// Path overrides the default slot location. Empty means a file
	// under the config directory.
	Path string `toml:"path"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxTextLen   int `toml:"max_text_len"`
	DefaultLimit int `toml:"default_limit"`
	MaxNearby    int `toml:"max_nearby"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Ranker: RankerConfig{
			MinLength:  analyze.DefaultMinLength,
			MaxResults: analyze.DefaultLimit,
		},
		Store: StoreConfig{
			Backend: "file",
		},
		Server: ServerConfig{
			MaxTextLen:   4 * 1024 * 1024,
			DefaultLimit: analyze.DefaultLimit,
			MaxNearby:    8,
		},
	}
}

// RankerOptions converts the ranker section into analyze options.
func (c *Config) RankerOptions() analyze.Options {
	opts := analyze.Options{
		MinLength: c.Ranker.MinLength,
		Limit:     c.Ranker.MaxResults,
		Stopwords: analyze.DefaultStopwords(),
	}
	if len(c.Ranker.ExtraStopwords) > 0 {
		for _, w := range c.Ranker.ExtraStopwords {
			if n := utils.NormalizeWord(w); n != "" {
				opts.Stopwords[n] = struct{}{}
			}
		}
	}
	return opts
}

// StorePath resolves the personal dictionary slot location, falling back
// to a file under the config directory when unset.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return utils.GetAbsolutePath(c.Store.Path)
	}
	configDir, err := GetConfigDir()
	if err != nil {
		configDir = "."
	}
	if c.Store.Backend == "sqlite" {
		return filepath.Join(configDir, "personal_dictionary.db")
	}
	return filepath.Join(configDir, "personal_dictionary.json")
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/uncommon
// 2. ~/Library/Application Support/uncommon (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "uncommon")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "uncommon")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/uncommon/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever sections still parse from a broken file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if rankerSection, ok := utils.ExtractSection(tempConfig, "ranker"); ok {
		extractRankerConfig(rankerSection, &config.Ranker)
	}
	if storeSection, ok := utils.ExtractSection(tempConfig, "store"); ok {
		extractStoreConfig(storeSection, &config.Store)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	return config, nil
}

// extractRankerConfig extracts ranker configuration from a map
func extractRankerConfig(data map[string]any, ranker *RankerConfig) {
	if val, ok := utils.ExtractInt64(data, "min_length"); ok {
		ranker.MinLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		ranker.MaxResults = val
	}
	if val, ok := utils.ExtractStringSlice(data, "extra_stopwords"); ok {
		ranker.ExtraStopwords = val
	}
}

// extractStoreConfig extracts store configuration from a map
func extractStoreConfig(data map[string]any, store *StoreConfig) {
	if val, ok := utils.ExtractString(data, "backend"); ok {
		store.Backend = val
	}
	if val, ok := utils.ExtractString(data, "path"); ok {
		store.Path = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_text_len"); ok {
		server.MaxTextLen = val
	}
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		server.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_nearby"); ok {
		server.MaxNearby = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
