package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultModel   = "gpt-4o-mini"
	defaultAssetID = "dogecoin"
	keyFileName    = "openai_key"
)

type LogConfig struct {
	Level  string `json:"level"`  // trace|debug|info|warn|error
	Format string `json:"format"` // json|console
}

type Config struct {
	Model      string    `json:"model"`
	BaseURL    string    `json:"base_url,omitempty"`
	AssetID    string    `json:"asset_id"`    // CoinGecko asset id for the price feed
	HistoryCap int       `json:"history_cap"` // max retained conversation messages
	Log        LogConfig `json:"log"`

	apiKey string // loaded from the key file or environment, never serialized
}

func LoadConfig() (*Config, error) {
	// .env is optional; missing file is not an error
	_ = godotenv.Load()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.applyDefaults()
	config.loadAPIKey()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.AssetID == "" {
		c.AssetID = defaultAssetID
	}
	if c.HistoryCap <= 0 {
		c.HistoryCap = 12
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// loadAPIKey reads the credential: environment wins, then the key file.
func (c *Config) loadAPIKey() {
	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		c.apiKey = key
		return
	}
	keyPath, err := KeyPath()
	if err != nil {
		return
	}
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return
	}
	c.apiKey = strings.TrimSpace(string(data))
}

func (c *Config) HasAPIKey() bool {
	return c.apiKey != ""
}

func (c *Config) GetAPIKey() string {
	return c.apiKey
}

// SetAPIKey stores the secret at the per-user key path with owner-only
// permissions and keeps it in memory for this process.
func (c *Config) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("empty api key")
	}
	keyPath, err := KeyPath()
	if err != nil {
		return fmt.Errorf("failed to get key path: %w", err)
	}
	if err := ensureConfigDir(keyPath); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(keyPath, []byte(key+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	c.apiKey = key
	return nil
}

// ClearAPIKey removes the stored credential file.
func ClearAPIKey() error {
	keyPath, err := KeyPath()
	if err != nil {
		return err
	}
	if err := os.Remove(keyPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// KeyPath is the fixed per-user location of the API key file.
func KeyPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, keyFileName), nil
}

func configDir() (string, error) {
	// Use DOGEPET_HOME if set, otherwise the user's home directory
	if petHome := os.Getenv("DOGEPET_HOME"); petHome != "" {
		return filepath.Join(petHome, ".dogepet"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".dogepet"), nil
}

func getConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Model:      defaultModel,
		AssetID:    defaultAssetID,
		HistoryCap: 12,
		Log:        LogConfig{Level: "info", Format: "console"},
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}
