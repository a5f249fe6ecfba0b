package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret  string `yaml:"secret"`
		TTLDays int    `yaml:"ttl_days"`
	} `yaml:"jwt"`

	SMS struct {
		Mode    string `yaml:"mode"`     // real, mock
		APIKey  string `yaml:"api_key"`  // Fast2SMS authorization key
		BaseURL string `yaml:"base_url"` // override for tests
	} `yaml:"sms"`
}

// Load builds the configuration once at startup. When DATABASE_URL is
// set the environment wins (test/deploy mode), otherwise the YAML file
// at CONFIG_PATH (default config/config.yaml) is used. The returned
// pointer is handed to the app and passed down by reference; there is
// no package-level config.
func Load() (*Config, error) {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.SMS.Mode = os.Getenv("SMS_MODE")
		cfg.SMS.APIKey = os.Getenv("SMS_API_KEY")
		applyDefaults(&cfg)
		return &cfg, nil
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config file %s: %w", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.TTLDays == 0 {
		cfg.JWT.TTLDays = 7
	}
	if cfg.SMS.Mode == "" {
		cfg.SMS.Mode = "mock"
	}
	if cfg.SMS.BaseURL == "" {
		cfg.SMS.BaseURL = "https://www.fast2sms.com/dev/bulkV2"
	}
}
