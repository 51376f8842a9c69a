package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir    string `yaml:"data_dir"`
	FilePrefix string `yaml:"file_prefix"`
	Response   struct {
		TopStocks int `yaml:"top_stocks"`
	} `yaml:"response"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Detailed bool   `yaml:"detailed"`
	} `yaml:"log"`
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.FilePrefix == "" {
		return fmt.Errorf("file_prefix cannot be empty")
	}
	if c.Response.TopStocks <= 0 {
		return fmt.Errorf("response.top_stocks must be positive, got %d", c.Response.TopStocks)
	}
	if c.Log.Format != "" && c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be 'json' or 'text', got '%s'", c.Log.Format)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// Missing config file falls back to defaults.
	} else if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.FilePrefix == "" {
		c.FilePrefix = "ClientExecution"
	}
	if c.Response.TopStocks == 0 {
		c.Response.TopStocks = 10
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
