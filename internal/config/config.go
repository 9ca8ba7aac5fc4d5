package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Business BusinessConfig `yaml:"business"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// StorageConfig selects the persistence driver: "file" keeps per-key
// JSON documents under DataDir, "postgres" uses the database section.
type StorageConfig struct {
	Driver  string `yaml:"driver"`
	DataDir string `yaml:"data_dir"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type BusinessConfig struct {
	Name          string `yaml:"name"`
	EmergencyCode string `yaml:"emergency_code"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{
		Server:  ServerConfig{Port: 3000},
		Storage: StorageConfig{Driver: "file", DataDir: "data"},
		Business: BusinessConfig{
			Name:          "لانجولتو",
			EmergencyCode: "999",
		},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if cfg.Storage.Driver != "file" && cfg.Storage.Driver != "postgres" {
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return cfg, nil
}
