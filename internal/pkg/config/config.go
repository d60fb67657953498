package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerPort string `yaml:"server_port"`
	BaseUrl    string `yaml:"base_url"`

	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`

	PrivateKeyFile string `yaml:"private_key_file"`

	// DTRCacheTTLMinutes bounds how long a generated DTR sheet is served from
	// cache before it is recomputed from the raw events.
	DTRCacheTTLMinutes int `yaml:"dtr_cache_ttl_minutes"`
}

func NewConfig(path string) (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}

	if c.ServerPort == "" {
		c.ServerPort = ":8080"
	}
	if c.PrivateKeyFile == "" {
		c.PrivateKeyFile = "./private.pem"
	}
	if c.DTRCacheTTLMinutes <= 0 {
		c.DTRCacheTTLMinutes = 10
	}

	return &c, nil
}
