package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Port        int `toml:"port"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// postgres
	DBHost string `toml:"db_host"`
	DBPort int    `toml:"db_port"`
	DBName string `toml:"db_name"`
	DBUser string `toml:"db_user"`
	// program cache
	ProgramCacheSizeBytes int `toml:"program_cache_size_bytes"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s missing", env)
	}

	cfg.Environment = env
	return cfg, nil
}
