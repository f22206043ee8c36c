// file: config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Server struct {
		Addr string `toml:"addr" validate:"required"`
		Mode string `toml:"mode"` // debug / release
	} `toml:"server"`

	Database struct {
		DSN                 string `toml:"dsn" validate:"required"`
		MaxIdleConns        int    `toml:"max_idle_conns"`
		MaxOpenConns        int    `toml:"max_open_conns"`
		ConnMaxLifetimeMins int    `toml:"conn_max_lifetime_minutes"`
	} `toml:"database"`

	Redis struct {
		Addr     string `toml:"addr" validate:"required"`
		Password string `toml:"password"`
		DB       int    `toml:"db"`
		PoolSize int    `toml:"pool_size"`
	} `toml:"redis"`

	JWT struct {
		Secret      string `toml:"secret" validate:"required,min=16"`
		ExpireHours int    `toml:"expire_hours"`
	} `toml:"jwt"`
}

// Load 读取并校验 TOML 配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	// 连接池默认值
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 10
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 100
	}
	if cfg.Database.ConnMaxLifetimeMins == 0 {
		cfg.Database.ConnMaxLifetimeMins = 60
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = 100
	}

	return &cfg, nil
}
