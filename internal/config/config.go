package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port               string `envconfig:"PORT" default:"8080"`
	Environment        string `envconfig:"ENV" default:"development"`
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`

	DBMaxOpenConns    int `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns    int `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	DBConnMaxIdleMins int `envconfig:"DB_CONN_MAX_IDLE_MINS" default:"5"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
