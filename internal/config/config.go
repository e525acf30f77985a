package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	LedgerDriverMemory = "memory"
	LedgerDriverRedis  = "redis"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Language   string `yaml:"language" env:"GAME_LANGUAGE" env-default:"en"`
	Ledger     Ledger `yaml:"ledger"`
	Redis      Redis  `yaml:"redis"`
}

type Ledger struct {
	Driver string `yaml:"driver" env:"LEDGER_DRIVER" env-default:"memory"`
}

type Redis struct {
	Host      string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port      string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	LedgerKey string `yaml:"ledger-key" env:"REDIS_LEDGER_KEY" env-default:"tictactoe:moves"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
