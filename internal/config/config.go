package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const minBoardSize = 2

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel       string `yaml:"log-level"       env:"LOG_LEVEL"       env-default:"info"`
	HTTPPort       string `yaml:"http-port"       env:"HTTP_PORT"       env-default:"8080"`
	SocketPort     string `yaml:"socket-port"     env:"SOCKET_PORT"     env-default:"8081"`
	ServerPassword string `yaml:"server-password" env:"SERVER_PASSWORD" env-default:"tilous"`
	Game           Game   `yaml:"game"`
	Redis          Redis  `yaml:"redis"`

	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./tilous.db"`
}

type Game struct {
	BoardSize int `yaml:"board-size" env:"BOARD_SIZE" env-default:"15"`
}

type Redis struct {
	Host    string `yaml:"host"    env:"REDIS_HOST"    env-default:"localhost"`
	Port    string `yaml:"port"    env:"REDIS_PORT"    env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"tilous:state"`
}

// MustLoad - load all configurations in config.yml file, environment variables win over the file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Game.BoardSize < minBoardSize {
		return fmt.Errorf("%w: board size %d is less than %d", ErrInvalidConfig, that.Game.BoardSize, minBoardSize)
	}

	if that.ServerPassword == "" {
		return fmt.Errorf("%w: server password is empty", ErrInvalidConfig)
	}

	if that.Redis.Channel == "" {
		return fmt.Errorf("%w: redis channel is empty", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
