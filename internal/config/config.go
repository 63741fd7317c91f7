package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	ClearScreen bool   `yaml:"clear-screen" env:"TTT_CLEAR_SCREEN"`
	Match       Match  `yaml:"match"`
	Bot         Bot    `yaml:"bot"`
	Redis       Redis  `yaml:"redis"`
}

type Match struct {
	Rounds     int `yaml:"rounds" env:"TTT_MATCH_ROUNDS" env-default:"5"`
	WinsNeeded int `yaml:"wins-needed" env:"TTT_MATCH_WINS_NEEDED" env-default:"3"`
}

type Bot struct {
	Difficulty string `yaml:"difficulty" env:"TTT_BOT_DIFFICULTY" env-default:"medium"`
	// Seed 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"TTT_BOT_SEED" env-default:"0"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TTT_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TTT_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TTT_REDIS_PORT" env-default:"6379"`
}

// MustLoad - loads config.yml when it exists, environment variables otherwise.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)

	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// BotDifficulty - default difficulty offered in the menu.
func (that *Config) BotDifficulty() entity.Difficulty {
	difficulty, err := entity.ParseDifficulty(that.Bot.Difficulty)
	if err != nil {
		return entity.Medium
	}

	return difficulty
}

func (that *Config) validate() error {
	if _, err := entity.ParseDifficulty(that.Bot.Difficulty); err != nil {
		return fmt.Errorf("bot.difficulty: %w", err)
	}

	if that.Match.Rounds < 1 {
		return fmt.Errorf("match.rounds must be positive, got %d", that.Match.Rounds)
	}

	if that.Match.WinsNeeded < 1 {
		return fmt.Errorf("match.wins-needed must be positive, got %d", that.Match.WinsNeeded)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
