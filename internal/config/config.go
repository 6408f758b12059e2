// Package config loads run settings from an optional .env file and the process environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/jjexpress/deals-telegram/internal/telegram"
)

type Config struct {
	Telegram Telegram
	Deals    Deals
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Telegram holds the Bot API settings. Credentials are not marked required here:
// the sender reports which one is missing, and dry runs work without them.
type Telegram struct {
	BotToken  string        `env:"TELEGRAM_BOT_TOKEN"`
	ChannelID string        `env:"TELEGRAM_CHANNEL_ID"`
	APIURL    string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
	Timeout   time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"20s"`
}

type Deals struct {
	MaxLinksPerStore int    `env:"MAX_LINKS_PER_STORE" envDefault:"4"`
	CatalogFile      string `env:"DEALS_CATALOG_FILE"`
}

// Credentials returns the bot token and channel as sender credentials
func (t Telegram) Credentials() telegram.Credentials {
	return telegram.Credentials{
		BotToken:  t.BotToken,
		ChannelID: t.ChannelID,
	}
}

// Load reads envFile (or ./.env when empty and present) into the environment,
// then parses the environment into a Config. Variables already set in the
// environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if config.Deals.MaxLinksPerStore < 0 {
		return Config{}, fmt.Errorf("MAX_LINKS_PER_STORE must be >= 0, got %d", config.Deals.MaxLinksPerStore)
	}
	if config.Telegram.Timeout <= 0 {
		return Config{}, fmt.Errorf("TELEGRAM_TIMEOUT must be positive, got %s", config.Telegram.Timeout)
	}

	return config, nil
}
