package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"time"
)

// Config holds the checker configuration.
type Config struct {
	Log Log `yaml:"log"`
	XE  XE  `yaml:"xe"`
	ISO ISO `yaml:"iso"`
}

// Log where and how much to log. File "-" logs to stderr.
type Log struct {
	File  string `yaml:"file" env:"LOG_FILE" env-default:"currencychecker.log"`
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// XE the currency converter page and the selectors used to scrape it.
type XE struct {
	URL                string        `yaml:"url" env:"XE_URL" env-default:"https://www.xe.com/currencyconverter/convert"`
	UserAgent          string        `yaml:"user_agent" env:"XE_USER_AGENT" env-default:"currencychecker/1.0"`
	Timeout            time.Duration `yaml:"timeout" env:"XE_TIMEOUT" env-default:"10s"`
	ConversionSelector string        `yaml:"conversion_selector" env:"XE_CONVERSION_SELECTOR" env-default:".iGrAod"`
	FadedSelector      string        `yaml:"faded_selector" env:"XE_FADED_SELECTOR" env-default:".faded-digits"`
	RateSelector       string        `yaml:"rate_selector" env:"XE_RATE_SELECTOR" env-default:".dEqdnx p"`
}

// ISO the ISO 4217 list document.
type ISO struct {
	URL     string        `yaml:"url" env:"ISO_URL" env-default:"https://www.six-group.com/dam/download/financial-information/data-center/iso-currrency/lists/list-one.xml"`
	Timeout time.Duration `yaml:"timeout" env:"ISO_TIMEOUT" env-default:"10s"`
}

// Load reads a .env file if present, then path when given, then the environment.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}
