// Package config loads demo-binary configuration from the environment.
// The library itself is configured through client.Config; only cmd binaries
// read env vars.
package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL     string        `env:"GUTENDEX_BASE_URL" envDefault:"https://gutendex.com"`
	UserAgent   string        `env:"GUTENDEX_USER_AGENT" envDefault:"gutendex-client/0.1.0"`
	Languages   string        `env:"GUTENDEX_LANGUAGES" envDefault:""`
	Limit       int           `env:"GUTENDEX_LIMIT" envDefault:"50"`
	HTTPTimeout time.Duration `env:"GUTENDEX_HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty   bool          `env:"LOG_PRETTY" envDefault:"false"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
