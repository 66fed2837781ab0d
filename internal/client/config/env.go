package config

import (
	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with CHATLINE_* environment variables. An optional
// .env file in the working directory is loaded first; its absence is not an
// error.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()
	return env.Parse(cfg)
}
