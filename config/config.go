// Package config loads server configuration from the environment.
package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Port           string   `env:"PORT" envDefault:"3000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	Debug          bool     `env:"DEBUG"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}
