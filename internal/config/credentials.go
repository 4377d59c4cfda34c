package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables holding the Binance API credentials.
const (
	EnvAPIKey    = "BINANCE_API_KEY"
	EnvAPISecret = "BINANCE_API_SECRET"
)

// Credentials carries the API key pair read from the environment.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Present reports whether both halves of the key pair are set. When it
// returns false the tools must run in dry-run mode.
func (c Credentials) Present() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// LoadCredentials reads the API key pair from the environment, loading a
// local .env file first if one exists.
func LoadCredentials() Credentials {
	_ = godotenv.Load() // best-effort
	return Credentials{
		APIKey:    os.Getenv(EnvAPIKey),
		APISecret: os.Getenv(EnvAPISecret),
	}
}
