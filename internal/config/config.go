// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, logging, and metrics.
type App struct {
	Name        string `yaml:"name"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	MetricsAddr string `yaml:"metrics_addr"`
	RecordPath  string `yaml:"record_path"`
}

// Exchange describes Binance USDT-M futures connectivity parameters.
type Exchange struct {
	Testnet     bool   `yaml:"testnet"`
	TimeInForce string `yaml:"time_in_force"`
}

// Risk encodes guard-rails for how much size a single order may take on.
// Zero values disable the corresponding check.
type Risk struct {
	MaxOrderQty         float64 `yaml:"max_order_qty"`
	MaxNotionalPerTrade float64 `yaml:"max_notional_per_trade"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App      App      `yaml:"app"`
	Exchange Exchange `yaml:"exchange"`
	Risk     Risk     `yaml:"risk"`
}

// Default returns the configuration used when no YAML file is supplied.
func Default() *Config {
	return &Config{
		App: App{
			Name:     "binance-bot",
			LogLevel: "info",
			LogFile:  "bot.log",
		},
		Exchange: Exchange{
			TimeInForce: "GTC",
		},
	}
}

// Load reads a YAML file from disk and hydrates a Config struct on top of
// the defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	config := Default()
	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
