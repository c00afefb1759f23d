// Package config loads server settings from an optional YAML file with
// environment overrides. A .env file is honoured when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string  `yaml:"addr"`
	LogLevel     string  `yaml:"log_level"`
	RateRPS      float64 `yaml:"rate_rps"`
	RateBurst    int     `yaml:"rate_burst"`
	VehicleStepM float64 `yaml:"vehicle_step_m"`
}

func defaults() Config {
	return Config{
		Addr:         ":8080",
		LogLevel:     "info",
		RateRPS:      5,
		RateBurst:    10,
		VehicleStepM: 0.05,
	}
}

// Load reads CONFIG_PATH (default config.yaml) if it exists, then
// applies environment overrides on top of the file values.
func Load() Config {
	_ = godotenv.Load()

	cfg := defaults()
	path := getEnv("CONFIG_PATH", "config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, &cfg)
	}

	cfg.Addr = getEnv("ADDR", cfg.Addr)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if v, err := strconv.ParseFloat(os.Getenv("RATE_RPS"), 64); err == nil && v > 0 {
		cfg.RateRPS = v
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_BURST")); err == nil && v > 0 {
		cfg.RateBurst = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("VEHICLE_STEP_M"), 64); err == nil && v > 0 {
		cfg.VehicleStepM = v
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
