package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// Environment variables read by LoadConfig
const (
	EnvAddr  = "GOCFS_ADDR"
	EnvRate  = "GOCFS_RATE"
	EnvBurst = "GOCFS_BURST"
)

// Config holds the HTTP server settings
type Config struct {
	Addr  string
	Rate  rate.Limit // requests per second per client
	Burst int
}

// DefaultConfig returns the settings used when no variable is set
func DefaultConfig() Config {
	return Config{
		Addr:  ":8080",
		Rate:  5,
		Burst: 10,
	}
}

// LoadConfig reads the server settings from the environment after loading
// envFile, if given. A missing env file is not an error; variables already
// set in the environment take precedence over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := DefaultConfig()
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvRate); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive number, got %q", EnvRate, v)
		}
		cfg.Rate = rate.Limit(r)
	}
	if v := os.Getenv(EnvBurst); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil || b <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvBurst, v)
		}
		cfg.Burst = b
	}
	return cfg, nil
}
