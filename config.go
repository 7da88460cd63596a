package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultPort = 5000
	defaultDir  = "."
)

// Config is fixed at startup and never mutated.
type Config struct {
	Port int
	Dir  string
}

// loadConfig reads an optional .env file. Without one the server listens on
// port 5000 and serves the current directory.
func loadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{Port: defaultPort, Dir: defaultDir}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.Port = p
		}
	}
	if v := os.Getenv("SERVE_DIR"); v != "" {
		cfg.Dir = v
	}
	return cfg
}
