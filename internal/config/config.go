// Package config collects runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	MetricsEnabled bool
	MetricsToken   string

	// CreateLimitPerMin caps POST /api/products per client IP per minute.
	// Zero disables the limiter.
	CreateLimitPerMin int
}

// Load reads configuration from the environment with defaults, after
// merging in a .env file when one is present in the working directory.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":8082"),
		ShutdownTimeout:   durenvs("SHUTDOWN_TIMEOUT", 10),
		MetricsEnabled:    boolenv("METRICS_ENABLED", false),
		MetricsToken:      getenv("METRICS_TOKEN", ""),
		CreateLimitPerMin: atoienv("CREATE_LIMIT_PER_MIN", 0),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}
