package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	AppEnv            string
	FormResetDelay    time.Duration
	ViewIdleTTL       time.Duration
	ViewSweepInterval time.Duration
	RedisAddr         string
	SubmitRateLimit   float64
	SubmitRateBurst   int
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

func (c Config) Production() bool {
	return c.AppEnv == "production"
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (Config, error) {
	var (
		cfg Config
		err error
	)

	cfg.Port = getEnv("PORT", "3000")
	cfg.AppEnv = getEnv("APP_ENV", "development")
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"FORM_RESET_DELAY", 3 * time.Second, &cfg.FormResetDelay},
		{"VIEW_IDLE_TTL", 30 * time.Minute, &cfg.ViewIdleTTL},
		{"VIEW_SWEEP_INTERVAL", time.Minute, &cfg.ViewSweepInterval},
		{"HTTP_READ_TIMEOUT", 5 * time.Second, &cfg.ReadTimeout},
		{"HTTP_WRITE_TIMEOUT", 10 * time.Second, &cfg.WriteTimeout},
		{"HTTP_IDLE_TIMEOUT", 60 * time.Second, &cfg.IdleTimeout},
	}
	for _, d := range durations {
		if *d.dst, err = getEnvDuration(d.key, d.def); err != nil {
			return Config{}, err
		}
	}

	if cfg.SubmitRateLimit, err = getEnvFloat("SUBMIT_RATE_LIMIT", 1); err != nil {
		return Config{}, err
	}
	if cfg.SubmitRateBurst, err = getEnvInt("SUBMIT_RATE_BURST", 5); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

func getEnvInt(key string, defaultValue int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: want a non-negative integer", key, val)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid %s %q: want a non-negative number", key, val)
	}
	return f, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s %q: want a duration like 3s", key, val)
	}
	return d, nil
}
