package config

import (
	"time"

	"go-flowershop/internal/core"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// RedisConfig configures the optional order event feed. An empty URL disables it.
type RedisConfig struct {
	URL          string        `split_words:"true"`
	Channel      string        `split_words:"true" default:"flowershop:orders"`
	ReadTimeout  time.Duration `split_words:"true" default:"3s"`
	WriteTimeout time.Duration `split_words:"true" default:"3s"`
	DialTimeout  time.Duration `split_words:"true" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

// Config holds every tunable of the storefront server, sourced from the
// environment (optionally seeded from a .env file).
type Config struct {
	Env string `envconfig:"ENV" default:"development"`

	HTTPAddr     string        `envconfig:"HTTP_ADDR" default:":8080"`
	ReadTimeout  time.Duration `split_words:"true" default:"10s"`
	WriteTimeout time.Duration `split_words:"true" default:"10s"`
	IdleTimeout  time.Duration `split_words:"true" default:"60s"`
	// Comma separated proxy addresses or CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string `split_words:"true"`

	// Login/signup feedback delay and per-client limits.
	AuthDelay     time.Duration `split_words:"true" default:"500ms"`
	AuthRateLimit float64       `split_words:"true" default:"5"`
	AuthBurst     int           `split_words:"true" default:"10"`
	AuthLimitIdle time.Duration `split_words:"true" default:"10m"`

	SessionIdleTTL       time.Duration `split_words:"true" default:"30m"`
	SessionSweepInterval time.Duration `split_words:"true" default:"1m"`
	// SessionMax caps live sessions; the least recently used one makes room.
	SessionMax int `split_words:"true" default:"10000"`

	AdminEmail    string `split_words:"true" default:"admin@flowershop.com"`
	AdminPassword string `split_words:"true" default:"admin123"`

	Redis RedisConfig
}

func (c Config) Environment() core.Environment {
	return core.ParseEnvironment(c.Env)
}

// LoadDotenv seeds the process environment from the given files. Variables
// already set in the environment win.
func LoadDotenv(files ...string) error {
	return godotenv.Load(files...)
}

// Load processes the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
