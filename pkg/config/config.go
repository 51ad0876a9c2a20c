package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int      `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN      string   `env:"POSTGRES_DSN"`
	PostgresMaxConns int32    `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	RedisURL         string   `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowOrigins     []string `env:"ALLOW_ORIGINS" envSeparator:","`
	// Peers allowed to set X-Forwarded-For / X-Real-IP, as IPs or CIDRs.
	TrustedProxies   []string `env:"TRUSTED_PROXIES" envSeparator:","`
	KafkaBrokers     []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic       string   `env:"KAFKA_RECORDS_TOPIC" envDefault:"olsoftware.users"`

	// Registration PIN and password pre-hash.
	PinSalt string `env:"PIN_SALT"`
	PinHash string `env:"PIN_HASH"`

	Session   SessionConfig
	Identity  IdentityConfig
	Federated FederatedConfig
	Functions FunctionsConfig
	RateLimit RateLimitConfig
}

type SessionConfig struct {
	Secret        string        `env:"SESSION_SECRET"`
	CookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"olsoftware_session"`
	CookieSecure  bool          `env:"SESSION_COOKIE_SECURE" envDefault:"true"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	IdleTTL       time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
}

type IdentityConfig struct {
	BaseURL       string        `env:"IDENTITY_BASE_URL" envDefault:"https://identitytoolkit.googleapis.com/v1"`
	TokenURL      string        `env:"IDENTITY_TOKEN_URL" envDefault:"https://securetoken.googleapis.com/v1/token"`
	APIKey        string        `env:"IDENTITY_API_KEY"`
	Timeout       time.Duration `env:"IDENTITY_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"IDENTITY_RETRY_ATTEMPTS" envDefault:"0"`
}

type FederatedConfig struct {
	ProviderID   string `env:"FEDERATED_PROVIDER_ID" envDefault:"google.com"`
	AuthURL      string `env:"FEDERATED_AUTH_URL" envDefault:"https://accounts.google.com/o/oauth2/v2/auth"`
	TokenURL     string `env:"FEDERATED_TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token"`
	ClientID     string `env:"FEDERATED_CLIENT_ID"`
	ClientSecret string `env:"FEDERATED_CLIENT_SECRET"`
	RedirectURI  string `env:"FEDERATED_REDIRECT_URI"`
	Scope        string `env:"FEDERATED_SCOPE" envDefault:"openid email profile"`
}

type FunctionsConfig struct {
	BaseURL       string        `env:"FUNCTIONS_BASE_URL"`
	Timeout       time.Duration `env:"FUNCTIONS_TIMEOUT" envDefault:"30s"`
	RetryAttempts int           `env:"FUNCTIONS_RETRY_ATTEMPTS" envDefault:"0"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"2"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	required := []struct {
		name string
		val  string
	}{
		{"PIN_SALT", c.PinSalt},
		{"PIN_HASH", c.PinHash},
		{"SESSION_SECRET", c.Session.Secret},
	}

	for _, v := range required {
		if v.val == "" {
			return Config{}, fmt.Errorf("missing required variable %s", v.name)
		}
	}

	return c, nil
}
