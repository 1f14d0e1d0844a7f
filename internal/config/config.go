// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envProduction = "production"

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the HTTP server listens on (e.g. :3000).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// GRPCAddr is the address of the gRPC health server; empty disables it.
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// DatabaseURL is the Postgres DSN.
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`

	// JWTPrivateKey is the PEM-encoded private key (RSA or ECDSA) or a path to it.
	JWTPrivateKey string `mapstructure:"JWT_PRIVATE_KEY"`
	// JWTPublicKey is the PEM-encoded public key or a path to it.
	JWTPublicKey string `mapstructure:"JWT_PUBLIC_KEY"`
	JWTIssuer    string `mapstructure:"JWT_ISSUER"`
	JWTAudience  string `mapstructure:"JWT_AUDIENCE"`
	// JWTAccessTTL is the session token lifetime (e.g. "24h"); also the cookie max age.
	JWTAccessTTL string `mapstructure:"JWT_ACCESS_TTL"`
	// BcryptCost is the bcrypt cost factor (4–31).
	BcryptCost int `mapstructure:"BCRYPT_COST"`
	// CookieSecure sets the Secure flag on the session cookie.
	CookieSecure bool `mapstructure:"COOKIE_SECURE"`
	// Env is the application environment ("development", "production").
	Env string `mapstructure:"APP_ENV"`
	// PolicyFile is an optional Rego file replacing the built-in role policy.
	PolicyFile string `mapstructure:"POLICY_FILE"`

	// OTLPEndpoint is the collector gRPC endpoint; empty disables OTel export.
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`

	// KafkaBrokers is a comma-separated list of brokers; empty disables activity export to Kafka.
	KafkaBrokers       string `mapstructure:"KAFKA_BROKERS"`
	ActivityKafkaTopic string `mapstructure:"ACTIVITY_KAFKA_TOPIC"`
	// Worker-only: consumer group and Loki push URL.
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`
	LokiURL      string `mapstructure:"LOKI_URL"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"HTTP_ADDR":                   ":3000",
	"GRPC_ADDR":                   "",
	"DATABASE_URL":                "",
	"DB_MAX_OPEN_CONNS":           10,
	"JWT_PRIVATE_KEY":             "",
	"JWT_PUBLIC_KEY":              "",
	"JWT_ISSUER":                  "projectboard",
	"JWT_AUDIENCE":                "projectboard-web",
	"JWT_ACCESS_TTL":              "24h",
	"BCRYPT_COST":                 10,
	"COOKIE_SECURE":               false,
	"APP_ENV":                     "development",
	"POLICY_FILE":                 "",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
	"OTEL_EXPORTER_OTLP_INSECURE": true,
	"KAFKA_BROKERS":               "",
	"ACTIVITY_KAFKA_TOPIC":        "projectboard-activity",
	"KAFKA_GROUP_ID":              "projectboard-activity-worker",
	"LOKI_URL":                    "",
	"LOG_LEVEL":                   "info",
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPAddr == "" {
		return errors.New("config: HTTP_ADDR must be set")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return errors.New("config: BCRYPT_COST must be between 4 and 31")
	}
	if (c.JWTPrivateKey == "") != (c.JWTPublicKey == "") {
		return errors.New("config: JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set together")
	}
	if c.IsProduction() {
		if c.JWTPrivateKey == "" {
			return errors.New("config: JWT keys are required when APP_ENV=production")
		}
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required when APP_ENV=production")
		}
	}
	if _, err := time.ParseDuration(c.JWTAccessTTL); err != nil {
		return errors.New("config: JWT_ACCESS_TTL is not a duration")
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, envProduction)
}

// AccessTTL parses JWTAccessTTL. Returns 24h if unset or invalid.
func (c *Config) AccessTTL() time.Duration {
	d, err := time.ParseDuration(c.JWTAccessTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// KafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// An empty list means activity export to Kafka is disabled.
func (c *Config) KafkaBrokersList() []string {
	if c == nil || c.KafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SlogLevel maps LogLevel to a slog.Level; unknown values are info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
