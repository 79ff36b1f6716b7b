package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App         AppConfig
	AWS         AWSConfig
	Tables      TablesConfig
	MercadoPago MercadoPagoConfig
	JWT         JWTConfig
	Redis       RedisConfig
	Stream      StreamConfig
}

// Load reads the configuration from the environment. A .env file is picked up
// by godotenv/autoload in main before this runs.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env           string `envconfig:"APP_ENV" default:"dev"`
	Port          string `envconfig:"PORT" default:"8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat     string `envconfig:"LOG_FORMAT" default:"json"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:5173"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// AWSConfig keeps the local-friendly defaults; DynamoDB Local does not check
// credentials but the SDK requires them.
type AWSConfig struct {
	Region           string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
}

type TablesConfig struct {
	Orders   string `envconfig:"DYNAMODB_TABLE_ORDERS" default:"orders"`
	Branches string `envconfig:"DYNAMODB_TABLE_BRANCHES" default:"branches"`
	Settings string `envconfig:"DYNAMODB_TABLE_SETTINGS" default:"settings"`
}

type MercadoPagoConfig struct {
	AccessToken     string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	Currency        string `envconfig:"MERCADOPAGO_CURRENCY" default:"MXN"`
	NotificationURL string `envconfig:"MERCADOPAGO_NOTIFICATION_URL"`
	BackURLBase     string `envconfig:"MERCADOPAGO_BACK_URL_BASE"`
	Mock            bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
	LegacyMock      bool   `envconfig:"MERCADOPAGO_MOCK" default:"false"`
}

// MockEnabled honours both the gateway-wide and the provider-specific flag.
func (m MercadoPagoConfig) MockEnabled() bool {
	return m.Mock || m.LegacyMock
}

// Sandbox reports whether the access token belongs to a test account.
func (m MercadoPagoConfig) Sandbox() bool {
	return strings.HasPrefix(m.AccessToken, "TEST-")
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET"`
	Issuer string `envconfig:"JWT_ISSUER"`
}

// RedisConfig is optional: with an empty URL webhook dedupe is disabled.
type RedisConfig struct {
	URL       string        `envconfig:"REDIS_URL"`
	DedupeTTL time.Duration `envconfig:"WEBHOOK_DEDUPE_TTL" default:"24h"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type StreamConfig struct {
	PollInterval time.Duration `envconfig:"ORDER_STREAM_POLL_INTERVAL" default:"2s"`
	MaxDuration  time.Duration `envconfig:"ORDER_STREAM_MAX_DURATION" default:"30m"`
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var err error
	if strings.TrimSpace(c.JWT.Secret) == "" {
		err = multierr.Append(err, errors.New("JWT_SECRET is required"))
	}
	if !c.MercadoPago.MockEnabled() && strings.TrimSpace(c.MercadoPago.AccessToken) == "" {
		err = multierr.Append(err, errors.New("MERCADOPAGO_ACCESS_TOKEN is required unless PAYMENT_GATEWAY_MOCK is set"))
	}
	if c.Stream.PollInterval <= 0 {
		err = multierr.Append(err, errors.New("ORDER_STREAM_POLL_INTERVAL must be positive"))
	}
	if c.Redis.DedupeTTL <= 0 {
		err = multierr.Append(err, errors.New("WEBHOOK_DEDUPE_TTL must be positive"))
	}
	switch strings.ToLower(c.App.LogFormat) {
	case "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("LOG_FORMAT %q must be json or console", c.App.LogFormat))
	}
	return err
}

// BackURLBase falls back to the public site URL.
func (c *Config) BackURLBase() string {
	if b := strings.TrimSpace(c.MercadoPago.BackURLBase); b != "" {
		return strings.TrimRight(b, "/")
	}
	return strings.TrimRight(c.App.PublicBaseURL, "/")
}
