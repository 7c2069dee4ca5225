package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Engine  EngineConfig
	Session SessionConfig
	Metrics MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Engine.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Session.validate(); err != nil {
		return nil, err
	}
	if cfg.App.IsProd() && strings.TrimSpace(cfg.Engine.CatalogPath) == "" {
		return nil, fmt.Errorf("%s is required when %s=%s", EnvCatalogPath, EnvAppEnv, AppEnvProd)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SGFOODCOURT_APP_ENV" default:"dev"`
	Port         string `envconfig:"SGFOODCOURT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SGFOODCOURT_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"SGFOODCOURT_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"SGFOODCOURT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	CORSOrigins     []string      `envconfig:"SGFOODCOURT_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	ShutdownTimeout time.Duration `envconfig:"SGFOODCOURT_SHUTDOWN_TIMEOUT" default:"10s"`
}

// EngineConfig drives pricing and catalog loading.
type EngineConfig struct {
	TaxRate        decimal.Decimal `envconfig:"SGFOODCOURT_TAX_RATE" default:"0.09"`
	CurrencySymbol string          `envconfig:"SGFOODCOURT_CURRENCY_SYMBOL" default:"S$"`
	// CatalogPath points at a JSON catalog; empty uses the built-in demo catalog.
	CatalogPath       string `envconfig:"SGFOODCOURT_CATALOG_PATH"`
	OrderNumberPrefix string `envconfig:"SGFOODCOURT_ORDER_NUMBER_PREFIX" default:"SG"`
	// StaleOrderAfter is how long an order may sit in pending before housekeeping warns.
	StaleOrderAfter time.Duration `envconfig:"SGFOODCOURT_STALE_ORDER_AFTER" default:"30m"`
}

func (e EngineConfig) validate() error {
	if e.TaxRate.IsNegative() || e.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be within [0, 1), got %s", EnvTaxRate, e.TaxRate.String())
	}
	return nil
}

type SessionConfig struct {
	IdleTTL       time.Duration `envconfig:"SGFOODCOURT_SESSION_IDLE_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"SGFOODCOURT_SESSION_SWEEP_INTERVAL" default:"10m"`
}

func (s SessionConfig) validate() error {
	if s.IdleTTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvSessionIdleTTL)
	}
	if s.SweepInterval <= 0 {
		return fmt.Errorf("%s must be positive", EnvSessionSweepEvery)
	}
	return nil
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"SGFOODCOURT_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"SGFOODCOURT_METRICS_PATH" default:"/metrics"`
}
