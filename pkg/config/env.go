package config

// EnvPrefix is handed to envconfig; every field below carries an explicit tag so the
// prefix only matters for untagged additions.
const EnvPrefix = "SGFOODCOURT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv       = "SGFOODCOURT_APP_ENV"
	EnvPort         = "SGFOODCOURT_APP_PORT"
	EnvLogLevel     = "SGFOODCOURT_LOG_LEVEL"
	EnvLogFormat    = "SGFOODCOURT_LOG_FORMAT"
	EnvLogWarnStack = "SGFOODCOURT_LOG_WARN_STACK"

	EnvCORSOrigins     = "SGFOODCOURT_CORS_ORIGINS"
	EnvShutdownTimeout = "SGFOODCOURT_SHUTDOWN_TIMEOUT"

	EnvTaxRate        = "SGFOODCOURT_TAX_RATE"
	EnvCurrencySymbol = "SGFOODCOURT_CURRENCY_SYMBOL"
	EnvCatalogPath    = "SGFOODCOURT_CATALOG_PATH"
	EnvOrderPrefix    = "SGFOODCOURT_ORDER_NUMBER_PREFIX"
	EnvStaleOrder     = "SGFOODCOURT_STALE_ORDER_AFTER"

	EnvSessionIdleTTL    = "SGFOODCOURT_SESSION_IDLE_TTL"
	EnvSessionSweepEvery = "SGFOODCOURT_SESSION_SWEEP_INTERVAL"

	EnvMetricsEnabled = "SGFOODCOURT_METRICS_ENABLED"
	EnvMetricsPath    = "SGFOODCOURT_METRICS_PATH"
)
