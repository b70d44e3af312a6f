package config

import "time"

// Environment variable keys
const (
	EnvPort        = "PORT"
	EnvEnvironment = "ENVIRONMENT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvLogDir      = "LOG_DIR"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"

	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvRunMigrations     = "RUN_MIGRATIONS"

	EnvFrontendURL        = "FRONTEND_URL"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"

	EnvJWTSecret    = "SUPABASE_JWT_SECRET"
	EnvJWKSURL      = "SUPABASE_JWKS_URL"
	EnvJWTAudience  = "JWT_AUDIENCE"
	EnvJWTIssuer    = "JWT_ISSUER"
	EnvJWKSCacheTTL = "JWKS_CACHE_TTL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"
	EnvTrustedProxies    = "TRUSTED_PROXIES"

	EnvProfileCacheSize = "PROFILE_CACHE_SIZE"
	EnvProfileCacheTTL  = "PROFILE_CACHE_TTL"

	EnvWorkerCount              = "WORKER_COUNT"
	EnvCounterReconcileInterval = "COUNTER_RECONCILE_INTERVAL"

	EnvSchemaVersion = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultEnvironment = "dev"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "sceneit-api"
	DefaultVersion     = "dev"

	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "sceneit"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultJWTAudience  = "authenticated"
	DefaultJWKSCacheTTL = 10 * time.Minute

	DefaultRateLimitRequests = 100
	DefaultRateLimitWindow   = time.Minute

	DefaultProfileCacheSize = 1000
	DefaultProfileCacheTTL  = 5 * time.Minute

	DefaultWorkerCount              = 2
	DefaultCounterReconcileInterval = time.Hour
)

// DevOrigins are always allowed so local frontends work without configuration
var DevOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}
