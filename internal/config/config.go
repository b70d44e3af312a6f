package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string

	// Database
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	RunMigrations     bool

	// CORS
	FrontendURL        string
	CORSAllowedOrigins []string

	// Authentication. At least one of JWTSecret and JWKSURL must be set.
	JWTSecret    string
	JWKSURL      string
	JWTAudience  string
	JWTIssuer    string
	JWKSCacheTTL time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration
	TrustedProxies    []string

	ProfileCacheSize int
	ProfileCacheTTL  time.Duration

	// Background jobs. A zero interval disables counter reconciliation.
	WorkerCount              int
	CounterReconcileInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
		RunMigrations:     getEnvAsBool(EnvRunMigrations, true),

		FrontendURL:        strings.TrimRight(getEnv(EnvFrontendURL, ""), "/"),
		CORSAllowedOrigins: getEnvAsList(EnvCORSAllowedOrigins),

		JWTSecret:    getEnv(EnvJWTSecret, ""),
		JWKSURL:      getEnv(EnvJWKSURL, ""),
		JWTAudience:  getEnv(EnvJWTAudience, DefaultJWTAudience),
		JWTIssuer:    getEnv(EnvJWTIssuer, ""),
		JWKSCacheTTL: getEnvAsDuration(EnvJWKSCacheTTL, DefaultJWKSCacheTTL),

		RateLimitRequests: getEnvAsInt(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvAsDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		TrustedProxies:    getEnvAsList(EnvTrustedProxies),

		ProfileCacheSize: getEnvAsInt(EnvProfileCacheSize, DefaultProfileCacheSize),
		ProfileCacheTTL:  getEnvAsDuration(EnvProfileCacheTTL, DefaultProfileCacheTTL),

		WorkerCount:              getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		CounterReconcileInterval: getEnvAsDuration(EnvCounterReconcileInterval, DefaultCounterReconcileInterval),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		return nil, fmt.Errorf("%s or %s must be set to verify sessions", EnvJWTSecret, EnvJWKSURL)
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// AllowedOrigins returns the CORS allow-list: dev origins, the frontend URL and
// any extra configured origins, without duplicates.
func (c *Config) AllowedOrigins() []string {
	seen := make(map[string]struct{})
	var origins []string
	add := func(o string) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			return
		}
		if _, ok := seen[o]; ok {
			return
		}
		seen[o] = struct{}{}
		origins = append(origins, o)
	}

	for _, o := range DevOrigins {
		add(o)
	}
	add(c.FrontendURL)
	for _, o := range c.CORSAllowedOrigins {
		add(o)
	}
	return origins
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case "prod", "production":
		return true
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the default when the variable is unset or not a duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool returns the default when the variable is unset or not a boolean
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty items
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
