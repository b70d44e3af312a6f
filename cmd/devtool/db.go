package main

import (
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SceneIt_Go/internal/config"
	"github.com/osse101/SceneIt_Go/internal/database"
)

// envURL is an optional full connection string overriding the DB_* parts
const envURL = "DB_URL"

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// dbURL builds the connection string without requiring the server's
// auth settings, so devtool works against a bare database.
func dbURL() string {
	if url := os.Getenv(envURL); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv(config.EnvDBUser, config.DefaultDBUser),
		getEnv(config.EnvDBPassword, config.DefaultDBPassword),
		getEnv(config.EnvDBHost, config.DefaultDBHost),
		getEnv(config.EnvDBPort, config.DefaultDBPort),
		getEnv(config.EnvDBName, config.DefaultDBName),
	)
}

// openPool connects with a small pool; NewPool pings before returning
func openPool() (*pgxpool.Pool, error) {
	return database.NewPool(dbURL(), 2, config.DefaultDBMaxConnIdleTime, config.DefaultDBMaxConnLifetime)
}
