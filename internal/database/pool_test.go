package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/SceneIt_Go/internal/testing/leaktest"
)

var testConnString string

var sceneItTables = []string{"profiles", "media", "playlists", "playlist_media", "user_media", "ratings", "reviews"}

func TestMain(m *testing.M) {
	flag.Parse()

	var stop func()
	if !testing.Short() {
		testConnString, stop = startPostgres(context.Background())
	}

	code := m.Run()

	if stop != nil {
		stop()
	}
	os.Exit(code)
}

// startPostgres returns an empty connection string when Docker is unavailable
func startPostgres(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in startPostgres: %v\n", r)
		}
	}()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("sceneit_test"),
		postgres.WithUsername("sceneit"),
		postgres.WithPassword("sceneit"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", nil
	}
	stop := func() {
		if err := container.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return "", stop
	}
	return connStr, stop
}

// migratedPool opens a pool with the schema applied, skipping without a database
func migratedPool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(testConnString, maxConns, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(context.Background(), pool))
	return pool
}

func tableExists(t *testing.T, pool *pgxpool.Pool, table string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", table).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func TestNewPool_InvalidConnString(t *testing.T) {
	pool, err := NewPool("host=localhost port=notaport", 5, time.Minute, time.Minute)
	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestNewPool_AppliesLimits(t *testing.T) {
	tests := []struct {
		name     string
		maxConns int
		wantMin  int32
	}{
		{"Above Minimum", 6, DefaultMinConnections},
		{"Below Minimum", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := migratedPool(t, tt.maxConns)

			cfg := pool.Config()
			assert.Equal(t, int32(tt.maxConns), cfg.MaxConns)
			assert.Equal(t, tt.wantMin, cfg.MinConns)
			assert.Equal(t, 5*time.Minute, cfg.MaxConnLifetime)
			assert.Equal(t, time.Minute, cfg.MaxConnIdleTime)
		})
	}
}

// A small pool serving many concurrent first-use upserts of one profile
// must end with a single row and every connection back in the pool.
func TestPool_ConcurrentProfileUpserts(t *testing.T) {
	pool := migratedPool(t, 4)
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE profiles CASCADE")
	require.NoError(t, err)

	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			if _, err := pool.Exec(ctx,
				"INSERT INTO profiles (id) VALUES ($1) ON CONFLICT (id) DO NOTHING", "shared-sub"); err != nil {
				t.Errorf("worker %d upsert failed: %v", worker, err)
			}
		}(i)
	}
	wg.Wait()

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM profiles WHERE id = $1", "shared-sub").Scan(&count))
	assert.Equal(t, 1, count)
	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "connections should be released")

	checker.Check(2)
}

func TestMigrator_UpIsIdempotent(t *testing.T) {
	pool := migratedPool(t, 5)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, pool), "second run should be a no-op")

	m, err := NewMigrator(pool, nil)
	require.NoError(t, err)
	defer m.Close()

	statuses, err := m.Status(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, statuses)
	for _, s := range statuses {
		assert.True(t, s.Applied, "migration %s should be applied", s.Path)
	}

	for _, table := range sceneItTables {
		assert.True(t, tableExists(t, pool, table), "table %s should exist", table)
	}
}

func TestMigrator_DownThenUp(t *testing.T) {
	pool := migratedPool(t, 5)
	ctx := context.Background()

	m, err := NewMigrator(pool, nil)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Down(ctx))
	assert.False(t, tableExists(t, pool, "reviews"), "latest migration should be rolled back")
	assert.True(t, tableExists(t, pool, "ratings"))

	statuses, err := m.Status(ctx)
	require.NoError(t, err)
	assert.False(t, statuses[len(statuses)-1].Applied)

	require.NoError(t, m.Up(ctx))
	assert.True(t, tableExists(t, pool, "reviews"))
}
