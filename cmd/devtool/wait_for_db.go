package main

import (
	"fmt"
	"time"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	var lastErr error
	for i := 0; i < waitMaxRetries; i++ {
		pool, err := openPool()
		if err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}
		lastErr = err

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitMaxRetries, lastErr)
}
