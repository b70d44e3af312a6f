package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/SceneIt_Go/internal/config"
)

const composeService = "db"

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Start the compose database if needed and wait until it accepts connections"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking Docker database status...")

	if err := runQuiet("docker", "compose", "version"); err != nil {
		return fmt.Errorf("docker compose not found. Please install Docker Compose")
	}

	if composeServiceUp() {
		PrintSuccess("Database is already running")
		return nil
	}

	PrintInfo("Starting database...")
	if err := runVerbose("docker", "compose", "up", "-d", composeService); err != nil {
		return fmt.Errorf("error starting database: %w", err)
	}

	user := getEnv(config.EnvDBUser, config.DefaultDBUser)
	name := getEnv(config.EnvDBName, config.DefaultDBName)
	for attempt := 1; attempt <= waitMaxRetries; attempt++ {
		if runQuiet("docker", "compose", "exec", "-T", composeService, "pg_isready", "-U", user, "-d", name) == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Waiting for database... (%d/%d)\n", attempt, waitMaxRetries)
		time.Sleep(time.Second)
	}

	PrintError("Database failed to start")
	_ = runVerbose("docker", "compose", "logs", composeService)
	return fmt.Errorf("database failed to start")
}

func composeServiceUp() bool {
	out, err := commandOutput("docker", "compose", "ps", composeService)
	if err != nil {
		return false
	}
	status := strings.ToLower(out)
	return strings.Contains(status, "up") || strings.Contains(status, "running")
}
