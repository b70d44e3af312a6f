package main

import (
	"context"
	"fmt"

	"github.com/osse101/SceneIt_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status, create")
	}

	// create only writes a file, so it goes through the goose CLI
	if args[0] == "create" {
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		return runVerbose("go", "run", "github.com/pressly/goose/v3/cmd/goose",
			"-dir", "migrations", "create", args[1], "sql")
	}

	pool, err := openPool()
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := database.NewMigrator(pool, nil)
	if err != nil {
		return err
	}
	defer m.Close()

	ctx := context.Background()
	switch args[0] {
	case "up":
		if err := m.Up(ctx); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		if err := m.Down(ctx); err != nil {
			return err
		}
		PrintSuccess("Rolled back one migration")
	case "status":
		return printStatus(ctx, m)
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
	return nil
}

func printStatus(ctx context.Context, m *database.Migrator) error {
	statuses, err := m.Status(ctx)
	if err != nil {
		return err
	}
	PrintHeader("Migration status")
	for _, s := range statuses {
		if s.Applied {
			PrintSuccess("%04d %s", s.Version, s.Path)
		} else {
			PrintWarning("%04d %s (pending)", s.Version, s.Path)
		}
	}
	return nil
}
