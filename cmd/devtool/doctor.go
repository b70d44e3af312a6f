package main

import (
	"context"
	"fmt"

	"github.com/osse101/SceneIt_Go/internal/database"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (db connectivity + pending migrations)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	pool, err := openPool()
	if err != nil {
		PrintError("Database unreachable: %v", err)
		return fmt.Errorf("doctor found issues")
	}
	defer pool.Close()
	PrintSuccess("Database OK")

	m, err := database.NewMigrator(pool, nil)
	if err != nil {
		return err
	}
	defer m.Close()

	statuses, err := m.Status(context.Background())
	if err != nil {
		return err
	}
	pending := 0
	for _, s := range statuses {
		if !s.Applied {
			pending++
		}
	}
	if pending > 0 {
		PrintWarning("%d migration(s) pending, run: devtool migrate up", pending)
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
