package main

import (
	"os"

	"github.com/osse101/SceneIt_Go/internal/logger"
)

// initBootLogger installs a stdout logger so failures before the config is
// loaded are still structured. SetupLogger replaces it once config is known.
func initBootLogger() {
	logger.InitLoggerWithWriter(logger.DefaultConfig(), os.Stdout)
}
