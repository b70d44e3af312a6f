package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SceneIt_Go/internal/event"
	"github.com/osse101/SceneIt_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and attaches the
// subscribers every deployment runs.
func InitializeEventSystem() (event.Bus, error) {
	eventBus := event.NewMemoryBus()

	if err := RegisterEventHandlers(eventBus); err != nil {
		return nil, err
	}

	slog.Info(LogMsgEventSystemInitialized)
	return eventBus, nil
}

// RegisterEventHandlers sets up the event subscribers. Today that is the
// Prometheus collector counting domain events by type.
func RegisterEventHandlers(bus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)
	return nil
}
