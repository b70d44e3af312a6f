package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/SceneIt_Go/internal/event"
	"github.com/osse101/SceneIt_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.FavoriteAdded,
		event.FavoriteRemoved,
		event.ShowStateChanged,
		event.RatingSaved,
		event.ReviewCreated,
		event.ReviewDeleted,
		event.PlaylistCreated,
		event.PlaylistMediaAdded,
		event.CountersReconciled,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
	}
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.FavoriteAdded:
		FavoritesChanged.WithLabelValues(ActionAdded).Inc()

	case event.FavoriteRemoved:
		FavoritesChanged.WithLabelValues(ActionRemoved).Inc()

	case event.ShowStateChanged:
		p, err := event.DecodePayload[event.ShowStatePayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ShowStateChanges.WithLabelValues(p.Field, strconv.FormatBool(p.Value)).Inc()

	case event.RatingSaved:
		p, err := event.DecodePayload[event.RatingPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		RatingsSaved.WithLabelValues(strconv.Itoa(p.Rating)).Inc()

	case event.ReviewCreated:
		Reviews.WithLabelValues(ActionCreated).Inc()

	case event.ReviewDeleted:
		Reviews.WithLabelValues(ActionDeleted).Inc()

	case event.PlaylistCreated:
		p, err := event.DecodePayload[event.PlaylistPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		visibility := VisibilityPrivate
		if p.IsPublic {
			visibility = VisibilityPublic
		}
		PlaylistsCreated.WithLabelValues(visibility).Inc()

	case event.PlaylistMediaAdded:
		PlaylistMediaAdded.Inc()

	case event.CountersReconciled:
		p, err := event.DecodePayload[event.CountersReconciledPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		CounterProfilesFixed.Add(float64(p.ProfilesFixed))
	}
	return nil
}
