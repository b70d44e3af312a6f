package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SceneIt_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Event types published by the services
const (
	FavoriteAdded      Type = "favorite.added"
	FavoriteRemoved    Type = "favorite.removed"
	ShowStateChanged   Type = "show.state_changed"
	RatingSaved        Type = "rating.saved"
	ReviewCreated      Type = "review.created"
	ReviewDeleted      Type = "review.deleted"
	PlaylistCreated    Type = "playlist.created"
	PlaylistMediaAdded Type = "playlist.media_added"
	CountersReconciled Type = "profile.counters_reconciled"
)

// Typed event payloads for type safety

// FavoritePayloadV1 is the payload for favorite added/removed events
type FavoritePayloadV1 struct {
	ProfileID string `json:"profile_id"`
	TmdbID    int    `json:"tmdb_id"`
}

// ShowStatePayloadV1 is the payload for watch-state changes
type ShowStatePayloadV1 struct {
	ProfileID string `json:"profile_id"`
	TmdbID    int    `json:"tmdb_id"`
	Field     string `json:"field"` // "watched" or "listed"
	Value     bool   `json:"value"`
}

// RatingPayloadV1 is the payload for saved ratings
type RatingPayloadV1 struct {
	ProfileID string `json:"profile_id"`
	TmdbID    int    `json:"tmdb_id"`
	Rating    int    `json:"rating"`
}

// ReviewPayloadV1 is the payload for review events
type ReviewPayloadV1 struct {
	ReviewID  string `json:"review_id"`
	ShowID    int    `json:"show_id"`
	ProfileID string `json:"profile_id"`
	Rating    int    `json:"rating,omitempty"`
}

// PlaylistPayloadV1 is the payload for playlist events
type PlaylistPayloadV1 struct {
	PlaylistID int64  `json:"playlist_id"`
	ProfileID  string `json:"profile_id"`
	TmdbID     int    `json:"tmdb_id,omitempty"`
	IsPublic   bool   `json:"is_public"`
}

// CountersReconciledPayloadV1 is the payload for the reconciliation job
type CountersReconciledPayloadV1 struct {
	ProfilesFixed int `json:"profiles_fixed"`
}

// New creates an event of the given type stamped with the current schema version
func New(eventType Type, payload interface{}) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
}

// NewFavoriteEvent creates a favorite added or removed event
func NewFavoriteEvent(added bool, profileID string, tmdbID int) Event {
	eventType := FavoriteRemoved
	if added {
		eventType = FavoriteAdded
	}
	return New(eventType, FavoritePayloadV1{ProfileID: profileID, TmdbID: tmdbID})
}

// NewShowStateEvent creates a watch-state change event
func NewShowStateEvent(profileID string, tmdbID int, field string, value bool) Event {
	return New(ShowStateChanged, ShowStatePayloadV1{
		ProfileID: profileID,
		TmdbID:    tmdbID,
		Field:     field,
		Value:     value,
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit publishes after a committed mutation. A nil bus is a no-op and
// subscriber failures are logged, never returned to the caller.
func Emit(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
