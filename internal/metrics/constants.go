package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameFavoritesChanged     = "favorites_changed_total"
	MetricNameShowStateChanges     = "show_state_changes_total"
	MetricNameRatingsSaved         = "ratings_saved_total"
	MetricNameReviews              = "reviews_total"
	MetricNamePlaylistsCreated     = "playlists_created_total"
	MetricNamePlaylistMediaAdded   = "playlist_media_added_total"
	MetricNameCounterProfilesFixed = "counter_reconcile_profiles_fixed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextFavoritesChanged     = "Total number of favorites added or removed"
	HelpTextShowStateChanges     = "Total number of watched/listed state changes"
	HelpTextRatingsSaved         = "Total number of ratings saved, by score"
	HelpTextReviews              = "Total number of reviews created or deleted"
	HelpTextPlaylistsCreated     = "Total number of custom playlists created"
	HelpTextPlaylistMediaAdded   = "Total number of media items added to custom playlists"
	HelpTextCounterProfilesFixed = "Total number of profiles whose counters were corrected by reconciliation"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelAction     = "action"
	LabelField      = "field"
	LabelValue      = "value"
	LabelRating     = "rating"
	LabelVisibility = "visibility"
)

// Label values
const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
	ActionCreated = "created"
	ActionDeleted = "deleted"

	VisibilityPublic  = "public"
	VisibilityPrivate = "private"

	// UnmatchedRoute labels requests that no route matched, keeping path cardinality bounded
	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
)
